package config

import (
	"errors"
	"fmt"
)

// Config holds all application configuration loaded from environment variables
type Config struct {
	ApplicationConfig
	Http           HttpConfig           `envPrefix:"HTTP_"`
	ConferenceHall ConferenceHallConfig `envPrefix:"CONFERENCE_HALL_"`
	Site           SiteConfig           `envPrefix:"SITE_"`
	Photos         PhotosConfig         `envPrefix:"PHOTOS_"`
	Elasticsearch  ElasticsearchConfig  `envPrefix:"ELASTICSEARCH_"`
	Index          IndexConfig
	OIDC           OIDCConfig `envPrefix:"OIDC_"`
}

// Validate reports every required value that is missing
func (c *Config) Validate() error {
	var errs []error
	if c.ConferenceHall.EventID == "" {
		errs = append(errs, fmt.Errorf("CONFERENCE_HALL_EVENT_ID is required"))
	}
	if c.ConferenceHall.APIKey == "" {
		errs = append(errs, fmt.Errorf("CONFERENCE_HALL_API_KEY is required"))
	}
	if c.Site.Dir == "" {
		errs = append(errs, fmt.Errorf("SITE_DIR is required"))
	}
	if c.Photos.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("PHOTOS_CONCURRENCY must be at least 1"))
	}
	return errors.Join(errs...)
}
