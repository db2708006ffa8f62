package config

import (
	"path/filepath"
	"time"
)

// SiteConfig holds the locations of the generated site and of its inputs
type SiteConfig struct {
	Dir      string `env:"DIR"`
	PatchDir string `env:"PATCH_DIR" envDefault:"./patches"`
	AddonDir string `env:"ADDON_DIR" envDefault:"./add-on"`
}

// DataDir returns the Hugo data directory of the site
func (c *SiteConfig) DataDir() string {
	return filepath.Join(c.Dir, "data")
}

// SpeakerImagesDir returns the directory holding downloaded speaker photos
func (c *SiteConfig) SpeakerImagesDir() string {
	return filepath.Join(c.Dir, "static", "images", "speakers")
}

// PhotosConfig holds speaker photo download configuration
type PhotosConfig struct {
	Concurrency int           `env:"CONCURRENCY" envDefault:"8"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
