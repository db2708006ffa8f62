package config

// ElasticsearchConfig holds Elasticsearch client configuration.
// Publishing to Elasticsearch is disabled when no URL is configured.
type ElasticsearchConfig struct {
	URL      string `env:"URL"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// IsEnabled returns true if an Elasticsearch URL is configured
func (c *ElasticsearchConfig) IsEnabled() bool {
	return c.URL != ""
}

// HasCredentials returns true if authentication credentials are configured
func (c *ElasticsearchConfig) HasCredentials() bool {
	return c.User != "" && c.Password != ""
}
