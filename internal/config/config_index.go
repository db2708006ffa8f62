package config

// IndexConfig holds search index name configuration
type IndexConfig struct {
	Sessions string `env:"INDEX_SESSIONS" envDefault:"site_sessions"`
	Speakers string `env:"INDEX_SPEAKERS" envDefault:"site_speakers"`
}
