package config

// ConferenceHallConfig holds Conference Hall API client configuration
type ConferenceHallConfig struct {
	URL     string `env:"URL" envDefault:"https://conference-hall.io"`
	EventID string `env:"EVENT_ID"`
	APIKey  string `env:"API_KEY"`
}
