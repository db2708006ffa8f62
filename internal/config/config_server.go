package config

import "fmt"

// HttpConfig holds HTTP server configuration for the serve command
type HttpConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// Addr returns the listen address of the HTTP server
func (c *HttpConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OIDCConfig holds the OIDC settings protecting the admin routes in production mode
type OIDCConfig struct {
	IssuerURL    string `env:"ISSUER_URL"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"`

	// AllowedDomain restricts sign-in to emails of a domain when set
	AllowedDomain string `env:"ALLOWED_DOMAIN"`
}

// IsConfigured returns true if issuer, client id and client secret are all set
func (c *OIDCConfig) IsConfigured() bool {
	return c.IssuerURL != "" && c.ClientID != "" && c.ClientSecret != ""
}
