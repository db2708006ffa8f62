package config

import "context"

type contextKey string

const configKey contextKey = "config"

// WithConfig attaches cfg to ctx, so adapters can be built from a context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// GetConfig returns the Config attached to ctx.
// It panics when no config was attached, which is a wiring error.
func GetConfig(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configKey).(*Config)
	if !ok {
		panic("config not found in context")
	}
	return cfg
}
