package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/ports"
)

// Adapter holds the HTTP handler dependencies
type Adapter struct {
	cfg       *config.Config
	publisher ports.Publisher
	logger    *slog.Logger

	mu   sync.RWMutex
	last *GenerationStatus
}

// New creates a new HTTP adapter publishing the site with publisher,
// retrieving configuration from context
func New(ctx context.Context, publisher ports.Publisher) *Adapter {
	return &Adapter{
		cfg:       config.GetConfig(ctx),
		publisher: publisher,
		logger:    slog.Default().With("component", "api"),
	}
}

// SetLogger sets a custom logger for the adapter
func (a *Adapter) SetLogger(logger *slog.Logger) {
	a.logger = logger
}
