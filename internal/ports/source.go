package ports

import (
	"context"

	"github.com/javaBin/talks-site/internal/domain"
)

// EventSource fetches the event the site is generated for
type EventSource interface {
	// GetEvent retrieves the complete event, including talks and speakers
	GetEvent(ctx context.Context) (*domain.Event, error)
}

// Patcher applies file-based overrides to a collection of one entity kind.
// The category is one of the Category* constants. The returned documents
// may add, remove or alter entries.
type Patcher interface {
	Apply(ctx context.Context, category string, docs []domain.Document) ([]domain.Document, error)
}

// Patch categories, one per entity kind
const (
	CategorySessions   = "sessions"
	CategorySpeakers   = "speakers"
	CategoryCategories = "categories"
	CategoryFormats    = "formats"
)
