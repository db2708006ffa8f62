package ports

import (
	"context"

	"github.com/javaBin/talks-site/internal/domain"
)

// PhotoDownloader downloads a remote file next to destPrefix and returns the
// name of the written file (destPrefix base name plus an extension)
type PhotoDownloader interface {
	Download(ctx context.Context, url, destPrefix string) (string, error)
}

// SiteWriter persists a generated site for the static site build
type SiteWriter interface {
	Write(ctx context.Context, site *domain.Site) error
}

// SearchIndex defines the search engine operations used to publish site entities
type SearchIndex interface {
	// BulkIndex indexes documents, using their key as document id
	BulkIndex(ctx context.Context, indexName string, docs []domain.Document) error

	// DeleteIndex removes an index; a missing index is not an error
	DeleteIndex(ctx context.Context, indexName string) error

	// CreateIndex creates an index with the given mapping
	CreateIndex(ctx context.Context, indexName string, mapping string) error
}

// Recorder receives pipeline measurements
type Recorder interface {
	ObserveGeneration(success bool, seconds float64)
	SetEntityCount(kind string, count int)
	IncPhotoDownload(status string)
}

// Publisher generates the site and publishes it.
// This is implemented by the app layer SiteService.
type Publisher interface {
	Publish(ctx context.Context) (*domain.Site, error)
}
