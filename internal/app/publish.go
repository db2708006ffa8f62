package app

import (
	"context"
	"fmt"

	"github.com/javaBin/talks-site/internal/domain"
)

// Publish generates the site, writes it for the static site build and, when a
// search index is configured, indexes the sessions and speakers.
// Concurrent calls are serialized.
func (s *SiteService) Publish(ctx context.Context) (*domain.Site, error) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	site, err := s.GenerateSite(ctx)
	if err != nil {
		return nil, err
	}

	if s.deps.Writer != nil {
		if err := s.deps.Writer.Write(ctx, site); err != nil {
			return nil, fmt.Errorf("failed to write site: %w", err)
		}
	}

	if s.deps.Index != nil {
		if err := s.indexSite(ctx, site); err != nil {
			return nil, err
		}
	}

	s.logger.Info("site published",
		"sessions", len(site.Sessions),
		"speakers", len(site.Speakers),
		"indexed", s.deps.Index != nil,
	)
	return site, nil
}

// indexSite replaces the sessions and speakers indexes with the site content
func (s *SiteService) indexSite(ctx context.Context, site *domain.Site) error {
	sessions, err := domain.ToDocuments(site.Sessions)
	if err != nil {
		return fmt.Errorf("failed to convert sessions for indexing: %w", err)
	}
	speakers, err := domain.ToDocuments(site.Speakers)
	if err != nil {
		return fmt.Errorf("failed to convert speakers for indexing: %w", err)
	}

	if err := s.replaceIndex(ctx, s.opts.SessionsIndex, s.opts.SessionsMapping, sessions); err != nil {
		return fmt.Errorf("failed to index sessions: %w", err)
	}
	if err := s.replaceIndex(ctx, s.opts.SpeakersIndex, s.opts.SpeakersMapping, speakers); err != nil {
		return fmt.Errorf("failed to index speakers: %w", err)
	}
	return nil
}

// replaceIndex deletes and recreates an index, then indexes docs into it
func (s *SiteService) replaceIndex(ctx context.Context, indexName, mapping string, docs []domain.Document) error {
	if err := s.deps.Index.DeleteIndex(ctx, indexName); err != nil {
		return fmt.Errorf("failed to delete index %s: %w", indexName, err)
	}
	if err := s.deps.Index.CreateIndex(ctx, indexName, mapping); err != nil {
		return fmt.Errorf("failed to create index %s: %w", indexName, err)
	}
	if err := s.deps.Index.BulkIndex(ctx, indexName, docs); err != nil {
		return fmt.Errorf("failed to bulk index %s: %w", indexName, err)
	}
	return nil
}
