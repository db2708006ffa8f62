package main

import (
	"context"
	"fmt"

	"github.com/javaBin/talks-site/internal/adapters/addon"
	"github.com/javaBin/talks-site/internal/adapters/conferencehall"
	"github.com/javaBin/talks-site/internal/adapters/download"
	"github.com/javaBin/talks-site/internal/adapters/elasticsearch"
	"github.com/javaBin/talks-site/internal/adapters/filecache"
	"github.com/javaBin/talks-site/internal/adapters/metrics"
	"github.com/javaBin/talks-site/internal/adapters/patch"
	"github.com/javaBin/talks-site/internal/adapters/sitewriter"
	"github.com/javaBin/talks-site/internal/app"
	"github.com/javaBin/talks-site/internal/config"
)

// newSiteService wires the adapters into the site service. The search index
// is only used when an Elasticsearch URL is configured.
func newSiteService(ctx context.Context, recorder *metrics.PrometheusRecorder) (*app.SiteService, error) {
	cfg := config.GetConfig(ctx)

	cache := filecache.New()
	addons := addon.New(ctx, cache)

	deps := app.Dependencies{
		Source:   conferencehall.New(ctx),
		Patcher:  patch.New(ctx, cache),
		Sessions: addons,
		Speakers: addons,
		Schedule: addons,
		Sponsors: addons,
		Team:     addons,
		Photos:   download.New(ctx),
		Writer:   sitewriter.New(ctx),
		Recorder: recorder,
	}

	if cfg.Elasticsearch.IsEnabled() {
		esClient, err := elasticsearch.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
		}
		deps.Index = esClient
	}

	return app.NewSiteService(ctx, deps, elasticsearch.SessionIndexMapping, elasticsearch.SpeakerIndexMapping), nil
}
