package main

import (
	"encoding/json"
	"os"

	"github.com/javaBin/talks-site/internal/adapters/metrics"
)

// GenerateCmd publishes the site once
type GenerateCmd struct {
	DryRun bool `name:"dry-run" help:"Print the generated site as JSON instead of writing and indexing it"`
}

// Run generates the site
func (c *GenerateCmd) Run(rt *Runtime) error {
	svc, err := newSiteService(rt.Ctx, metrics.NewPrometheusRecorder())
	if err != nil {
		return err
	}

	if c.DryRun {
		site, err := svc.GenerateSite(rt.Ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(site)
	}

	site, err := svc.Publish(rt.Ctx)
	if err != nil {
		return err
	}
	rt.Logger.Info("site generated",
		"sessions", len(site.Sessions),
		"speakers", len(site.Speakers),
		"dataDir", rt.Config.Site.DataDir(),
	)
	return nil
}
