package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/javaBin/talks-site/internal/config"
)

// CLI is the command line of sitegen
type CLI struct {
	EnvFile []string `name:"env-file" short:"e" help:"Env files to load before reading the environment (default .env)"`

	Generate GenerateCmd `cmd:"" help:"Generate the site data once and exit"`
	Serve    ServeCmd    `cmd:"" help:"Serve the health, metrics and generate endpoints"`
}

// Runtime is shared by the commands
type Runtime struct {
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Generates the conference site data from Conference Hall, patches and add-ons."),
		kong.UsageOnError(),
	)

	cfg := config.MustLoad(cli.EnvFile...)
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"mode", cfg.Mode,
		"eventID", cfg.ConferenceHall.EventID,
		"siteDir", cfg.Site.Dir,
		"patchDir", cfg.Site.PatchDir,
		"addonDir", cfg.Site.AddonDir,
		"elasticsearch", cfg.Elasticsearch.IsEnabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = config.WithConfig(ctx, cfg)

	err := kctx.Run(&Runtime{Ctx: ctx, Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}

// newLogger logs text in development mode and JSON in production
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Mode.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
