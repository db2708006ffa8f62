package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/javaBin/talks-site/internal/adapters/api"
	"github.com/javaBin/talks-site/internal/adapters/auth"
	"github.com/javaBin/talks-site/internal/adapters/metrics"
	"github.com/javaBin/talks-site/internal/adapters/web"
	"github.com/javaBin/talks-site/internal/adapters/web/handlers"
)

// ServeCmd runs the HTTP server until interrupted
type ServeCmd struct {
	GenerateOnStart bool `name:"generate-on-start" help:"Generate the site once when the server starts"`
}

// Run serves the HTTP endpoints with graceful shutdown
func (c *ServeCmd) Run(rt *Runtime) error {
	ctx := rt.Ctx
	logger := rt.Logger

	recorder := metrics.NewPrometheusRecorder()
	svc, err := newSiteService(ctx, recorder)
	if err != nil {
		return err
	}

	authAdapter, err := auth.New(ctx)
	if err != nil {
		return err
	}

	apiAdapter := api.New(ctx, svc)

	mux := http.NewServeMux()
	apiAdapter.RegisterRoutes(mux)
	apiAdapter.RegisterAdminRoutes(mux, authAdapter.Middleware())
	web.RegisterProtectedRoutes(mux, handlers.NewHandler(apiAdapter), authAdapter.Middleware())
	authAdapter.RegisterRoutes(mux)
	mux.Handle("GET /metrics", recorder.Handler())

	server := &http.Server{
		Addr:         rt.Config.Http.Addr(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation downloads every speaker photo
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if c.GenerateOnStart {
		go func() {
			if _, err := apiAdapter.Generate(ctx); err != nil {
				logger.Error("initial generation failed", "error", err)
			}
		}()
	}

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
