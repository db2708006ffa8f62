package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/javaBin/talks-site/internal/adapters/session"
	"github.com/javaBin/talks-site/internal/config"
)

// sessionCleanupInterval is how often expired sessions are removed
const sessionCleanupInterval = time.Hour

// MiddlewareFunc is a function that wraps a handler with middleware
type MiddlewareFunc func(http.Handler) http.Handler

// Adapter holds the auth adapter dependencies
type Adapter struct {
	handler    *Handler
	middleware MiddlewareFunc
}

// passthroughMiddleware returns the handler unchanged (no authentication)
func passthroughMiddleware(next http.Handler) http.Handler {
	return next
}

// New creates a new auth adapter.
// In development mode, returns an adapter with passthrough middleware.
// In production mode, OIDC must be configured or an error is returned.
func New(ctx context.Context) (*Adapter, error) {
	cfg := config.GetConfig(ctx)

	if cfg.Mode.IsDevelopment() {
		slog.Info("auth disabled (development mode)")
		return &Adapter{
			middleware: passthroughMiddleware,
		}, nil
	}

	if !cfg.OIDC.IsConfigured() {
		return nil, fmt.Errorf("production mode but OIDC not configured")
	}

	authenticator, err := NewAuthenticator(ctx, OIDCConfig{
		IssuerURL:     cfg.OIDC.IssuerURL,
		ClientID:      cfg.OIDC.ClientID,
		ClientSecret:  cfg.OIDC.ClientSecret,
		RedirectURL:   cfg.OIDC.RedirectURL,
		AllowedDomain: cfg.OIDC.AllowedDomain,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("OIDC authenticator initialized", "allowedDomain", cfg.OIDC.AllowedDomain)

	store := session.NewInMemoryStore()
	go store.RunCleanup(ctx, sessionCleanupInterval)

	return NewWithProvider(store, authenticator, true), nil
}

// NewWithProvider creates an auth adapter requiring sign-in through provider.
// This constructor is primarily intended for testing purposes.
func NewWithProvider(store session.Store, provider IdentityProvider, secureCookies bool) *Adapter {
	return &Adapter{
		handler:    NewHandler(store, provider, secureCookies),
		middleware: NewMiddleware(store, provider, secureCookies).RequireAuth,
	}
}

// RegisterRoutes registers auth routes (/auth/callback, /auth/logout).
// Only registers routes if OIDC authentication is enabled.
func (a *Adapter) RegisterRoutes(mux *http.ServeMux) {
	if a.handler == nil {
		return
	}

	mux.HandleFunc("GET /auth/callback", a.handler.HandleCallback)
	mux.HandleFunc("POST /auth/logout", a.handler.HandleLogout)

	slog.Info("auth routes registered")
}

// Middleware returns the authentication middleware.
// In development mode, this is a passthrough (no-op) middleware.
func (a *Adapter) Middleware() MiddlewareFunc {
	return a.middleware
}
