package api

import (
	"net/http"
)

// RegisterRoutes registers the public routes with the provided mux.
// Health check is always available. The generate route is only registered in development mode.
func (a *Adapter) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.HandleHealth)

	if a.cfg.Mode.IsDevelopment() {
		mux.HandleFunc("POST /api/generate", a.HandleGenerate)
		a.logger.Info("API routes enabled (development mode)")
	} else {
		a.logger.Info("API routes disabled (production mode)")
	}
}

// RegisterAdminRoutes registers the admin routes, wrapped by the
// authentication middleware
func (a *Adapter) RegisterAdminRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	mux.Handle("POST /admin/generate", middleware(http.HandlerFunc(a.HandleGenerate)))
	mux.Handle("GET /admin/status", middleware(http.HandlerFunc(a.HandleStatus)))
}
