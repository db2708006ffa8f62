package web

import (
	"net/http"

	"github.com/javaBin/talks-site/internal/adapters/web/handlers"
	"github.com/javaBin/talks-site/internal/adapters/web/templates"
)

// RegisterProtectedRoutes registers the admin dashboard routes, wrapped by
// the authentication middleware
func RegisterProtectedRoutes(mux *http.ServeMux, h *handlers.Handler, middleware func(http.Handler) http.Handler) {
	// Admin dashboard
	mux.Handle("GET /admin", middleware(http.HandlerFunc(h.HandleDashboard)))

	// htmx endpoint for the generate button
	mux.Handle("POST "+templates.GenerateURL, middleware(http.HandlerFunc(h.HandleGenerate)))
}
