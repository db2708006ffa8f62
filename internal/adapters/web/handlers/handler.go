package handlers

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/javaBin/talks-site/internal/adapters/api"
	"github.com/javaBin/talks-site/internal/adapters/web/templates"
)

// Generator runs site generations and reports the latest one.
// This is implemented by api.Adapter, so both surfaces share one status.
type Generator interface {
	Generate(ctx context.Context) (api.GenerationStatus, error)
	Status() api.GenerationStatus
}

// Handler handles web UI requests for the admin dashboard
type Handler struct {
	generator Generator
}

// NewHandler creates a new web Handler with the provided dependencies
func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// HandleDashboard renders the admin dashboard
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.Dashboard(h.generator.Status())).ServeHTTP(w, r)
}

// HandleGenerate generates the site and renders the resulting status panel.
// A failed generation is rendered as a status, so htmx swaps it in.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	status, _ := h.generator.Generate(r.Context())
	templ.Handler(templates.StatusPanel(status)).ServeHTTP(w, r)
}
