package api

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealth handles the health check endpoint
func (a *Adapter) HandleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
