package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// GenerateResponse represents the response of a site generation
type GenerateResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Sessions int    `json:"sessions,omitempty"`
	Speakers int    `json:"speakers,omitempty"`
}

// GenerationStatus describes the most recent site generation
type GenerationStatus struct {
	Status     string        `json:"status"`
	Message    string        `json:"message,omitempty"`
	FinishedAt time.Time     `json:"finishedAt,omitzero"`
	Duration   time.Duration `json:"durationMs"`
	Sessions   int           `json:"sessions"`
	Speakers   int           `json:"speakers"`
}

// MarshalJSON reports the duration in milliseconds
func (s GenerationStatus) MarshalJSON() ([]byte, error) {
	type alias GenerationStatus
	out := alias(s)
	out.Duration = s.Duration / time.Millisecond
	return json.Marshal(out)
}

// Generate publishes the site and records the outcome as the latest status
func (a *Adapter) Generate(ctx context.Context) (GenerationStatus, error) {
	started := time.Now()

	a.logger.Info("starting site generation")

	site, err := a.publisher.Publish(ctx)
	if err != nil {
		a.logger.Error("failed to generate site", "error", err)
		status := GenerationStatus{
			Status:     "error",
			Message:    err.Error(),
			FinishedAt: time.Now(),
			Duration:   time.Since(started),
		}
		a.setLast(status)
		return status, err
	}

	status := GenerationStatus{
		Status:     "success",
		FinishedAt: time.Now(),
		Duration:   time.Since(started),
		Sessions:   len(site.Sessions),
		Speakers:   len(site.Speakers),
	}
	a.setLast(status)
	a.logger.Info("site generation completed successfully", "duration", status.Duration)
	return status, nil
}

// Status returns the most recent site generation, or an idle status when
// the site has not been generated yet
func (a *Adapter) Status() GenerationStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.last == nil {
		return GenerationStatus{Status: "idle"}
	}
	return *a.last
}

// HandleGenerate generates and publishes the site
func (a *Adapter) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	status, err := a.Generate(r.Context())
	if err != nil {
		a.writeJSON(w, http.StatusInternalServerError, GenerateResponse{
			Status:  "error",
			Message: "failed to generate site: " + err.Error(),
		})
		return
	}

	a.writeJSON(w, http.StatusOK, GenerateResponse{
		Status:   "success",
		Message:  "successfully generated site",
		Sessions: status.Sessions,
		Speakers: status.Speakers,
	})
}

// HandleStatus reports the most recent site generation
func (a *Adapter) HandleStatus(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.Status())
}

func (a *Adapter) setLast(status GenerationStatus) {
	a.mu.Lock()
	a.last = &status
	a.mu.Unlock()
}

// writeJSON writes a JSON response with the given status code
func (a *Adapter) writeJSON(w http.ResponseWriter, code int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Error("failed to encode response", "error", err)
	}
}
