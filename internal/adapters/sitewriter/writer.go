package sitewriter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/natefinch/atomic"
)

// Writer writes the site data files read by the static site build, one JSON
// file per collection
type Writer struct {
	dataDir string
	logger  *slog.Logger
}

// New creates a new Writer, retrieving configuration from context
func New(ctx context.Context) *Writer {
	cfg := config.GetConfig(ctx)
	return NewWithDir(cfg.Site.DataDir())
}

// NewWithDir creates a new Writer writing into dataDir
func NewWithDir(dataDir string) *Writer {
	return &Writer{
		dataDir: dataDir,
		logger:  slog.Default().With("component", "sitewriter"),
	}
}

// SetLogger sets a custom logger for the writer
func (w *Writer) SetLogger(logger *slog.Logger) {
	w.logger = logger
}

// Write replaces the data files with the content of site. Each file is
// replaced atomically.
func (w *Writer) Write(ctx context.Context, site *domain.Site) error {
	if err := os.MkdirAll(w.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{"info", site.Info},
		{"sessions", site.Sessions},
		{"speakers", site.Speakers},
		{"categories", site.Categories},
		{"formats", site.Formats},
		{"rooms", site.Rooms},
		{"slots", site.Slots},
		{"schedule", site.Schedule},
		{"sponsors", site.Sponsors},
		{"team", site.Team},
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeJSON(file.name+".json", file.data); err != nil {
			return err
		}
	}

	w.logger.Info("wrote site data", "dir", w.dataDir, "files", len(files))
	return nil
}

func (w *Writer) writeJSON(name string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	content = append(content, '\n')

	path := filepath.Join(w.dataDir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
