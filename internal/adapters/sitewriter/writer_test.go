package sitewriter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() *domain.Site {
	return &domain.Site{
		Info: domain.Info{ID: "evt-1", Name: "JavaZone"},
		Sessions: []domain.Session{
			{Key: "intro-to-go", Title: "Intro to Go", Tags: []string{}, Speakers: []string{"jane-doe"}},
		},
		Speakers:   []domain.SiteSpeaker{{Key: "jane-doe", Name: "Jane Doe", Socials: []domain.Social{}}},
		Categories: []domain.SiteCategory{},
		Formats:    []domain.SiteFormat{},
		Rooms:      []domain.Room{},
		Slots:      []domain.Slot{},
		Schedule:   []domain.ScheduleEntry{},
		Sponsors:   []domain.Sponsor{},
		Team:       []domain.Member{},
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Site: config.SiteConfig{Dir: "/srv/site"}}
	ctx := config.WithConfig(context.Background(), cfg)

	writer := New(ctx)

	assert.Equal(t, filepath.Join("/srv/site", "data"), writer.dataDir)
}

func TestWriter_Write(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	writer := NewWithDir(dataDir)

	require.NoError(t, writer.Write(context.Background(), testSite()))

	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{
		"info.json", "sessions.json", "speakers.json", "categories.json", "formats.json",
		"rooms.json", "slots.json", "schedule.json", "sponsors.json", "team.json",
	}, names)

	var sessions []domain.Session
	content, err := os.ReadFile(filepath.Join(dataDir, "sessions.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &sessions))
	assert.Equal(t, testSite().Sessions, sessions)

	content, err = os.ReadFile(filepath.Join(dataDir, "rooms.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))

	var info domain.Info
	content, err = os.ReadFile(filepath.Join(dataDir, "info.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &info))
	assert.Equal(t, "JavaZone", info.Name)
}

func TestWriter_WriteReplacesFiles(t *testing.T) {
	dataDir := t.TempDir()
	writer := NewWithDir(dataDir)
	site := testSite()
	require.NoError(t, writer.Write(context.Background(), site))

	site.Speakers = []domain.SiteSpeaker{}
	require.NoError(t, writer.Write(context.Background(), site))

	content, err := os.ReadFile(filepath.Join(dataDir, "speakers.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))
}

func TestWriter_WriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWithDir(t.TempDir()).Write(ctx, testSite())

	assert.ErrorIs(t, err, context.Canceled)
}
