package addon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javaBin/talks-site/internal/adapters/filecache"
	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAddon(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNew(t *testing.T) {
	t.Run("reads the add-on directory from context config", func(t *testing.T) {
		cfg := &config.Config{Site: config.SiteConfig{AddonDir: "/srv/add-on"}}
		ctx := config.WithConfig(context.Background(), cfg)

		loader := New(ctx, nil)

		assert.Equal(t, "/srv/add-on", loader.dir)
		assert.NotNil(t, loader.cache)
	})

	t.Run("panics when config not in context", func(t *testing.T) {
		assert.Panics(t, func() {
			New(context.Background(), filecache.New())
		})
	})
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewWithDir(t.TempDir(), filecache.New())
	ctx := context.Background()

	sessions, err := loader.LoadExtraSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	speakers, err := loader.LoadExtraSpeakers(ctx)
	require.NoError(t, err)
	assert.Empty(t, speakers)

	schedule, err := loader.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Nil(t, schedule)

	sponsors, err := loader.LoadSponsors(ctx)
	require.NoError(t, err)
	assert.Empty(t, sponsors)

	team, err := loader.LoadTeam(ctx)
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestLoader_LoadExtraSessions(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "sessions.json", `[
		{"title": "Opening Keynote", "format": "keynote", "speakers": ["jane-doe"]},
		{"key": "closing", "title": "Closing Words"}
	]`)

	docs, err := NewWithDir(dir, filecache.New()).LoadExtraSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "opening-keynote", docs[0].Key())
	assert.Equal(t, "keynote", docs[0]["format"])
	assert.Equal(t, "closing", docs[1].Key())
}

func TestLoader_LoadExtraSpeakers_YAML(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "speakers.yaml", "- name: Jane Doe\n  company: ACME\n  feature: true\n")

	docs, err := NewWithDir(dir, filecache.New()).LoadExtraSpeakers(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "jane-doe", docs[0].Key())
	assert.Equal(t, "ACME", docs[0]["company"])
	assert.Equal(t, true, docs[0]["feature"])
}

func TestLoader_PrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "team.json", `[{"name": "From JSON"}]`)
	writeAddon(t, dir, "team.yml", "- name: From YAML\n")

	team, err := NewWithDir(dir, filecache.New()).LoadTeam(context.Background())

	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "From JSON", team[0].Name)
	assert.Equal(t, "from-json", team[0].Key)
	assert.Equal(t, []domain.Social{}, team[0].Socials)
}

func TestLoader_LoadTeam_InvalidMember(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "team.json", `[{"name": "Jane Doe", "socials": "@jane"}]`)

	team, err := NewWithDir(dir, filecache.New()).LoadTeam(context.Background())

	require.Error(t, err)
	assert.Nil(t, team)
	assert.ErrorIs(t, err, domain.ErrInvalidAddon)
}

func TestLoader_LoadSchedule(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "schedule.yml", `
rooms:
  - key: room-1
    name: Room 1
slots:
  - key: morning
    start: "09:00"
    duration: 45
    row:
      start: 1
      end: 2
schedule:
  - session: opening-keynote
    room: room-1
    slot: morning
`)

	schedule, err := NewWithDir(dir, filecache.New()).LoadSchedule(context.Background())

	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.Equal(t, []domain.Room{{Key: "room-1", Name: "Room 1"}}, schedule.Rooms)
	assert.Equal(t, []domain.Slot{{Key: "morning", Start: "09:00", Duration: 45, Row: domain.SlotRow{Start: 1, End: 2}}}, schedule.Slots)
	assert.Equal(t, []domain.ScheduleEntry{{Session: "opening-keynote", Room: "room-1", Slot: "morning"}}, schedule.Schedule)
}

func TestLoader_LoadSponsors(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "sponsors.json", `[{"name": "Bouvet ASA", "level": "gold", "website": "https://bouvet.no"}]`)

	sponsors, err := NewWithDir(dir, filecache.New()).LoadSponsors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Sponsor{{Key: "bouvet-asa", Name: "Bouvet ASA", Level: "gold", Website: "https://bouvet.no"}}, sponsors)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("invalid file", func(t *testing.T) {
		dir := t.TempDir()
		writeAddon(t, dir, "sessions.json", `{"title": "not a list"}`)

		_, err := NewWithDir(dir, filecache.New()).LoadExtraSessions(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidAddon)
	})

	t.Run("null entry", func(t *testing.T) {
		dir := t.TempDir()
		writeAddon(t, dir, "speakers.json", `[null]`)

		_, err := NewWithDir(dir, filecache.New()).LoadExtraSpeakers(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidAddon)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewWithDir(t.TempDir(), filecache.New()).LoadTeam(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
