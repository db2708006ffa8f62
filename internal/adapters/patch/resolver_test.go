package patch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javaBin/talks-site/internal/adapters/filecache"
	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/javaBin/talks-site/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatch(t *testing.T, dir, category, name, content string) {
	t.Helper()
	categoryDir := filepath.Join(dir, category)
	require.NoError(t, os.MkdirAll(categoryDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(categoryDir, name), []byte(content), 0o644))
}

func sessions() []domain.Document {
	return []domain.Document{
		{"key": "intro-to-go", "title": "Intro to Go", "draft": false},
		{"key": "rust-for-javaists", "title": "Rust for Javaists", "draft": false},
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Site: config.SiteConfig{PatchDir: "/srv/patches"}}
	ctx := config.WithConfig(context.Background(), cfg)

	resolver := New(ctx, nil)

	assert.Equal(t, "/srv/patches", resolver.dir)
	assert.NotNil(t, resolver.cache)
}

func TestResolver_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("missing category directory leaves documents unchanged", func(t *testing.T) {
		resolver := NewWithDir(t.TempDir(), filecache.New())

		docs, err := resolver.Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		assert.Equal(t, sessions(), docs)
	})

	t.Run("patch replaces fields of the entity named by the file", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{"videoId": "abc123", "draft": true}`)
		input := sessions()

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, input)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, domain.Document{"key": "intro-to-go", "title": "Intro to Go", "draft": true, "videoId": "abc123"}, docs[0])
		assert.Equal(t, sessions()[1], docs[1])
		assert.Equal(t, sessions(), input, "input documents must not be modified")
	})

	t.Run("explicit key field wins over the file name", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "rust.yaml", "key: rust-for-javaists\ntitle: Rust for Java Developers\n")

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "Rust for Java Developers", docs[1]["title"])
	})

	t.Run("unmatched patch is appended", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "lunch.yml", "title: Lunch\nformat: break\n")

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, domain.Document{"key": "lunch", "title": "Lunch", "format": "break"}, docs[2])
	})

	t.Run("delete removes the entity", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{"_delete": true}`)

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "rust-for-javaists", docs[0].Key())
	})

	t.Run("delete false patches the entity", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{"_delete": false, "level": "beginner"}`)

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "beginner", docs[0]["level"])
		assert.NotContains(t, docs[0], "_delete")
	})

	t.Run("files are applied in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "a.json", `{"key": "intro-to-go", "level": "first"}`)
		writePatch(t, dir, ports.CategorySessions, "b.json", `{"key": "intro-to-go", "level": "second"}`)

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		assert.Equal(t, "second", docs[0]["level"])
	})

	t.Run("other categories and file types are ignored", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySpeakers, "intro-to-go.json", `{"draft": true}`)
		writePatch(t, dir, ports.CategorySessions, "README.md", "not a patch")

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.NoError(t, err)
		assert.Equal(t, sessions(), docs)
	})

	t.Run("invalid patch", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{broken`)

		docs, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.Error(t, err)
		assert.Nil(t, docs)
		assert.ErrorIs(t, err, domain.ErrInvalidPatch)
	})

	t.Run("delete flag must be a boolean", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{"_delete": "yes"}`)

		_, err := NewWithDir(dir, filecache.New()).Apply(ctx, ports.CategorySessions, sessions())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidPatch)
		assert.Contains(t, err.Error(), "must be a boolean")
	})

	t.Run("cancelled context", func(t *testing.T) {
		dir := t.TempDir()
		writePatch(t, dir, ports.CategorySessions, "intro-to-go.json", `{"draft": true}`)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewWithDir(dir, filecache.New()).Apply(cancelled, ports.CategorySessions, sessions())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
