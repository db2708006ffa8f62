package filecache

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCache_Read(t *testing.T) {
	t.Run("serves cached content while the file is unchanged", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "team.json")
		writeFile(t, path, `[]`)
		cache := New()

		first, err := cache.Read(path)
		require.NoError(t, err)
		second, err := cache.Read(path)
		require.NoError(t, err)

		assert.Equal(t, []byte(`[]`), first)
		assert.Equal(t, first, second)
		assert.Len(t, cache.entries, 1)
	})

	t.Run("reloads a modified file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "team.json")
		writeFile(t, path, `[]`)
		cache := New()

		_, err := cache.Read(path)
		require.NoError(t, err)

		writeFile(t, path, `[{"key":"a"}]`)
		later := time.Now().Add(time.Minute)
		require.NoError(t, os.Chtimes(path, later, later))

		data, err := cache.Read(path)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"key":"a"}]`), data)
	})

	t.Run("missing file", func(t *testing.T) {
		cache := New()

		data, err := cache.Read(filepath.Join(t.TempDir(), "missing.json"))

		assert.Nil(t, data)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestCache_ReadJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "team.json")
		writeFile(t, path, `[{"key":"ada","name":"Ada","extra":true}]`)

		var team []member
		require.NoError(t, New().ReadJSON(path, &team))

		assert.Equal(t, []member{{Key: "ada", Name: "Ada"}}, team)
	})

	t.Run("yaml uses json field names", func(t *testing.T) {
		path := filepath.Join(dir, "team.yaml")
		writeFile(t, path, "- key: grace\n  name: Grace Hopper\n")

		var team []member
		require.NoError(t, New().ReadJSON(path, &team))

		assert.Equal(t, []member{{Key: "grace", Name: "Grace Hopper"}}, team)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		writeFile(t, path, `{not json`)

		var v any
		err := New().ReadJSON(path, &v)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yml")
		writeFile(t, path, "key: [unclosed\n")

		var v any
		err := New().ReadJSON(path, &v)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})
}

func TestIsDataFile(t *testing.T) {
	assert.True(t, IsDataFile("a/b.json"))
	assert.True(t, IsDataFile("a/b.YAML"))
	assert.True(t, IsDataFile("b.yml"))
	assert.False(t, IsDataFile("README.md"))
	assert.False(t, IsDataFile("noext"))
	assert.True(t, IsYAML("x.yml"))
	assert.False(t, IsYAML("x.json"))
}
