package filecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache reads files once and serves their content from memory until the file
// changes on disk. It is safe for concurrent use.
type Cache struct {
	entries map[string]entry
	mu      sync.RWMutex
}

type entry struct {
	modTime time.Time
	size    int64
	data    []byte
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// Read returns the content of the file at path. A missing file returns an
// error satisfying errors.Is(err, fs.ErrNotExist).
func (c *Cache) Read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	cached, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached.data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = entry{modTime: info.ModTime(), size: info.Size(), data: data}
	c.mu.Unlock()

	return data, nil
}

// ReadJSON decodes the file at path into v. Files with a .yaml or .yml
// extension are parsed as YAML and decoded with the JSON field names of v.
func (c *Cache) ReadJSON(path string, v any) error {
	data, err := c.Read(path)
	if err != nil {
		return err
	}

	if IsYAML(path) {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return fmt.Errorf("failed to convert YAML %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Extensions lists the supported data file extensions, by preference
var Extensions = []string{".json", ".yaml", ".yml"}

// IsYAML returns true if path has a YAML extension
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// IsDataFile returns true if path has one of the supported extensions
func IsDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
