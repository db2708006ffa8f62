package patch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/javaBin/talks-site/internal/adapters/filecache"
	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
)

// deleteField marks a patch that removes the matching entity
const deleteField = "_delete"

// Resolver applies the patch files of a category directory to a collection.
//
// Each file of <dir>/<category> holds a partial document for the entity whose
// key is the file base name, or the key field of the patch when present.
// The fields of the patch replace those of every matching entity. A patch
// without a matching entity is appended as a new entity, and a patch with
// "_delete": true removes the matching entities. Files are applied in
// lexical order.
type Resolver struct {
	dir    string
	cache  *filecache.Cache
	logger *slog.Logger
}

// New creates a new Resolver, retrieving configuration from context
func New(ctx context.Context, cache *filecache.Cache) *Resolver {
	cfg := config.GetConfig(ctx)
	return NewWithDir(cfg.Site.PatchDir, cache)
}

// NewWithDir creates a new Resolver reading patches from dir
func NewWithDir(dir string, cache *filecache.Cache) *Resolver {
	if cache == nil {
		cache = filecache.New()
	}
	return &Resolver{
		dir:    dir,
		cache:  cache,
		logger: slog.Default().With("component", "patch"),
	}
}

// SetLogger sets a custom logger for the resolver
func (r *Resolver) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Apply returns docs with the patches of category applied. The input
// documents are not modified.
func (r *Resolver) Apply(ctx context.Context, category string, docs []domain.Document) ([]domain.Document, error) {
	files, err := r.files(category)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Document, len(docs))
	for i, doc := range docs {
		result[i] = maps.Clone(doc)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var patch domain.Document
		if err := r.cache.ReadJSON(file, &patch); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidPatch, file, err)
		}
		if patch == nil {
			return nil, fmt.Errorf("%w: %s: patch is not an object", domain.ErrInvalidPatch, file)
		}

		result, err = r.applyOne(result, file, patch)
		if err != nil {
			return nil, err
		}
	}

	if len(files) > 0 {
		r.logger.Info("applied patches", "category", category, "files", len(files))
	}
	return result, nil
}

func (r *Resolver) applyOne(docs []domain.Document, file string, patch domain.Document) ([]domain.Document, error) {
	key := patch.Key()
	if key == "" {
		key = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	remove := false
	if value, ok := patch[deleteField]; ok {
		flag, isBool := value.(bool)
		if !isBool {
			return nil, fmt.Errorf("%w: %s: %s must be a boolean", domain.ErrInvalidPatch, file, deleteField)
		}
		remove = flag
		delete(patch, deleteField)
	}

	if remove {
		kept := docs[:0]
		for _, doc := range docs {
			if doc.Key() != key {
				kept = append(kept, doc)
			}
		}
		r.logger.Debug("removed entity", "key", key, "file", file, "removed", len(docs)-len(kept))
		return kept, nil
	}

	matched := false
	for _, doc := range docs {
		if doc.Key() == key {
			maps.Copy(doc, patch)
			matched = true
		}
	}
	if matched {
		r.logger.Debug("patched entity", "key", key, "file", file)
		return docs, nil
	}

	added := maps.Clone(patch)
	added["key"] = key
	r.logger.Debug("added entity", "key", key, "file", file)
	return append(docs, added), nil
}

// files lists the patch files of a category in lexical order. A missing
// category directory has no patches.
func (r *Resolver) files(category string) ([]string, error) {
	dir := filepath.Join(r.dir, category)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrInvalidPatch, dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !filecache.IsDataFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
