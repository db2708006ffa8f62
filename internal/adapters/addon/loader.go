package addon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/javaBin/talks-site/internal/adapters/filecache"
	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
)

// Add-on file names, without extension
const (
	sessionsFile = "sessions"
	speakersFile = "speakers"
	scheduleFile = "schedule"
	sponsorsFile = "sponsors"
	teamFile     = "team"
)

// Loader reads the hand-authored add-on files of the site.
// A missing add-on file yields an empty result.
type Loader struct {
	dir    string
	cache  *filecache.Cache
	logger *slog.Logger
}

// New creates a new Loader, retrieving configuration from context
func New(ctx context.Context, cache *filecache.Cache) *Loader {
	cfg := config.GetConfig(ctx)
	return NewWithDir(cfg.Site.AddonDir, cache)
}

// NewWithDir creates a new Loader reading from dir
func NewWithDir(dir string, cache *filecache.Cache) *Loader {
	if cache == nil {
		cache = filecache.New()
	}
	return &Loader{
		dir:    dir,
		cache:  cache,
		logger: slog.Default().With("component", "addon"),
	}
}

// SetLogger sets a custom logger for the loader
func (l *Loader) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// LoadExtraSessions loads the sessions add-on. Sessions without a key are
// keyed by their title.
func (l *Loader) LoadExtraSessions(ctx context.Context) ([]domain.Document, error) {
	return l.loadDocuments(ctx, sessionsFile, "title")
}

// LoadExtraSpeakers loads the speakers add-on. Speakers without a key are
// keyed by their name.
func (l *Loader) LoadExtraSpeakers(ctx context.Context) ([]domain.Document, error) {
	return l.loadDocuments(ctx, speakersFile, "name")
}

// LoadSchedule loads the rooms, slots and schedule entries
func (l *Loader) LoadSchedule(ctx context.Context) (*domain.Schedule, error) {
	var schedule domain.Schedule
	found, err := l.load(ctx, scheduleFile, &schedule)
	if err != nil || !found {
		return nil, err
	}
	l.logger.Debug("loaded schedule", "rooms", len(schedule.Rooms), "slots", len(schedule.Slots), "entries", len(schedule.Schedule))
	return &schedule, nil
}

// LoadSponsors loads the sponsors add-on
func (l *Loader) LoadSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	var sponsors []domain.Sponsor
	if _, err := l.load(ctx, sponsorsFile, &sponsors); err != nil {
		return nil, err
	}
	for i := range sponsors {
		if sponsors[i].Key == "" {
			sponsors[i].Key = domain.BuildKey(sponsors[i].Name)
		}
	}
	return sponsors, nil
}

// LoadTeam loads the organizing team. Members without a key are keyed by
// their name.
func (l *Loader) LoadTeam(ctx context.Context) ([]domain.Member, error) {
	docs, err := l.loadDocuments(ctx, teamFile, "name")
	if err != nil {
		return nil, err
	}
	team, err := domain.Project[domain.Member](docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidAddon, teamFile, err)
	}
	return team, nil
}

func (l *Loader) loadDocuments(ctx context.Context, name, keySource string) ([]domain.Document, error) {
	var docs []domain.Document
	if _, err := l.load(ctx, name, &docs); err != nil {
		return nil, err
	}
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("%w: %s: entry %d is not an object", domain.ErrInvalidAddon, name, i)
		}
		if doc.Key() != "" {
			continue
		}
		source, _ := doc[keySource].(string)
		doc["key"] = domain.BuildKey(source)
	}
	return docs, nil
}

// load decodes the first existing file named name with a supported extension
// into v. It reports whether a file was found.
func (l *Loader) load(ctx context.Context, name string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	for _, ext := range filecache.Extensions {
		path := filepath.Join(l.dir, name+ext)
		err := l.cache.ReadJSON(path, v)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("%w: %s: %w", domain.ErrInvalidAddon, name, err)
		}
		l.logger.Debug("loaded add-on", "file", path)
		return true, nil
	}

	l.logger.Debug("no add-on file", "name", name, "dir", l.dir)
	return false, nil
}
