package app

import (
	"context"
	"sync"

	"github.com/javaBin/talks-site/internal/domain"
)

// mockEventSource is a mock implementation of ports.EventSource
type mockEventSource struct {
	getEventFunc func(ctx context.Context) (*domain.Event, error)
}

func (m *mockEventSource) GetEvent(ctx context.Context) (*domain.Event, error) {
	if m.getEventFunc != nil {
		return m.getEventFunc(ctx)
	}
	return &domain.Event{}, nil
}

// mockPatcher is a mock implementation of ports.Patcher.
// Without applyFunc, documents are returned unchanged.
type mockPatcher struct {
	applyFunc  func(ctx context.Context, category string, docs []domain.Document) ([]domain.Document, error)
	categories []string
}

func (m *mockPatcher) Apply(ctx context.Context, category string, docs []domain.Document) ([]domain.Document, error) {
	m.categories = append(m.categories, category)
	if m.applyFunc != nil {
		return m.applyFunc(ctx, category, docs)
	}
	return docs, nil
}

// mockAddons is a mock implementation of every add-on port
type mockAddons struct {
	extraSessionsFunc func(ctx context.Context) ([]domain.Document, error)
	extraSpeakersFunc func(ctx context.Context) ([]domain.Document, error)
	scheduleFunc      func(ctx context.Context) (*domain.Schedule, error)
	sponsorsFunc      func(ctx context.Context) ([]domain.Sponsor, error)
	teamFunc          func(ctx context.Context) ([]domain.Member, error)
}

func (m *mockAddons) LoadExtraSessions(ctx context.Context) ([]domain.Document, error) {
	if m.extraSessionsFunc != nil {
		return m.extraSessionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddons) LoadExtraSpeakers(ctx context.Context) ([]domain.Document, error) {
	if m.extraSpeakersFunc != nil {
		return m.extraSpeakersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddons) LoadSchedule(ctx context.Context) (*domain.Schedule, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddons) LoadSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	if m.sponsorsFunc != nil {
		return m.sponsorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddons) LoadTeam(ctx context.Context) ([]domain.Member, error) {
	if m.teamFunc != nil {
		return m.teamFunc(ctx)
	}
	return nil, nil
}

// mockDownloader is a mock implementation of ports.PhotoDownloader, safe for concurrent use
type mockDownloader struct {
	downloadFunc func(ctx context.Context, url, destPrefix string) (string, error)
	mu           sync.Mutex
	calls        map[string]string
}

func (m *mockDownloader) Download(ctx context.Context, url, destPrefix string) (string, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]string)
	}
	m.calls[url] = destPrefix
	m.mu.Unlock()

	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, url, destPrefix)
	}
	return "", nil
}

// mockWriter is a mock implementation of ports.SiteWriter
type mockWriter struct {
	writeFunc func(ctx context.Context, site *domain.Site) error
	written   []*domain.Site
}

func (m *mockWriter) Write(ctx context.Context, site *domain.Site) error {
	m.written = append(m.written, site)
	if m.writeFunc != nil {
		return m.writeFunc(ctx, site)
	}
	return nil
}

// mockSearchIndex is a mock implementation of ports.SearchIndex
type mockSearchIndex struct {
	bulkIndexFunc func(ctx context.Context, indexName string, docs []domain.Document) error
	calls         []string
	indexed       map[string][]domain.Document
}

func (m *mockSearchIndex) BulkIndex(ctx context.Context, indexName string, docs []domain.Document) error {
	m.calls = append(m.calls, "bulk:"+indexName)
	if m.indexed == nil {
		m.indexed = make(map[string][]domain.Document)
	}
	m.indexed[indexName] = docs
	if m.bulkIndexFunc != nil {
		return m.bulkIndexFunc(ctx, indexName, docs)
	}
	return nil
}

func (m *mockSearchIndex) DeleteIndex(ctx context.Context, indexName string) error {
	m.calls = append(m.calls, "delete:"+indexName)
	return nil
}

func (m *mockSearchIndex) CreateIndex(ctx context.Context, indexName string, mapping string) error {
	m.calls = append(m.calls, "create:"+indexName+":"+mapping)
	return nil
}

// mockRecorder is a mock implementation of ports.Recorder
type mockRecorder struct {
	mu          sync.Mutex
	generations []bool
	counts      map[string]int
	photos      map[string]int
}

func (m *mockRecorder) ObserveGeneration(success bool, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations = append(m.generations, success)
}

func (m *mockRecorder) SetEntityCount(kind string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[kind] = count
}

func (m *mockRecorder) IncPhotoDownload(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.photos == nil {
		m.photos = make(map[string]int)
	}
	m.photos[status]++
}
