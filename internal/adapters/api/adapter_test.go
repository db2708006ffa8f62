package api

import (
	"context"
	"testing"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/stretchr/testify/assert"
)

// testContext returns a context with test configuration
func testContext(mode config.Mode) context.Context {
	cfg := &config.Config{
		ApplicationConfig: config.ApplicationConfig{
			Mode: mode,
		},
	}
	return config.WithConfig(context.Background(), cfg)
}

// mockPublisher is a mock implementation of the Publisher interface for testing
type mockPublisher struct {
	publishFunc func(ctx context.Context) (*domain.Site, error)
	calls       int
}

func (m *mockPublisher) Publish(ctx context.Context) (*domain.Site, error) {
	m.calls++
	if m.publishFunc != nil {
		return m.publishFunc(ctx)
	}
	return &domain.Site{}, nil
}

func testSite() *domain.Site {
	return &domain.Site{
		Sessions: []domain.Session{{Key: "a"}, {Key: "b"}, {Key: "c"}},
		Speakers: []domain.SiteSpeaker{{Key: "jane-doe"}},
	}
}

func TestNew(t *testing.T) {
	publisher := &mockPublisher{}
	adapter := New(testContext(config.ModeDevelopment), publisher)

	assert.NotNil(t, adapter)
	assert.Equal(t, publisher, adapter.publisher)
	assert.True(t, adapter.cfg.Mode.IsDevelopment())
	assert.Nil(t, adapter.last)
}

func TestNew_PanicsWithoutConfig(t *testing.T) {
	assert.Panics(t, func() {
		New(context.Background(), &mockPublisher{})
	})
}
