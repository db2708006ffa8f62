package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/javaBin/talks-site/internal/ports"
)

// Dependencies groups the ports used by the SiteService.
// Writer, Index and Recorder are optional.
type Dependencies struct {
	Source   ports.EventSource
	Patcher  ports.Patcher
	Sessions ports.SessionAddons
	Speakers ports.SpeakerAddons
	Schedule ports.ScheduleAddons
	Sponsors ports.SponsorAddons
	Team     ports.TeamSource
	Photos   ports.PhotoDownloader
	Writer   ports.SiteWriter
	Index    ports.SearchIndex
	Recorder ports.Recorder
}

// Options holds the configuration values used by the SiteService
type Options struct {
	EventID          string
	SpeakerImagesDir string
	PhotoConcurrency int
	SessionsIndex    string
	SpeakersIndex    string
	SessionsMapping  string
	SpeakersMapping  string
}

// SiteService merges the event data with patches and add-ons into the site data set
type SiteService struct {
	deps     Dependencies
	opts     Options
	recorder ports.Recorder
	logger   *slog.Logger

	// serializes Publish, which writes to the site directory
	publishMu sync.Mutex
}

// NewSiteService creates a new SiteService, retrieving configuration from context
func NewSiteService(ctx context.Context, deps Dependencies, sessionsMapping, speakersMapping string) *SiteService {
	cfg := config.GetConfig(ctx)
	return NewSiteServiceWithOptions(deps, Options{
		EventID:          cfg.ConferenceHall.EventID,
		SpeakerImagesDir: cfg.Site.SpeakerImagesDir(),
		PhotoConcurrency: cfg.Photos.Concurrency,
		SessionsIndex:    cfg.Index.Sessions,
		SpeakersIndex:    cfg.Index.Speakers,
		SessionsMapping:  sessionsMapping,
		SpeakersMapping:  speakersMapping,
	})
}

// NewSiteServiceWithOptions creates a new SiteService with explicit options.
// This constructor is primarily intended for testing purposes.
func NewSiteServiceWithOptions(deps Dependencies, opts Options) *SiteService {
	if opts.PhotoConcurrency < 1 {
		opts.PhotoConcurrency = 1
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SiteService{
		deps:     deps,
		opts:     opts,
		recorder: recorder,
		logger:   slog.Default().With("component", "site"),
	}
}

// SetLogger sets a custom logger for the service
func (s *SiteService) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// GenerateSite fetches the event and builds the complete site data set.
// Every collection of the returned site is non-nil.
func (s *SiteService) GenerateSite(ctx context.Context) (site *domain.Site, err error) {
	started := time.Now()
	defer func() {
		s.recorder.ObserveGeneration(err == nil, time.Since(started).Seconds())
	}()

	event, err := s.deps.Source.GetEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	s.logger.Info("fetched event", "eventID", s.opts.EventID, "name", event.Name)

	data, err := s.GenerateDataFromEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	schedule, err := s.deps.Schedule.LoadSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		schedule = &domain.Schedule{}
	}

	sponsors, err := s.deps.Sponsors.LoadSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsors: %w", err)
	}

	team, err := s.GenerateTeam(ctx)
	if err != nil {
		return nil, err
	}

	site = &domain.Site{
		Info:       domain.NewInfo(s.opts.EventID, event),
		Sessions:   orEmpty(data.Sessions),
		Speakers:   orEmpty(data.Speakers),
		Categories: orEmpty(data.Categories),
		Formats:    orEmpty(data.Formats),
		Rooms:      orEmpty(schedule.Rooms),
		Slots:      orEmpty(schedule.Slots),
		Schedule:   orEmpty(schedule.Schedule),
		Sponsors:   orEmpty(sponsors),
		Team:       orEmpty(team),
	}
	s.recordCounts(site)

	return site, nil
}

// EventData holds the entity collections derived from an event
type EventData struct {
	Sessions   []domain.Session
	Speakers   []domain.SiteSpeaker
	Categories []domain.SiteCategory
	Formats    []domain.SiteFormat
}

// GenerateDataFromEvent runs the merge pipeline of every entity kind.
// Sessions come first: the speakers depend on the selected talks.
func (s *SiteService) GenerateDataFromEvent(ctx context.Context, event *domain.Event) (*EventData, error) {
	sessions, err := s.GenerateSessions(ctx, event)
	if err != nil {
		return nil, err
	}
	speakers, err := s.GenerateSpeakers(ctx, event, sessions.Talks)
	if err != nil {
		return nil, err
	}
	categories, err := s.GenerateCategories(ctx, event)
	if err != nil {
		return nil, err
	}
	formats, err := s.GenerateFormats(ctx, event)
	if err != nil {
		return nil, err
	}

	return &EventData{
		Sessions:   sessions.Sessions,
		Speakers:   speakers,
		Categories: categories,
		Formats:    formats,
	}, nil
}

func (s *SiteService) recordCounts(site *domain.Site) {
	s.recorder.SetEntityCount("sessions", len(site.Sessions))
	s.recorder.SetEntityCount("speakers", len(site.Speakers))
	s.recorder.SetEntityCount("categories", len(site.Categories))
	s.recorder.SetEntityCount("formats", len(site.Formats))
	s.recorder.SetEntityCount("sponsors", len(site.Sponsors))
	s.recorder.SetEntityCount("team", len(site.Team))
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(bool, float64) {}
func (nopRecorder) SetEntityCount(string, int)      {}
func (nopRecorder) IncPhotoDownload(string)         {}
