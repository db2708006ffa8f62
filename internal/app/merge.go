package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/javaBin/talks-site/internal/domain"
	"github.com/javaBin/talks-site/internal/ports"
)

// SessionsResult holds the generated sessions along with the talks they were
// selected from. Speakers are selected from these talks, not from the
// patched sessions.
type SessionsResult struct {
	Sessions []domain.Session
	Talks    []domain.Talk
}

// GenerateSessions selects the confirmed and accepted talks, adds the extra
// sessions, applies the session patches and sorts the result by key.
func (s *SiteService) GenerateSessions(ctx context.Context, event *domain.Event) (*SessionsResult, error) {
	selected := make([]domain.Talk, 0, len(event.Talks))
	for _, talk := range event.Talks {
		if talk.State.IsSelected() {
			selected = append(selected, talk)
		}
	}

	base := make([]domain.Session, 0, len(selected))
	for _, talk := range selected {
		base = append(base, domain.TalkToSession(event, talk))
	}

	extra, err := s.deps.Sessions.LoadExtraSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load extra sessions: %w", err)
	}

	sessions, err := resolve(ctx, s.deps.Patcher, ports.CategorySessions, base, extra)
	if err != nil {
		return nil, err
	}
	warnDuplicateKeys(s.logger, ports.CategorySessions, sessions)

	s.logger.Info("found sessions", "count", len(sessions), "selectedTalks", len(selected), "extra", len(extra))
	return &SessionsResult{Sessions: sessions, Talks: selected}, nil
}

// GenerateSpeakers selects the event speakers of the given talks, adds the
// extra speakers, applies the speaker patches, sorts the result by key and
// downloads the speaker photos.
func (s *SiteService) GenerateSpeakers(ctx context.Context, event *domain.Event, talks []domain.Talk) ([]domain.SiteSpeaker, error) {
	speakerIDs := make(map[string]struct{})
	for _, talk := range talks {
		for _, id := range talk.Speakers {
			speakerIDs[id] = struct{}{}
		}
	}
	s.logger.Info("found speaker references", "count", len(speakerIDs))

	base := make([]domain.SiteSpeaker, 0, len(speakerIDs))
	for _, speaker := range event.Speakers {
		if _, ok := speakerIDs[speaker.UID]; ok {
			base = append(base, domain.ToSiteSpeaker(speaker))
		}
	}

	extra, err := s.deps.Speakers.LoadExtraSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load extra speakers: %w", err)
	}

	speakers, err := resolve(ctx, s.deps.Patcher, ports.CategorySpeakers, base, extra)
	if err != nil {
		return nil, err
	}
	warnDuplicateKeys(s.logger, ports.CategorySpeakers, speakers)

	speakers = s.enrichPhotos(ctx, speakers)

	s.logger.Info("found speakers", "count", len(speakers), "extra", len(extra))
	return speakers, nil
}

// GenerateCategories converts and patches the event categories
func (s *SiteService) GenerateCategories(ctx context.Context, event *domain.Event) ([]domain.SiteCategory, error) {
	base := make([]domain.SiteCategory, 0, len(event.Categories))
	for _, c := range event.Categories {
		base = append(base, domain.NewCategory(c))
	}
	s.logger.Info("found categories", "count", len(base))

	categories, err := resolve(ctx, s.deps.Patcher, ports.CategoryCategories, base, nil)
	if err != nil {
		return nil, err
	}
	warnDuplicateKeys(s.logger, ports.CategoryCategories, categories)
	return categories, nil
}

// GenerateFormats converts and patches the event formats
func (s *SiteService) GenerateFormats(ctx context.Context, event *domain.Event) ([]domain.SiteFormat, error) {
	base := make([]domain.SiteFormat, 0, len(event.Formats))
	for _, f := range event.Formats {
		base = append(base, domain.NewFormat(f))
	}
	s.logger.Info("found formats", "count", len(base))

	formats, err := resolve(ctx, s.deps.Patcher, ports.CategoryFormats, base, nil)
	if err != nil {
		return nil, err
	}
	warnDuplicateKeys(s.logger, ports.CategoryFormats, formats)
	return formats, nil
}

// GenerateTeam loads the organizing team sorted by key
func (s *SiteService) GenerateTeam(ctx context.Context) ([]domain.Member, error) {
	team, err := s.deps.Team.LoadTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	s.logger.Info("found team members", "count", len(team))

	domain.SortByKey(team)
	return team, nil
}

// resolve appends the extra documents to the base entities, applies the
// patches of the category and projects the result back onto T, so that no
// field unknown to the site model survives. The result is sorted by key.
func resolve[T domain.Keyed](ctx context.Context, patcher ports.Patcher, category string, base []T, extra []domain.Document) ([]T, error) {
	docs, err := domain.ToDocuments(base)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", category, err)
	}
	docs = append(docs, extra...)

	patched, err := patcher.Apply(ctx, category, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s patches: %w", category, err)
	}

	result, err := domain.Project[T](patched)
	if err != nil {
		return nil, fmt.Errorf("failed to project %s: %w", category, err)
	}

	domain.SortByKey(result)
	return result, nil
}

// warnDuplicateKeys logs the keys shared by several entities of a sorted collection.
// Entities are kept; pages generated from them will collide.
func warnDuplicateKeys[T domain.Keyed](logger *slog.Logger, category string, sorted []T) {
	for _, key := range domain.DuplicateKeys(sorted) {
		logger.Warn("duplicate key", "category", category, "key", key)
	}
}
