package ports

import (
	"context"

	"github.com/javaBin/talks-site/internal/domain"
)

// Add-on loaders return hand-authored content merged alongside the event data.
// A missing add-on yields an empty result, not an error.

// SessionAddons loads extra sessions, already shaped as site sessions
type SessionAddons interface {
	LoadExtraSessions(ctx context.Context) ([]domain.Document, error)
}

// SpeakerAddons loads extra speakers, already shaped as site speakers
type SpeakerAddons interface {
	LoadExtraSpeakers(ctx context.Context) ([]domain.Document, error)
}

// ScheduleAddons loads rooms, slots and schedule entries
type ScheduleAddons interface {
	LoadSchedule(ctx context.Context) (*domain.Schedule, error)
}

// SponsorAddons loads the event sponsors
type SponsorAddons interface {
	LoadSponsors(ctx context.Context) ([]domain.Sponsor, error)
}

// TeamSource loads the organizing team
type TeamSource interface {
	LoadTeam(ctx context.Context) ([]domain.Member, error)
}
