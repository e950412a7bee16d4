package repository

import (
	"context"
	"errors"
	"time"

	"github.com/npellerin/foulee/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo stores the single runner profile of this installation.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// PlanRepo stores generated training plans and their sessions.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.TrainingPlan) error
	GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error)
	GetActive(ctx context.Context) (*domain.TrainingPlan, error)
	DeactivateAll(ctx context.Context) error
	CreateSession(ctx context.Context, s *domain.Session) error
	ListSessions(ctx context.Context, planID string) ([]*domain.Session, error)
	ListSessionsFrom(ctx context.Context, planID string, from time.Time) ([]*domain.Session, error)
}

// FeedbackRepo stores daily perceived-fatigue reports. Dates are unique:
// logging twice for the same day replaces the earlier report.
type FeedbackRepo interface {
	Upsert(ctx context.Context, f *domain.Feedback) error
	GetByDate(ctx context.Context, date time.Time) (*domain.Feedback, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Feedback, error)
}
