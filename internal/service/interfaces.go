package service

import (
	"context"
	"time"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/domain"
)

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

type PlanService interface {
	Generate(ctx context.Context, req app.GeneratePlanRequest) (*app.GeneratePlanResponse, error)
	GetActive(ctx context.Context) (*domain.TrainingPlan, error)
	ListSessions(ctx context.Context, planID string) ([]*domain.Session, error)
	ListUpcoming(ctx context.Context, planID string, from time.Time) ([]*domain.Session, error)
}

type FeedbackService interface {
	Log(ctx context.Context, f *domain.Feedback) error
	GetByDate(ctx context.Context, date time.Time) (*domain.Feedback, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Feedback, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}
