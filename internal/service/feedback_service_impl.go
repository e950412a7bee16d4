package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/repository"
)

type feedbackService struct {
	feedback repository.FeedbackRepo
}

func NewFeedbackService(feedback repository.FeedbackRepo) FeedbackService {
	return &feedbackService{feedback: feedback}
}

// Log records one perceived-fatigue report. The date is truncated to a
// calendar day; a second report for the same day replaces the first.
func (s *feedbackService) Log(ctx context.Context, f *domain.Feedback) error {
	switch f.State {
	case domain.StateFatigued, domain.StateNeutral, domain.StateGood, domain.StateUnknown:
	default:
		return fmt.Errorf("invalid perceived state %q", f.State)
	}
	if f.Date.IsZero() {
		f.Date = time.Now().UTC()
	}
	f.Date = time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, time.UTC)
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = time.Now().UTC()
	return s.feedback.Upsert(ctx, f)
}

func (s *feedbackService) GetByDate(ctx context.Context, date time.Time) (*domain.Feedback, error) {
	return s.feedback.GetByDate(ctx, date)
}

func (s *feedbackService) ListRecent(ctx context.Context, days int) ([]*domain.Feedback, error) {
	return s.feedback.ListRecent(ctx, days)
}
