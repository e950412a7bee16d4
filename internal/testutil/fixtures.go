package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/npellerin/foulee/internal/domain"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithLevel(l domain.Level) ProfileOption {
	return func(p *domain.Profile) {
		p.Level = l
	}
}

func WithGoal(g domain.Distance) ProfileOption {
	return func(p *domain.Profile) {
		p.Goal = g
	}
}

func WithTargetRun(d time.Time) ProfileOption {
	return func(p *domain.Profile) {
		p.TargetRun = &d
	}
}

func WithTrainingDays(days ...domain.Day) ProfileOption {
	return func(p *domain.Profile) {
		p.TrainingDays = domain.NewDaySet(days...)
	}
}

func WithVDOT(v float64) ProfileOption {
	return func(p *domain.Profile) {
		p.VDOT = &v
	}
}

func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := &domain.Profile{
		ID:           "default",
		Name:         name,
		Level:        domain.LevelIntermediate,
		Mode:         domain.ModeRun,
		Goal:         domain.Dist10K,
		TrainingDays: domain.NewDaySet(domain.Tuesday, domain.Sunday),
		DayCountMin:  3,
		DayCountMax:  4,
		SpacingMin:   1,
		SpacingMax:   3,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan options
type PlanOption func(*domain.TrainingPlan)

func WithActive(active bool) PlanOption {
	return func(p *domain.TrainingPlan) {
		p.Active = active
	}
}

func WithPlanGoal(g domain.Distance) PlanOption {
	return func(p *domain.TrainingPlan) {
		p.Goal = g
	}
}

func NewTestPlan(nbWeeks int, opts ...PlanOption) *domain.TrainingPlan {
	now := time.Now().UTC()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := &domain.TrainingPlan{
		ID:        uuid.New().String(),
		Mode:      domain.ModeRun,
		Goal:      domain.Dist10K,
		Level:     domain.LevelIntermediate,
		NbWeeks:   nbWeeks,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, nbWeeks*7-1),
		Days:      domain.NewDaySet(domain.Tuesday, domain.Thursday, domain.Sunday),
		Phases: []domain.Phase{
			{Name: domain.PhaseBase, WeekStart: 1, WeekEnd: nbWeeks},
		},
		Active:    true,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionDate(d time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Date = d
	}
}

func WithSessionType(t domain.SessionType) SessionOption {
	return func(s *domain.Session) {
		s.Type = t
	}
}

func WithRisk(w domain.WarRoom) SessionOption {
	return func(s *domain.Session) {
		s.WarRoom = w
	}
}

func NewTestSession(planID string, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		PlanID:      planID,
		SlotID:      "w1-tuesday",
		Title:       "Easy run",
		Description: "Conversational pace throughout.",
		Date:        time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Week:        1,
		Phase:       domain.PhaseBase,
		Type:        domain.TypeEndurance,
		DurationMin: 45,
		DistanceKm:  8,
		Tags:        []domain.IntensityTag{domain.TagEasy},
		Steps:       []string{"45min easy"},
		WarRoom:     domain.WarRoom{Level: domain.RiskSoft},
		Metadata:    map[string]string{"template": "EF_45"},
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Feedback options
type FeedbackOption func(*domain.Feedback)

func WithState(st domain.PerceivedState) FeedbackOption {
	return func(f *domain.Feedback) {
		f.State = st
	}
}

func NewTestFeedback(date time.Time, opts ...FeedbackOption) *domain.Feedback {
	f := &domain.Feedback{
		ID:        uuid.New().String(),
		Date:      date,
		State:     domain.StateNeutral,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
