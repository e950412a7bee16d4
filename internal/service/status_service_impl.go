package service

import (
	"context"
	"time"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/planner"
	"github.com/npellerin/foulee/internal/repository"
)

type statusService struct {
	plans repository.PlanRepo
}

func NewStatusService(plans repository.PlanRepo) StatusService {
	return &statusService{plans: plans}
}

// GetStatus summarises the active plan: current week and phase, the next
// scheduled session, and the risk distribution over all sessions.
func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	plan, err := s.plans.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.plans.ListSessions(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	week := currentWeek(plan, now)
	phase, _ := planner.PhaseForWeek(plan.Phases, week)

	resp := &app.StatusResponse{
		Plan:           plan,
		CurrentWeek:    week,
		CurrentPhase:   phase,
		SessionsTotal:  len(sessions),
		SessionsByRisk: make(map[domain.RiskLevel]int),
	}

	today := dateOnly(now)
	for _, sess := range sessions {
		resp.SessionsByRisk[sess.WarRoom.Level]++
		if resp.NextSession == nil && !sess.Date.Before(today) {
			resp.NextSession = sess
		}
	}
	return resp, nil
}

func currentWeek(plan *domain.TrainingPlan, now time.Time) int {
	elapsed := int(dateOnly(now).Sub(dateOnly(plan.StartDate)).Hours() / 24)
	week := elapsed/7 + 1
	if week < 1 {
		return 1
	}
	if week > plan.NbWeeks {
		return plan.NbWeeks
	}
	return week
}
