package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/catalogue"
	"github.com/npellerin/foulee/internal/db"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/planner"
	"github.com/npellerin/foulee/internal/repository"
)

type planService struct {
	profiles repository.ProfileRepo
	plans    repository.PlanRepo
	feedback repository.FeedbackRepo
	cat      *catalogue.Catalogue
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	profiles repository.ProfileRepo,
	plans repository.PlanRepo,
	feedback repository.FeedbackRepo,
	cat *catalogue.Catalogue,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		profiles: profiles,
		plans:    plans,
		feedback: feedback,
		cat:      cat,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate runs the full pipeline: window calculation, day selection,
// phase partitioning, adaptation, then per-slot session selection. The
// resulting plan replaces any previously active plan; plan and sessions
// are persisted in a single transaction.
func (s *planService) Generate(ctx context.Context, req app.GeneratePlanRequest) (*app.GeneratePlanResponse, error) {
	started := time.Now()
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	resp, err := s.generate(ctx, now)

	var fields map[string]any
	if resp != nil {
		fields = map[string]any{
			"nb_weeks": resp.Plan.NbWeeks,
			"sessions": len(resp.Sessions),
			"state":    string(resp.Adaptation.State),
		}
	}
	observe(ctx, s.observer, "generate_plan", started, err, fields)

	return resp, err
}

func (s *planService) generate(ctx context.Context, now time.Time) (*app.GeneratePlanResponse, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	window := planner.ComputeWindow(planner.WindowInput{
		Mode:       profile.Mode,
		Goal:       profile.Goal,
		Level:      profile.Level,
		TargetDate: profile.TargetRun,
		Anchor:     now,
	})

	days := planner.SelectDays(planner.DaySelectionInput{
		UserDays:        profile.TrainingDays,
		RecommendedDays: domain.DefaultRecommendedDays(profile.Level),
		DayCountMin:     profile.DayCountMin,
		DayCountMax:     profile.DayCountMax,
		SpacingMin:      profile.SpacingMin,
		SpacingMax:      profile.SpacingMax,
	})
	if len(days) == 0 {
		return nil, fmt.Errorf("no training days could be selected for the profile")
	}

	phases := planner.BuildPhases(window.NbWeeks, profile.Goal)

	decision, trace, err := s.adapt(ctx, now)
	if err != nil {
		return nil, err
	}

	plan := &domain.TrainingPlan{
		ID:        uuid.New().String(),
		Mode:      profile.Mode,
		Goal:      profile.Goal,
		Level:     profile.Level,
		NbWeeks:   window.NbWeeks,
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Days:      days,
		Phases:    phases,
		Active:    true,
		CreatedAt: now.UTC(),
	}

	sessions, err := s.resolveSessions(plan, *profile, decision, window)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		if err := txPlans.DeactivateAll(ctx); err != nil {
			return err
		}
		if err := txPlans.Create(ctx, plan); err != nil {
			return err
		}
		for _, sess := range sessions {
			if err := txPlans.CreateSession(ctx, sess); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}

	return &app.GeneratePlanResponse{Plan: plan, Sessions: sessions, Adaptation: trace}, nil
}

// adapt loads today's feedback, if any, and runs the adaptation layer
// once. Absence of feedback is the absent state: the base decision
// passes through untouched. A repository failure is not a state and
// aborts the generation.
func (s *planService) adapt(ctx context.Context, now time.Time) (planner.Decision, app.AdaptationTrace, error) {
	var state domain.PerceivedState
	fb, err := s.feedback.GetByDate(ctx, dateOnly(now))
	switch {
	case err == nil:
		state = fb.State
	case errors.Is(err, repository.ErrNotFound):
		// no feedback today; keep the plan as designed
	default:
		return planner.Decision{}, app.AdaptationTrace{}, fmt.Errorf("loading feedback: %w", err)
	}

	rctx := &planner.RunContext{State: state}
	decision, trace := planner.ApplyAdaptation(rctx, planner.AsPlannedDecision())
	return decision, trace, nil
}

// resolveSessions expands the weekly day set into dated slots and picks a
// session for each. Weeks are aligned on the Monday at or before the plan
// start; slots falling after the end date (race day) are skipped.
func (s *planService) resolveSessions(plan *domain.TrainingPlan, profile domain.Profile, decision planner.Decision, window planner.PlanWindow) ([]*domain.Session, error) {
	anchor := mondayOnOrBefore(window.StartDate)

	var sessions []*domain.Session
	for week := 1; week <= window.NbWeeks; week++ {
		phase, ok := planner.PhaseForWeek(plan.Phases, week)
		if !ok {
			phase = domain.PhaseBase
		}
		for i, day := range plan.Days {
			date := anchor.AddDate(0, 0, (week-1)*7+int(day))
			if date.After(window.EndDate) {
				continue
			}
			slot := planner.Slot{
				ID:    fmt.Sprintf("w%d-%s", week, strings.ToLower(day.String())),
				Date:  date,
				Week:  week,
				Phase: phase,
				Type:  slotType(i, len(plan.Days), phase, profile.Goal),
			}
			tplType := slot.Type
			if decision.TargetTypeOverride == domain.TagEasy {
				tplType = domain.TypeEndurance
			}
			sess, err := planner.SelectSession(slot, profile, profile.Goal, decision, s.templatesFor(tplType))
			if err != nil {
				return nil, err
			}
			sess.PlanID = plan.ID
			sess.CreatedAt = plan.CreatedAt
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

// slotType assigns a session type to each weekly position: the long run
// closes the week, one quality slot opens it when the week carries three
// or more sessions, everything else stays endurance. Quality means
// interval work for short races in the build phase, tempo otherwise.
func slotType(position, total int, phase domain.PhaseName, goal domain.Distance) domain.SessionType {
	if total > 1 && position == total-1 {
		return domain.TypeLong
	}
	if total >= 3 && position == 0 && phase == domain.PhaseBuild {
		if goal == domain.Dist5K || goal == domain.Dist10K {
			return domain.TypeIntervals
		}
		return domain.TypeTempo
	}
	return domain.TypeEndurance
}

// templatesFor narrows the catalogue to the slot's type; an empty slice
// falls back to the whole catalogue so a thin catalogue still resolves.
func (s *planService) templatesFor(t domain.SessionType) []domain.SessionTemplate {
	if byType := s.cat.ByType(t); len(byType) > 0 {
		return byType
	}
	return s.cat.ListAll()
}

func (s *planService) GetActive(ctx context.Context) (*domain.TrainingPlan, error) {
	return s.plans.GetActive(ctx)
}

func (s *planService) ListSessions(ctx context.Context, planID string) ([]*domain.Session, error) {
	return s.plans.ListSessions(ctx, planID)
}

func (s *planService) ListUpcoming(ctx context.Context, planID string, from time.Time) ([]*domain.Session, error) {
	return s.plans.ListSessionsFrom(ctx, planID, from)
}

func mondayOnOrBefore(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
