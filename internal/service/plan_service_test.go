package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/repository"
	"github.com/npellerin/foulee/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Monday, so the generated weeks line up with the anchor exactly.
var genNow = time.Date(2026, 4, 6, 12, 0, 0, 0, time.UTC)

func TestPlanService_GenerateHappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	resp, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	// 10k intermediate: 10 weeks, day count capped at the profile max of 4.
	assert.Equal(t, 10, resp.Plan.NbWeeks)
	assert.Len(t, resp.Plan.Days, 4)
	assert.True(t, resp.Plan.Days.Contains(domain.Tuesday))
	assert.True(t, resp.Plan.Days.Contains(domain.Sunday))
	assert.Len(t, resp.Sessions, 40)

	// Persisted and active.
	got, err := env.plans.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.Plan.ID, got.ID)
	require.NotEmpty(t, got.Phases)
	assert.Equal(t, domain.PhaseBase, got.Phases[0].Name)

	stored, err := env.plans.ListSessions(ctx, resp.Plan.ID)
	require.NoError(t, err)
	assert.Len(t, stored, len(resp.Sessions))
}

func TestPlanService_GenerateWithoutProfile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.planSvc.Generate(context.Background(), app.GeneratePlanRequest{Now: genNow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPlanService_SessionIdentityIsStableAcrossRuns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	first, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)
	second, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	require.Len(t, second.Sessions, len(first.Sessions))
	for i := range first.Sessions {
		assert.Equal(t, first.Sessions[i].ID, second.Sessions[i].ID)
		assert.True(t, first.Sessions[i].Date.Equal(second.Sessions[i].Date))
	}
}

func TestPlanService_RegenerateReplacesActivePlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	first, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)
	second, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	active, err := env.plans.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Plan.ID, active.ID)

	old, err := env.plans.GetByID(ctx, first.Plan.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)
}

func TestPlanService_FatiguedFeedbackShapesTheWholePlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))
	fb := testutil.NewTestFeedback(genNow, testutil.WithState(domain.StateFatigued))
	require.NoError(t, env.feedbackSvc.Log(ctx, fb))

	resp, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	assert.True(t, resp.Adaptation.Applied)
	assert.Equal(t, domain.StateFatigued, resp.Adaptation.State)
	assert.InDelta(t, 0.80, resp.Adaptation.VolumeFactor, 0.001)
	assert.Equal(t, domain.CapEasyOnly, resp.Adaptation.IntensityCap)

	for _, sess := range resp.Sessions {
		assert.Equal(t, domain.TypeEndurance, sess.Type, "slot %s", sess.SlotID)
		assert.Contains(t, sess.Tags, domain.TagEasy, "slot %s", sess.SlotID)
	}
}

func TestPlanService_NoFeedbackMeansNoAdaptation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	resp, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	assert.False(t, resp.Adaptation.Applied)
	assert.Empty(t, resp.Adaptation.Rules)
	assert.InDelta(t, 1.0, resp.Adaptation.VolumeFactor, 0.001)
}

// brokenFeedbackRepo simulates an infrastructure failure on reads.
type brokenFeedbackRepo struct {
	err error
}

func (r *brokenFeedbackRepo) Upsert(ctx context.Context, f *domain.Feedback) error { return r.err }
func (r *brokenFeedbackRepo) GetByDate(ctx context.Context, date time.Time) (*domain.Feedback, error) {
	return nil, r.err
}
func (r *brokenFeedbackRepo) ListRecent(ctx context.Context, days int) ([]*domain.Feedback, error) {
	return nil, r.err
}

func TestPlanService_FeedbackReadFailureAbortsGeneration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	boom := errors.New("database is locked")
	broken := &brokenFeedbackRepo{err: boom}
	svc := NewPlanService(env.profiles, env.plans, broken, env.cat, testutil.NewTestUoW(env.db))

	_, err := svc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	// The failure must not be mistaken for an unknown state: nothing
	// gets persisted.
	_, err = env.plans.GetActive(ctx)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPlanService_GoodFeedbackScalesVolumeUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))
	require.NoError(t, env.feedbackSvc.Log(ctx, testutil.NewTestFeedback(genNow, testutil.WithState(domain.StateGood))))

	resp, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	assert.InDelta(t, 1.05, resp.Adaptation.VolumeFactor, 0.001)
	assert.Equal(t, domain.CapNoTypeUpshift, resp.Adaptation.IntensityCap)
	// Quality and long slots keep their character on a good day.
	var hasLong bool
	for _, sess := range resp.Sessions {
		if sess.Type == domain.TypeLong {
			hasLong = true
		}
	}
	assert.True(t, hasLong)
}

func TestPlanService_NoSessionAfterRaceDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	target := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC) // a Wednesday
	profile := testutil.NewTestProfile("Runner", testutil.WithTargetRun(target))
	require.NoError(t, env.profiles.Upsert(ctx, profile))

	resp, err := env.planSvc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.NoError(t, err)

	assert.True(t, resp.Plan.EndDate.Equal(target))
	for _, sess := range resp.Sessions {
		assert.False(t, sess.Date.After(target), "session %s past race day", sess.SlotID)
	}
}

func TestPlanService_RollbackLeavesNoPartialPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.Upsert(ctx, testutil.NewTestProfile("Runner")))

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 5, Err: boom}
	svc := NewPlanService(env.profiles, env.plans, env.feedback, env.cat, uow)

	_, err := svc.Generate(ctx, app.GeneratePlanRequest{Now: genNow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	_, err = env.plans.GetActive(ctx)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
