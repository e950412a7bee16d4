package service

import (
	"context"
	"testing"

	"github.com/npellerin/foulee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_SaveDefaultsPreferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := &domain.Profile{
		Name:  "Minimal",
		Level: domain.LevelBeginner,
		Goal:  domain.Dist5K,
	}
	require.NoError(t, env.profileSvc.Save(ctx, p))

	got, err := env.profileSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRun, got.Mode)
	// Beginner reference days are Wednesday and Saturday; default count adds one.
	assert.Equal(t, 3, got.DayCountMin)
	assert.Equal(t, 3, got.DayCountMax)
	assert.Equal(t, 1, got.SpacingMin)
	assert.Equal(t, 3, got.SpacingMax)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestProfileService_SaveRequiresLevel(t *testing.T) {
	env := newTestEnv(t)

	err := env.profileSvc.Save(context.Background(), &domain.Profile{Name: "Nobody"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level is required")
}

func TestProfileService_SaveKeepsExplicitPreferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := &domain.Profile{
		Name:        "Tuned",
		Level:       domain.LevelAdvanced,
		Mode:        domain.ModeTrail,
		Goal:        domain.DistMarathon,
		DayCountMin: 4,
		DayCountMax: 5,
		SpacingMin:  1,
		SpacingMax:  2,
	}
	require.NoError(t, env.profileSvc.Save(ctx, p))

	got, err := env.profileSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeTrail, got.Mode)
	assert.Equal(t, 4, got.DayCountMin)
	assert.Equal(t, 5, got.DayCountMax)
	assert.Equal(t, 2, got.SpacingMax)
}
