package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/npellerin/foulee/internal/domain"
)

var anchor = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

func TestComputeWindow_MarathonReprise(t *testing.T) {
	target := anchor.AddDate(0, 6, 0)
	w := ComputeWindow(WindowInput{
		Mode:       domain.ModeRun,
		Goal:       domain.DistMarathon,
		Level:      domain.LevelReprise,
		TargetDate: &target,
		Anchor:     anchor,
	})

	// Marathon base 16 weeks, reprise adjustment +1, band [12,28].
	assert.Equal(t, 17, w.NbWeeks)
	assert.GreaterOrEqual(t, w.NbWeeks, 12)
	assert.LessOrEqual(t, w.NbWeeks, 28)
	assert.Equal(t, dateOnly(target), w.EndDate)
	assert.Equal(t, w.EndDate.AddDate(0, 0, -7*17), w.StartDate)
}

func TestComputeWindow_LevelAdjustmentClampedToBand(t *testing.T) {
	w := ComputeWindow(WindowInput{
		Mode:   domain.ModeRun,
		Goal:   domain.Dist5K,
		Level:  domain.LevelExpert,
		Anchor: anchor,
	})
	// 5K base 8, expert -2, floor of the [6,16] band.
	assert.Equal(t, 6, w.NbWeeks)
}

func TestComputeWindow_PastTargetFallsBackToAnchor(t *testing.T) {
	past := anchor.AddDate(0, -2, 0)
	w := ComputeWindow(WindowInput{
		Mode:       domain.ModeRun,
		Goal:       domain.Dist10K,
		Level:      domain.LevelIntermediate,
		TargetDate: &past,
		Anchor:     anchor,
	})
	assert.Equal(t, dateOnly(anchor), w.EndDate)
}

func TestComputeWindow_NonRunningModes(t *testing.T) {
	tests := []struct {
		mode domain.Mode
		want int
	}{
		{domain.ModeTrail, 16},
		{domain.ModeBike, 12},
		{domain.ModeWalk, 8},
		{domain.Mode("rowing"), fallbackWeeks},
	}
	for _, tt := range tests {
		w := ComputeWindow(WindowInput{Mode: tt.mode, Anchor: anchor})
		assert.Equal(t, tt.want, w.NbWeeks, "mode %s", tt.mode)
	}
}

func TestComputeWindow_RunWithoutRaceUsesFallback(t *testing.T) {
	w := ComputeWindow(WindowInput{Mode: domain.ModeRun, Anchor: anchor})
	assert.Equal(t, fallbackWeeks, w.NbWeeks)
}

func TestComputeWindow_StartDateMonotonicInWeeks(t *testing.T) {
	// Holding the end date fixed, a longer plan starts strictly earlier.
	var prev *PlanWindow
	for _, level := range []domain.Level{domain.LevelExpert, domain.LevelIntermediate, domain.LevelBeginner} {
		w := ComputeWindow(WindowInput{
			Mode:   domain.ModeRun,
			Goal:   domain.DistHalf,
			Level:  level,
			Anchor: anchor,
		})
		if prev != nil {
			assert.Greater(t, w.NbWeeks, prev.NbWeeks)
			assert.True(t, w.StartDate.Before(prev.StartDate),
				"longer plan must start earlier: %s vs %s", w.StartDate, prev.StartDate)
		}
		prev = &w
	}
}

func TestParseLenientDate(t *testing.T) {
	got := ParseLenientDate("2026-09-15")
	if assert.NotNil(t, got) {
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *got)
	}
	assert.Nil(t, ParseLenientDate(""))
	assert.Nil(t, ParseLenientDate("15/09/2026"))
	assert.Nil(t, ParseLenientDate("not-a-date"))
}
