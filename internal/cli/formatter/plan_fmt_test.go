package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/npellerin/foulee/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fmtTestPlan() *domain.TrainingPlan {
	return &domain.TrainingPlan{
		ID:        "plan-1",
		Goal:      domain.Dist10K,
		Level:     domain.LevelIntermediate,
		NbWeeks:   2,
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Phases: []domain.Phase{
			{Name: domain.PhaseBase, WeekStart: 1, WeekEnd: 1},
			{Name: domain.PhaseBuild, WeekStart: 2, WeekEnd: 2},
		},
	}
}

func fmtTestSessions() []*domain.Session {
	return []*domain.Session{
		{
			Title:       "Easy run 40min",
			Date:        time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			Week:        1,
			Phase:       domain.PhaseBase,
			Type:        domain.TypeEndurance,
			DurationMin: 40,
			DistanceKm:  7,
			WarRoom:     domain.WarRoom{Level: domain.RiskSoft},
		},
		{
			Title:       "Short intervals 10x400m",
			Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Week:        2,
			Phase:       domain.PhaseBuild,
			Type:        domain.TypeIntervals,
			DurationMin: 55,
			DistanceKm:  10,
			WarRoom:     domain.WarRoom{Level: domain.RiskMedium, Alerts: []string{"quality for a beginner"}},
		},
	}
}

func TestFormatPlan_ContainsHeaderAndWeeks(t *testing.T) {
	out := FormatPlan(fmtTestPlan(), fmtTestSessions())

	assert.Contains(t, out, "10K")
	assert.Contains(t, out, "2026-03-02")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Easy run 40min")
	assert.Contains(t, out, "Short intervals 10x400m")
}

func TestFormatSessions_OneRowPerSession(t *testing.T) {
	out := FormatSessions(fmtTestSessions())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, and one line per session.
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "40min")
	assert.Contains(t, out, "7.0km")
}

func TestFormatSessionDetail_ShowsStepsAndAlerts(t *testing.T) {
	s := fmtTestSessions()[1]
	s.Description = "Classic VO2max session."
	s.Steps = []string{"20min warmup @E", "10x400m @I / 1min jog"}

	out := FormatSessionDetail(s)
	assert.Contains(t, out, "Classic VO2max session.")
	assert.Contains(t, out, "10x400m @I / 1min jog")
	assert.Contains(t, out, "quality for a beginner")
}

func TestFormatPlan_SkipsEmptyWeeks(t *testing.T) {
	sessions := fmtTestSessions()[1:]
	out := FormatPlan(fmtTestPlan(), sessions)

	assert.NotContains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
}
