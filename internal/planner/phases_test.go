package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npellerin/foulee/internal/domain"
)

func TestBuildPhases_MarathonSixteenWeeks(t *testing.T) {
	phases := BuildPhases(16, domain.DistMarathon)

	// 35/45/20 split of 16 weeks: 5 base, 7 build, taper absorbs the rest.
	assert.Equal(t, []domain.Phase{
		{Name: domain.PhaseBase, WeekStart: 1, WeekEnd: 5},
		{Name: domain.PhaseBuild, WeekStart: 6, WeekEnd: 12},
		{Name: domain.PhaseTaper, WeekStart: 13, WeekEnd: 16},
	}, phases)
}

func TestBuildPhases_FiveKHasNoTaper(t *testing.T) {
	phases := BuildPhases(8, domain.Dist5K)
	assert.Len(t, phases, 2)
	assert.Equal(t, domain.PhaseBase, phases[0].Name)
	assert.Equal(t, domain.PhaseBuild, phases[1].Name)
	assert.Equal(t, 8, phases[1].WeekEnd)
}

// TestBuildPhases_CoverageInvariant checks that for every plan length the
// phases cover weeks 1..nbWeeks exactly once, contiguously, with no
// overlap and every phase at least one week long.
func TestBuildPhases_CoverageInvariant(t *testing.T) {
	goals := []domain.Distance{
		domain.Dist5K, domain.Dist10K, domain.DistHalf, domain.DistMarathon, "",
	}
	for _, goal := range goals {
		for nb := 1; nb <= 30; nb++ {
			phases := BuildPhases(nb, goal)
			assert.NotEmpty(t, phases, "goal %q nb %d", goal, nb)

			next := 1
			for _, p := range phases {
				assert.Equal(t, next, p.WeekStart, "goal %q nb %d: gap or overlap", goal, nb)
				assert.GreaterOrEqual(t, p.WeekEnd, p.WeekStart, "goal %q nb %d: empty phase", goal, nb)
				next = p.WeekEnd + 1
			}
			assert.Equal(t, nb+1, next, "goal %q nb %d: coverage must end at nbWeeks", goal, nb)

			for week := 1; week <= nb; week++ {
				_, ok := PhaseForWeek(phases, week)
				assert.True(t, ok, "goal %q nb %d: week %d unmapped", goal, nb, week)
			}
		}
	}
}

func TestBuildPhases_InvalidWeeks(t *testing.T) {
	assert.Nil(t, BuildPhases(0, domain.Dist10K))
	assert.Nil(t, BuildPhases(-3, domain.Dist10K))
}

func TestPhaseForWeek_OutsideRanges(t *testing.T) {
	phases := BuildPhases(10, domain.DistHalf)
	_, ok := PhaseForWeek(phases, 0)
	assert.False(t, ok)
	_, ok = PhaseForWeek(phases, 11)
	assert.False(t, ok)
}
