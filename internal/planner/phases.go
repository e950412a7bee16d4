package planner

import "github.com/npellerin/foulee/internal/domain"

// phasePart is one proportional slice of a plan's weeks.
type phasePart struct {
	name  domain.PhaseName
	ratio float64
}

// Phase ratios per goal distance. Short races keep fewer, coarser phases;
// long races spend more of the plan in build.
var phaseRatios = map[domain.Distance][]phasePart{
	domain.Dist5K: {
		{domain.PhaseBase, 0.50},
		{domain.PhaseBuild, 0.50},
	},
	domain.Dist10K: {
		{domain.PhaseBase, 0.45},
		{domain.PhaseBuild, 0.40},
		{domain.PhaseTaper, 0.15},
	},
	domain.DistHalf: {
		{domain.PhaseBase, 0.40},
		{domain.PhaseBuild, 0.40},
		{domain.PhaseTaper, 0.20},
	},
	domain.DistMarathon: {
		{domain.PhaseBase, 0.35},
		{domain.PhaseBuild, 0.45},
		{domain.PhaseTaper, 0.20},
	},
}

var defaultPhaseRatios = []phasePart{
	{domain.PhaseBase, 0.40},
	{domain.PhaseBuild, 0.40},
	{domain.PhaseTaper, 0.20},
}

// BuildPhases splits weeks 1..nbWeeks into the goal's phase sequence.
// Every phase spans at least one week, the rounding remainder is absorbed
// by the last phase, and the result covers the weeks contiguously with no
// gaps or overlaps. When nbWeeks is too small to seat every phase, the
// trailing phases are dropped rather than emitted empty.
func BuildPhases(nbWeeks int, goal domain.Distance) []domain.Phase {
	if nbWeeks < 1 {
		return nil
	}
	parts, ok := phaseRatios[goal]
	if !ok {
		parts = defaultPhaseRatios
	}

	phases := make([]domain.Phase, 0, len(parts))
	week := 1
	remaining := nbWeeks
	for i, part := range parts {
		if remaining <= 0 {
			break
		}
		length := int(float64(nbWeeks) * part.ratio)
		if length < 1 {
			length = 1
		}
		left := len(parts) - i - 1
		if i == len(parts)-1 {
			length = remaining
		} else if length > remaining-left {
			length = remaining - left
			if length < 1 {
				length = 1
			}
		}
		if length > remaining {
			length = remaining
		}
		phases = append(phases, domain.Phase{
			Name:      part.name,
			WeekStart: week,
			WeekEnd:   week + length - 1,
		})
		week += length
		remaining -= length
	}
	return phases
}

// PhaseForWeek resolves the phase containing the given 1-based week.
// The second return is false for weeks outside every configured range.
func PhaseForWeek(phases []domain.Phase, week int) (domain.PhaseName, bool) {
	for _, p := range phases {
		if week >= p.WeekStart && week <= p.WeekEnd {
			return p.Name, true
		}
	}
	return "", false
}
