package planner

import (
	"time"

	"github.com/npellerin/foulee/internal/domain"
)

const dateLayout = "2006-01-02"

// WindowInput carries the validated inputs for plan window calculation.
type WindowInput struct {
	Mode       domain.Mode
	Goal       domain.Distance
	Level      domain.Level
	TargetDate *time.Time // nil when absent or unparseable upstream
	Anchor     time.Time  // "today"; zero falls back to the wall clock
}

// PlanWindow is the computed calendar window of a plan.
type PlanWindow struct {
	NbWeeks   int
	StartDate time.Time
	EndDate   time.Time
}

// distanceBand holds the base plan length and its clamp band, in weeks.
type distanceBand struct {
	base, min, max int
}

var raceWeeks = map[domain.Distance]distanceBand{
	domain.Dist5K:       {base: 8, min: 6, max: 16},
	domain.Dist10K:      {base: 10, min: 8, max: 20},
	domain.DistHalf:     {base: 12, min: 10, max: 24},
	domain.DistMarathon: {base: 16, min: 12, max: 28},
}

// levelAdjustWeeks shifts plan length by experience: beginners get longer
// plans, experts shorter ones.
var levelAdjustWeeks = map[domain.Level]int{
	domain.LevelBeginner:     2,
	domain.LevelReprise:      1,
	domain.LevelIntermediate: 0,
	domain.LevelAdvanced:     -1,
	domain.LevelExpert:       -2,
}

// modeWeeks are flat defaults for non-running modes.
var modeWeeks = map[domain.Mode]int{
	domain.ModeTrail: 16,
	domain.ModeBike:  12,
	domain.ModeWalk:  8,
}

const fallbackWeeks = 8

// ComputeWindow derives the plan window. The end date is the target date
// when it lies in the future of the anchor, otherwise the anchor itself;
// malformed upstream dates never abort generation, they degrade to the
// anchor fallback.
func ComputeWindow(in WindowInput) PlanWindow {
	anchor := in.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}
	end := dateOnly(anchor)
	if in.TargetDate != nil && in.TargetDate.After(anchor) {
		end = dateOnly(*in.TargetDate)
	}

	nb := fallbackWeeks
	if in.Mode == domain.ModeRun {
		if band, ok := raceWeeks[in.Goal]; ok {
			nb = clampInt(band.base+levelAdjustWeeks[in.Level], band.min, band.max)
		}
	} else if weeks, ok := modeWeeks[in.Mode]; ok {
		nb = weeks
	}

	return PlanWindow{
		NbWeeks:   nb,
		StartDate: end.AddDate(0, 0, -7*nb),
		EndDate:   end,
	}
}

// ParseLenientDate parses a YYYY-MM-DD date string, returning nil for
// empty or malformed input. Upstream data quality must not abort plan
// generation, so there is no error path.
func ParseLenientDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
