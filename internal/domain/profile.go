package domain

import "time"

// Profile is the runner's stored configuration. Values are validated and
// defaulted once at the boundary (CLI/repository); the planner receives
// them already typed.
type Profile struct {
	ID        string
	Name      string
	Level     Level
	Mode      Mode
	Goal      Distance
	TargetRun *time.Time // goal race date, nil when none set

	// Weekly availability and spacing preferences.
	TrainingDays DaySet // user-mandated days, always kept in the final set
	DayCountMin  int
	DayCountMax  int
	SpacingMin   int
	SpacingMax   int

	// VDOT is an externally computed fitness index used to tune pace
	// targets. It is an input to plan generation, never derived here.
	VDOT *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultRecommendedDays returns the coaching reference days for a level.
// These seed the rank-2 candidate pool of the day selector.
func DefaultRecommendedDays(level Level) DaySet {
	switch level {
	case LevelBeginner, LevelReprise:
		return NewDaySet(Wednesday, Saturday)
	case LevelAdvanced, LevelExpert:
		return NewDaySet(Tuesday, Thursday, Saturday, Sunday)
	default:
		return NewDaySet(Tuesday, Thursday, Sunday)
	}
}

// Feedback is one day's perceived-fatigue report.
type Feedback struct {
	ID        string
	Date      time.Time
	State     PerceivedState
	Note      string
	CreatedAt time.Time
}
