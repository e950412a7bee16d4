package domain

import "time"

// SessionTemplate is one read-only entry of the external catalogue.
// Tags are ordered; the first tag is the template's primary intensity.
type SessionTemplate struct {
	Code        string
	Title       string
	Description string
	Type        SessionType
	Tags        []IntensityTag
	DurationMin int
	DistanceKm  float64
	Steps       []string
}

// PrimaryTag returns the template's leading intensity tag, or empty.
func (t SessionTemplate) PrimaryTag() IntensityTag {
	if len(t.Tags) == 0 {
		return ""
	}
	return t.Tags[0]
}

// HasTag reports whether the template carries the given intensity tag.
func (t SessionTemplate) HasTag(tag IntensityTag) bool {
	for _, v := range t.Tags {
		if v == tag {
			return true
		}
	}
	return false
}

// WarRoom is the risk/safety annotation attached to a generated session.
type WarRoom struct {
	Level  RiskLevel
	Alerts []string
	Notes  []string
}

// Session is a fully specified workout assigned to a slot. It is created
// once per slot resolution and never mutated afterwards.
type Session struct {
	ID          string
	PlanID      string
	SlotID      string
	Title       string
	Description string
	Date        time.Time
	Week        int
	Phase       PhaseName
	Type        SessionType
	DurationMin int
	DistanceKm  float64
	Tags        []IntensityTag
	Steps       []string
	WarRoom     WarRoom
	Metadata    map[string]string
	CreatedAt   time.Time
}

// Phase is one named sub-period of the plan, spanning contiguous weeks.
type Phase struct {
	Name      PhaseName
	WeekStart int
	WeekEnd   int
}

// TrainingPlan is the persisted result of one generation request.
type TrainingPlan struct {
	ID        string
	Mode      Mode
	Goal      Distance
	Level     Level
	NbWeeks   int
	StartDate time.Time
	EndDate   time.Time
	Days      DaySet
	Phases    []Phase
	Active    bool
	CreatedAt time.Time
}
