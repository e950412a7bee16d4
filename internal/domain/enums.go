package domain

import "strings"

// Mode is the sport the plan is generated for.
type Mode string

const (
	ModeRun   Mode = "run"
	ModeTrail Mode = "trail"
	ModeBike  Mode = "bike"
	ModeWalk  Mode = "walk"
)

// ParseMode resolves a mode token, defaulting to ModeRun for empty input.
// Unrecognized tokens pass through so the window calculator can apply its
// unknown-mode fallback.
func ParseMode(token string) Mode {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return ModeRun
	}
	return Mode(t)
}

// Distance is the goal race distance class.
type Distance string

const (
	Dist5K       Distance = "5k"
	Dist10K      Distance = "10k"
	DistHalf     Distance = "half"
	DistMarathon Distance = "marathon"
)

// ParseDistance resolves a race distance token leniently. Unknown tokens
// map to the empty Distance, which downstream tables treat as "no race".
func ParseDistance(token string) Distance {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "5k", "5km":
		return Dist5K
	case "10k", "10km":
		return Dist10K
	case "half", "half-marathon", "halfmarathon", "semi", "21k":
		return DistHalf
	case "marathon", "42k":
		return DistMarathon
	}
	return ""
}

// Level is the runner's experience level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelReprise      Level = "reprise" // returning after a long break
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// ParseLevel resolves a level token, defaulting to intermediate.
func ParseLevel(token string) Level {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "beginner", "novice":
		return LevelBeginner
	case "reprise", "returning":
		return LevelReprise
	case "advanced":
		return LevelAdvanced
	case "expert":
		return LevelExpert
	}
	return LevelIntermediate
}

// PhaseName names a training phase.
type PhaseName string

const (
	PhaseBase  PhaseName = "base"
	PhaseBuild PhaseName = "build"
	PhaseTaper PhaseName = "taper"
)

// IntensityTag is a Daniels-style pace tag carried by session templates.
type IntensityTag string

const (
	TagEasy      IntensityTag = "E"
	TagMarathon  IntensityTag = "M"
	TagThreshold IntensityTag = "T"
	TagInterval  IntensityTag = "I"
	TagRepeat    IntensityTag = "R"
)

// SessionType classifies a slot's intended workout.
type SessionType string

const (
	TypeEndurance SessionType = "endurance"
	TypeTempo     SessionType = "tempo"
	TypeIntervals SessionType = "intervals"
	TypeLong      SessionType = "long"
	TypeRecovery  SessionType = "recovery"
)

// RiskLevel is the war-room annotation level for a generated session.
// Hard and critical are reserved for history-based escalation and are
// never produced by the current evaluator.
type RiskLevel string

const (
	RiskSoft     RiskLevel = "soft"
	RiskMedium   RiskLevel = "medium"
	RiskHard     RiskLevel = "hard"
	RiskCritical RiskLevel = "critical"
)

// PerceivedState is the fatigue feedback driving the adaptation layer.
// The empty value means no feedback was recorded.
type PerceivedState string

const (
	StateFatigued PerceivedState = "fatigued"
	StateNeutral  PerceivedState = "neutral"
	StateGood     PerceivedState = "good"
	StateUnknown  PerceivedState = "unknown"
)

// ParsePerceivedState resolves a feedback token. Empty stays empty
// (absent); anything unrecognized becomes StateUnknown.
func ParsePerceivedState(token string) PerceivedState {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "":
		return ""
	case "fatigued", "tired":
		return StateFatigued
	case "neutral", "ok":
		return StateNeutral
	case "good", "fresh":
		return StateGood
	}
	return StateUnknown
}

// IntensityCap bounds what the session selector may schedule after
// adaptation.
type IntensityCap string

const (
	CapAsPlanned     IntensityCap = "AS_PLANNED"
	CapEasyOnly      IntensityCap = "EF_ONLY"
	CapNoEscalation  IntensityCap = "NO_ESCALATION"
	CapNoTypeUpshift IntensityCap = "NO_TYPE_UPSHIFT"
)
