package app

import (
	"time"

	"github.com/npellerin/foulee/internal/domain"
)

// AdaptationRuleCode identifies one adaptation rule that fired.
type AdaptationRuleCode string

const (
	RuleFatiguedVolumeDown AdaptationRuleCode = "FATIGUED_VOLUME_DOWN"
	RuleFatiguedCapEasy    AdaptationRuleCode = "FATIGUED_CAP_EASY"
	RuleFatiguedTypeToE    AdaptationRuleCode = "FATIGUED_TYPE_TO_E"
	RuleNeutralNoEscalate  AdaptationRuleCode = "NEUTRAL_NO_ESCALATION"
	RuleGoodVolumeUp       AdaptationRuleCode = "GOOD_VOLUME_UP"
	RuleUnknownAsPlanned   AdaptationRuleCode = "UNKNOWN_AS_PLANNED"
)

// SafetyCheckCode identifies one guard evaluated during adaptation.
type SafetyCheckCode string

const (
	CheckVolumeFactorClamp SafetyCheckCode = "VOLUME_FACTOR_CLAMP"
	CheckAlreadyApplied    SafetyCheckCode = "ALREADY_APPLIED_SKIP"
)

// AdaptationTrace records what the adaptation layer consumed, which rules
// and safety checks ran, and the final outcome. A trace is returned on
// every path, including no-ops, for audit and debugging.
type AdaptationTrace struct {
	State        domain.PerceivedState
	Applied      bool
	SkipReason   SafetyCheckCode // set when the idempotence guard fired
	Rules        []AdaptationRuleCode
	SafetyChecks []SafetyCheckCode
	VolumeFactor float64
	IntensityCap domain.IntensityCap
	TypeOverride domain.SessionType // empty when no override
}

// GeneratePlanRequest asks for a full plan generation for the stored profile.
type GeneratePlanRequest struct {
	Now time.Time // anchor date; zero means time.Now
}

// GeneratePlanResponse carries the persisted plan and its sessions.
type GeneratePlanResponse struct {
	Plan       *domain.TrainingPlan
	Sessions   []*domain.Session
	Adaptation AdaptationTrace
}

// StatusRequest asks for a summary of the active plan.
type StatusRequest struct {
	Now time.Time
}

// StatusResponse summarises the active plan for display.
type StatusResponse struct {
	Plan           *domain.TrainingPlan
	CurrentWeek    int
	CurrentPhase   domain.PhaseName
	NextSession    *domain.Session
	SessionsTotal  int
	SessionsByRisk map[domain.RiskLevel]int
}
