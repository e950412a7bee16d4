package planner

import (
	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/domain"
)

// Decision is the adjusted envelope handed to the session selector.
type Decision struct {
	VolumeFactor       float64
	IntensityCap       domain.IntensityCap
	TargetTypeOverride domain.IntensityTag // "E" to force an easy session, empty otherwise
}

// AsPlannedDecision is the neutral decision: no scaling, no caps.
func AsPlannedDecision() Decision {
	return Decision{VolumeFactor: 1.0, IntensityCap: domain.CapAsPlanned}
}

// RunContext is one request's adaptation state. It must never be shared
// across requests: the applied flag is the single-writer idempotence
// guard for that request only.
type RunContext struct {
	State             domain.PerceivedState
	AdaptationApplied bool
}

// Volume factor safety bounds. Table values already sit inside the band;
// the clamp runs regardless.
const (
	volumeFactorFloor = 0.70
	volumeFactorCeil  = 1.05
)

// ApplyAdaptation maps perceived fatigue onto a bounded decision
// adjustment. It applies at most once per run context: a second call
// returns the as-planned no-op and a trace tagged with the skip guard.
// A trace is returned on every path. On success the run context's
// applied flag is set; this is the function's only side effect.
func ApplyAdaptation(rctx *RunContext, base Decision) (Decision, app.AdaptationTrace) {
	if rctx.AdaptationApplied {
		out := AsPlannedDecision()
		return out, app.AdaptationTrace{
			State:        rctx.State,
			SkipReason:   app.CheckAlreadyApplied,
			SafetyChecks: []app.SafetyCheckCode{app.CheckAlreadyApplied},
			VolumeFactor: out.VolumeFactor,
			IntensityCap: out.IntensityCap,
		}
	}

	if rctx.State == "" {
		// No feedback recorded: pass the base decision through untouched.
		return base, app.AdaptationTrace{
			VolumeFactor: base.VolumeFactor,
			IntensityCap: base.IntensityCap,
		}
	}

	out := base
	trace := app.AdaptationTrace{State: rctx.State, Applied: true}

	switch rctx.State {
	case domain.StateFatigued:
		out.VolumeFactor = 0.80
		out.IntensityCap = domain.CapEasyOnly
		out.TargetTypeOverride = domain.TagEasy
		trace.Rules = append(trace.Rules,
			app.RuleFatiguedVolumeDown, app.RuleFatiguedCapEasy, app.RuleFatiguedTypeToE)
	case domain.StateNeutral:
		out.VolumeFactor = 1.00
		out.IntensityCap = domain.CapNoEscalation
		out.TargetTypeOverride = ""
		trace.Rules = append(trace.Rules, app.RuleNeutralNoEscalate)
	case domain.StateGood:
		out.VolumeFactor = 1.05
		out.IntensityCap = domain.CapNoTypeUpshift
		out.TargetTypeOverride = ""
		trace.Rules = append(trace.Rules, app.RuleGoodVolumeUp)
	default:
		out.VolumeFactor = 1.00
		out.IntensityCap = domain.CapAsPlanned
		out.TargetTypeOverride = ""
		trace.Rules = append(trace.Rules, app.RuleUnknownAsPlanned)
	}

	trace.SafetyChecks = append(trace.SafetyChecks, app.CheckVolumeFactorClamp)
	if out.VolumeFactor < volumeFactorFloor {
		out.VolumeFactor = volumeFactorFloor
	}
	if out.VolumeFactor > volumeFactorCeil {
		out.VolumeFactor = volumeFactorCeil
	}

	trace.VolumeFactor = out.VolumeFactor
	trace.IntensityCap = out.IntensityCap
	if out.TargetTypeOverride == domain.TagEasy {
		trace.TypeOverride = domain.TypeEndurance
	}

	rctx.AdaptationApplied = true
	return out, trace
}
