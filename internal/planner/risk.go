package planner

import (
	"fmt"

	"github.com/npellerin/foulee/internal/domain"
)

// RiskInput is the raw material of a war-room assessment: the runner's
// level and the candidate session's load.
type RiskInput struct {
	Level       domain.Level
	DurationMin int
	DistanceKm  float64
	Tags        []domain.IntensityTag
}

// War-room thresholds.
const (
	riskDurationMin = 90
	riskDistanceKm  = 22.0
)

// hardIntensityTags are out of reach for beginners without an alert.
var hardIntensityTags = []domain.IntensityTag{
	domain.TagThreshold, domain.TagInterval, domain.TagRepeat,
}

// EvaluateRisk builds the war-room annotation for a session. Each rule is
// evaluated independently; any match raises the level to at least medium.
// The hard and critical tiers are reserved for history-based escalation
// and are not produced by the current rules.
func EvaluateRisk(in RiskInput) domain.WarRoom {
	wr := domain.WarRoom{Level: domain.RiskSoft}

	if in.DurationMin > riskDurationMin {
		wr.Level = domain.RiskMedium
		wr.Alerts = append(wr.Alerts,
			fmt.Sprintf("duration %d min exceeds %d min", in.DurationMin, riskDurationMin))
	}
	if in.DistanceKm > riskDistanceKm {
		wr.Level = domain.RiskMedium
		wr.Alerts = append(wr.Alerts,
			fmt.Sprintf("distance %.1f km exceeds %.1f km", in.DistanceKm, riskDistanceKm))
	}
	if in.Level == domain.LevelBeginner {
		for _, hard := range hardIntensityTags {
			if hasTag(in.Tags, hard) {
				wr.Level = domain.RiskMedium
				wr.Alerts = append(wr.Alerts,
					fmt.Sprintf("%s-paced work scheduled for a beginner", hard))
				break
			}
		}
	}

	return wr
}

func hasTag(tags []domain.IntensityTag, want domain.IntensityTag) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
