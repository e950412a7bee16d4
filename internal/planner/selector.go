package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/npellerin/foulee/internal/domain"
)

// ErrEmptyCatalogue is returned when the template catalogue contains no
// candidates. This is a deployment/configuration failure, not a per-user
// condition: proceeding would silently fabricate a session.
var ErrEmptyCatalogue = errors.New("session template catalogue is empty")

// Slot is one scheduled training opportunity awaiting a concrete session.
type Slot struct {
	ID    string
	Date  time.Time
	Week  int
	Phase domain.PhaseName
	Type  domain.SessionType
}

// sessionIDSpace is the fixed UUIDv5 namespace for session identities.
var sessionIDSpace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

// SessionID derives the deterministic session identity from the slot's
// date and ID. Repeated resolutions of the same slot yield the same ID.
func SessionID(date time.Time, slotID string) string {
	return uuid.NewSHA1(sessionIDSpace, []byte(date.Format(dateLayout)+"/"+slotID)).String()
}

// DominantPaceTag is the intensity tag a phase is built around. Build
// phases for short races lean on interval work; longer races on
// threshold. Base and taper stay easy.
func DominantPaceTag(phase domain.PhaseName, goal domain.Distance) domain.IntensityTag {
	if phase == domain.PhaseBuild {
		if goal == domain.Dist5K || goal == domain.Dist10K {
			return domain.TagInterval
		}
		return domain.TagThreshold
	}
	return domain.TagEasy
}

// Scoring terms. Catalogue iteration order breaks ties: the first
// candidate reaching the best score wins, which keeps selection
// reproducible across runs.
const (
	scoreBase       = 50
	scoreEasyBonus  = 5
	scorePhaseBonus = 5
)

// SelectSession scores every catalogue candidate for the slot and builds
// the winning session, with its war-room annotation attached. The
// decision envelope (from the adaptation layer) may cap intensity and
// scale volume. The only error is the fatal empty-catalogue condition.
func SelectSession(slot Slot, profile domain.Profile, goal domain.Distance, decision Decision, templates []domain.SessionTemplate) (*domain.Session, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("selecting session for slot %s: %w", slot.ID, ErrEmptyCatalogue)
	}

	sessionType := slot.Type
	if decision.TargetTypeOverride == domain.TagEasy {
		sessionType = domain.TypeEndurance
	}

	candidates := templates
	if decision.IntensityCap == domain.CapEasyOnly {
		if easy := easyTemplates(templates); len(easy) > 0 {
			candidates = easy
		}
	}

	var best *domain.SessionTemplate
	bestScore := math.MinInt
	for i := range candidates {
		score := scoreTemplate(candidates[i], slot.Phase, goal)
		if score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}

	factor := decision.VolumeFactor
	if factor == 0 {
		factor = 1.0
	}
	duration := int(math.Round(float64(best.DurationMin) * factor))
	distance := math.Round(best.DistanceKm*factor*10) / 10

	session := &domain.Session{
		ID:          SessionID(slot.Date, slot.ID),
		SlotID:      slot.ID,
		Title:       best.Title,
		Description: best.Description,
		Date:        slot.Date,
		Week:        slot.Week,
		Phase:       slot.Phase,
		Type:        sessionType,
		DurationMin: duration,
		DistanceKm:  distance,
		Tags:        append([]domain.IntensityTag{}, best.Tags...),
		Steps:       append([]string{}, best.Steps...),
		Metadata: map[string]string{
			"template": best.Code,
			"score":    fmt.Sprintf("%d", bestScore),
		},
	}
	session.WarRoom = EvaluateRisk(RiskInput{
		Level:       profile.Level,
		DurationMin: session.DurationMin,
		DistanceKm:  session.DistanceKm,
		Tags:        session.Tags,
	})

	return session, nil
}

// scoreTemplate applies the selection scoring: a flat base, a bonus for
// easy-tagged templates, and a bonus when the template's primary tag
// matches the phase's dominant pace.
func scoreTemplate(t domain.SessionTemplate, phase domain.PhaseName, goal domain.Distance) int {
	score := scoreBase
	if t.HasTag(domain.TagEasy) {
		score += scoreEasyBonus
	}
	if t.PrimaryTag() == DominantPaceTag(phase, goal) {
		score += scorePhaseBonus
	}
	return score
}

func easyTemplates(templates []domain.SessionTemplate) []domain.SessionTemplate {
	var out []domain.SessionTemplate
	for _, t := range templates {
		if t.HasTag(domain.TagEasy) {
			out = append(out, t)
		}
	}
	return out
}
