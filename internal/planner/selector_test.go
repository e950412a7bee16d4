package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npellerin/foulee/internal/domain"
)

func testSlot() Slot {
	return Slot{
		ID:    "w3-thursday",
		Date:  time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
		Week:  3,
		Phase: domain.PhaseBuild,
		Type:  domain.TypeTempo,
	}
}

func testTemplates() []domain.SessionTemplate {
	return []domain.SessionTemplate{
		{
			Code:        "TEMPO_3X10",
			Title:       "Threshold blocks",
			Type:        domain.TypeTempo,
			Tags:        []domain.IntensityTag{domain.TagThreshold, domain.TagEasy},
			DurationMin: 60,
			DistanceKm:  12,
			Steps:       []string{"20min warmup", "3x10min @T / 3min jog", "10min cooldown"},
		},
		{
			Code:        "EF_45",
			Title:       "Easy run",
			Type:        domain.TypeEndurance,
			Tags:        []domain.IntensityTag{domain.TagEasy},
			DurationMin: 45,
			DistanceKm:  8,
			Steps:       []string{"45min @E"},
		},
		{
			Code:        "VMA_10X400",
			Title:       "Short intervals",
			Type:        domain.TypeIntervals,
			Tags:        []domain.IntensityTag{domain.TagInterval},
			DurationMin: 55,
			DistanceKm:  10,
			Steps:       []string{"warmup", "10x400m @I", "cooldown"},
		},
	}
}

func TestSelectSession_EmptyCatalogueIsFatal(t *testing.T) {
	_, err := SelectSession(testSlot(), domain.Profile{}, domain.DistHalf, AsPlannedDecision(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}

func TestSelectSession_PhaseTagAndEasyBonusWin(t *testing.T) {
	// Build phase for a half marathon favors threshold work; the tempo
	// template collects both bonuses (primary T matches, carries E).
	s, err := SelectSession(testSlot(), domain.Profile{}, domain.DistHalf, AsPlannedDecision(), testTemplates())
	require.NoError(t, err)

	assert.Equal(t, "TEMPO_3X10", s.Metadata["template"])
	assert.Equal(t, "60", s.Metadata["score"])
	assert.Equal(t, domain.PhaseBuild, s.Phase)
	assert.Equal(t, 60, s.DurationMin)
}

func TestSelectSession_FirstSeenWinsTies(t *testing.T) {
	twins := []domain.SessionTemplate{
		{Code: "A", Title: "First", Tags: []domain.IntensityTag{domain.TagEasy}, DurationMin: 40},
		{Code: "B", Title: "Second", Tags: []domain.IntensityTag{domain.TagEasy}, DurationMin: 40},
	}
	s, err := SelectSession(testSlot(), domain.Profile{}, domain.DistHalf, AsPlannedDecision(), twins)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Metadata["template"], "catalogue order must break ties")
}

func TestSelectSession_DeterministicIdentity(t *testing.T) {
	slot := testSlot()
	a, err := SelectSession(slot, domain.Profile{}, domain.DistHalf, AsPlannedDecision(), testTemplates())
	require.NoError(t, err)
	b, err := SelectSession(slot, domain.Profile{}, domain.DistHalf, AsPlannedDecision(), testTemplates())
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID, "same slot and date must yield the same session id")
	assert.Equal(t, SessionID(slot.Date, slot.ID), a.ID)

	other := slot
	other.ID = "w3-friday"
	c, err := SelectSession(other, domain.Profile{}, domain.DistHalf, AsPlannedDecision(), testTemplates())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestSelectSession_VolumeFactorScalesLoad(t *testing.T) {
	decision := AsPlannedDecision()
	decision.VolumeFactor = 0.80

	s, err := SelectSession(testSlot(), domain.Profile{}, domain.DistHalf, decision, testTemplates())
	require.NoError(t, err)
	assert.Equal(t, 48, s.DurationMin) // 60 * 0.8
	assert.InDelta(t, 9.6, s.DistanceKm, 0.001)
}

func TestSelectSession_EasyOnlyCapRestrictsCandidates(t *testing.T) {
	decision := Decision{
		VolumeFactor:       0.80,
		IntensityCap:       domain.CapEasyOnly,
		TargetTypeOverride: domain.TagEasy,
	}
	s, err := SelectSession(testSlot(), domain.Profile{}, domain.Dist5K, decision, testTemplates())
	require.NoError(t, err)

	assert.Equal(t, domain.TypeEndurance, s.Type, "fatigued override forces an easy session")
	assert.True(t, domain.SessionTemplate{Tags: s.Tags}.HasTag(domain.TagEasy))
}

func TestSelectSession_WarRoomAttached(t *testing.T) {
	long := []domain.SessionTemplate{{
		Code:        "SL_150",
		Title:       "Long run",
		Tags:        []domain.IntensityTag{domain.TagEasy},
		DurationMin: 150,
		DistanceKm:  26,
	}}
	s, err := SelectSession(testSlot(), domain.Profile{Level: domain.LevelIntermediate}, domain.DistMarathon, AsPlannedDecision(), long)
	require.NoError(t, err)

	assert.Equal(t, domain.RiskMedium, s.WarRoom.Level)
	assert.Len(t, s.WarRoom.Alerts, 2)
}

func TestDominantPaceTag(t *testing.T) {
	assert.Equal(t, domain.TagEasy, DominantPaceTag(domain.PhaseBase, domain.DistMarathon))
	assert.Equal(t, domain.TagEasy, DominantPaceTag(domain.PhaseTaper, domain.Dist5K))
	assert.Equal(t, domain.TagThreshold, DominantPaceTag(domain.PhaseBuild, domain.DistMarathon))
	assert.Equal(t, domain.TagInterval, DominantPaceTag(domain.PhaseBuild, domain.Dist10K))
}
