package planner

import (
	"github.com/npellerin/foulee/internal/domain"
)

// DaySelectionInput carries the normalized request for a weekly day
// selection. Day sets may arrive unnormalized; SelectDays renormalizes.
type DaySelectionInput struct {
	UserDays        domain.DaySet // rank 1: always kept in the result
	RecommendedDays domain.DaySet // rank 2: coaching reference days
	DayCountMin     int
	DayCountMax     int
	SpacingMin      int // minimum gap in days between sessions, default 1
	SpacingMax      int // maximum gap in days, default 7
}

// Penalty weights for combination scoring. Lower total is better.
const (
	penaltyGapTooSmall  = 3   // per missing day under SpacingMin
	penaltyGapTooLarge  = 2   // per extra day over SpacingMax
	penaltyBackToBack   = 1   // per gap of exactly one day
	penaltyTripleStreak = 100 // three or more consecutive days
	penaltyFillerDay    = 2   // per day taken from rank 3
)

// dayCombo is one evaluated candidate combination.
type dayCombo struct {
	set      domain.DaySet
	penalty  int
	rank3    int
	gapSum   int
	strictOK bool
	softOK   bool
}

// SelectDays picks the weekly training days. It is pure, deterministic and
// total: spacing constraints are relaxed in three tiers (strict, soft,
// degraded) so a result is always produced, and user-mandated days are
// never dropped. The empty set is returned only when the target count
// resolves to zero.
func SelectDays(in DaySelectionInput) domain.DaySet {
	spacingMin, spacingMax := normalizeSpacing(in.SpacingMin, in.SpacingMax)

	rank1 := domain.NewDaySet(in.UserDays...)
	rank2 := domain.NewDaySet(in.RecommendedDays...).Diff(rank1)
	rank3 := domain.NewDaySet(domain.AllDays...).Diff(rank1).Diff(rank2)

	target := targetCount(in.DayCountMin, in.DayCountMax, len(rank1))
	if target == 0 {
		return nil
	}

	// Candidates beyond rank 1 are drawn from rank 2 first, then rank 3.
	pool := append(append(domain.DaySet{}, rank2...), rank3...)
	k := target - len(rank1)
	if k > len(pool) {
		k = len(pool)
	}

	var best, bestSoft, bestAny *dayCombo
	for _, chosen := range combinations(pool, k) {
		combo := evaluateCombo(rank1.Union(domain.NewDaySet(chosen...)), rank3, spacingMin, spacingMax)
		if combo.strictOK && betterCombo(combo, best) {
			best = combo
		}
		if combo.softOK && betterCombo(combo, bestSoft) {
			bestSoft = combo
		}
		if betterCombo(combo, bestAny) {
			bestAny = combo
		}
	}

	switch {
	case best != nil:
		return best.set
	case bestSoft != nil:
		return bestSoft.set
	case bestAny != nil:
		return bestAny.set
	default:
		return nil
	}
}

// normalizeSpacing applies the documented defaults: min 1 when absent,
// max 7 when absent or inconsistent with min.
func normalizeSpacing(min, max int) (int, int) {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = 7
	}
	return min, max
}

// targetCount clamps the requested day count into
// [max(dayMin, |rank1|), min(dayMax, 7)]. The lower bound wins when the
// bounds cross, so user-mandated days are never dropped.
func targetCount(dayMin, dayMax, rank1Size int) int {
	lo := dayMin
	if rank1Size > lo {
		lo = rank1Size
	}
	hi := dayMax
	if hi > len(domain.AllDays) {
		hi = len(domain.AllDays)
	}
	target := hi
	if target < lo {
		target = lo
	}
	if target > len(domain.AllDays) {
		target = len(domain.AllDays)
	}
	if target < 0 {
		target = 0
	}
	return target
}

// evaluateCombo scores one combination against the spacing policy.
func evaluateCombo(set, rank3 domain.DaySet, spacingMin, spacingMax int) *dayCombo {
	combo := &dayCombo{set: set, strictOK: true, softOK: true}

	gaps := set.Gaps()
	streak := false
	for i, d := range gaps {
		combo.gapSum += d
		if d < spacingMin {
			combo.penalty += (spacingMin - d) * penaltyGapTooSmall
		}
		if d > spacingMax {
			combo.penalty += (d - spacingMax) * penaltyGapTooLarge
		}
		if d == 1 {
			combo.penalty += penaltyBackToBack
		}
		if d < spacingMin || d > spacingMax || d == 1 {
			combo.strictOK = false
		}
		if i > 0 && d == 1 && gaps[i-1] == 1 {
			streak = true
		}
	}
	if streak {
		combo.penalty += penaltyTripleStreak
		combo.softOK = false
	}

	for _, d := range set {
		if rank3.Contains(d) {
			combo.rank3++
		}
	}
	combo.penalty += combo.rank3 * penaltyFillerDay

	return combo
}

// betterCombo reports whether a strictly beats the current best. Ties on
// penalty fall to fewer rank-3 days, then to the more compact combination
// (smaller gap sum); remaining ties keep the first-seen candidate.
func betterCombo(a, b *dayCombo) bool {
	if b == nil {
		return true
	}
	if a.penalty != b.penalty {
		return a.penalty < b.penalty
	}
	if a.rank3 != b.rank3 {
		return a.rank3 < b.rank3
	}
	return a.gapSum < b.gapSum
}

// combinations enumerates all k-subsets of pool in lexicographic order of
// pool positions. k=0 yields a single empty choice.
func combinations(pool domain.DaySet, k int) [][]domain.Day {
	if k <= 0 {
		return [][]domain.Day{{}}
	}
	if k > len(pool) {
		return nil
	}
	var out [][]domain.Day
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		pick := make([]domain.Day, k)
		for i, j := range idx {
			pick[i] = pool[j]
		}
		out = append(out, pick)

		i := k - 1
		for i >= 0 && idx[i] == len(pool)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
