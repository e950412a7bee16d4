package domain

import (
	"sort"
	"strings"
)

// Day is a canonical weekday, ordered Monday=0 through Sunday=6.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllDays lists the seven weekdays in canonical order.
var AllDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// ParseDay resolves a weekday token (full name or three-letter abbreviation,
// case-insensitive). The second return is false for unknown tokens.
func ParseDay(token string) (Day, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	for i, name := range dayNames {
		lower := strings.ToLower(name)
		if t == lower || (len(t) == 3 && t == lower[:3]) {
			return Day(i), true
		}
	}
	return 0, false
}

// DaySet is a set of weekdays, always kept sorted-unique in canonical order.
type DaySet []Day

// NewDaySet builds a normalized DaySet from the given days, dropping
// duplicates and out-of-range values.
func NewDaySet(days ...Day) DaySet {
	seen := make(map[Day]bool, len(days))
	var set DaySet
	for _, d := range days {
		if d < Monday || d > Sunday || seen[d] {
			continue
		}
		seen[d] = true
		set = append(set, d)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}

// ParseDaySet normalizes a list of weekday tokens into a DaySet.
// Unknown tokens are dropped silently.
func ParseDaySet(tokens []string) DaySet {
	var days []Day
	for _, t := range tokens {
		if d, ok := ParseDay(t); ok {
			days = append(days, d)
		}
	}
	return NewDaySet(days...)
}

func (s DaySet) Contains(d Day) bool {
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// Union returns the normalized union of s and other.
func (s DaySet) Union(other DaySet) DaySet {
	return NewDaySet(append(append([]Day{}, s...), other...)...)
}

// Diff returns the days of s not present in other.
func (s DaySet) Diff(other DaySet) DaySet {
	var out []Day
	for _, d := range s {
		if !other.Contains(d) {
			out = append(out, d)
		}
	}
	return NewDaySet(out...)
}

// Gaps returns the differences between consecutive selected weekday indices.
// Gaps are computed within the week only; there is no wrap across the
// week boundary. A set of fewer than two days has no gaps.
func (s DaySet) Gaps() []int {
	if len(s) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		gaps = append(gaps, int(s[i]-s[i-1]))
	}
	return gaps
}

// Strings returns the weekday names in canonical order.
func (s DaySet) Strings() []string {
	out := make([]string, len(s))
	for i, d := range s {
		out[i] = d.String()
	}
	return out
}

// Equal reports whether two normalized DaySets contain the same days.
func (s DaySet) Equal(other DaySet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
