package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/npellerin/foulee/internal/domain"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for
// SQLite storage: SQL NULL for nil, otherwise the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Day sets and intensity tags are stored as comma-joined strings; step
// lists and alert texts may contain commas and use newline joining.

func daysToString(days domain.DaySet) string {
	return strings.Join(days.Strings(), ",")
}

func daysFromString(s string) domain.DaySet {
	if s == "" {
		return nil
	}
	return domain.ParseDaySet(strings.Split(s, ","))
}

func tagsToString(tags []domain.IntensityTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func tagsFromString(s string) []domain.IntensityTag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]domain.IntensityTag, len(parts))
	for i, p := range parts {
		tags[i] = domain.IntensityTag(p)
	}
	return tags
}

func linesToString(lines []string) string {
	return strings.Join(lines, "\n")
}

func linesFromString(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
