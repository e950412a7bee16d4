// Package ics renders a training plan as an iCalendar (RFC 5545) feed of
// all-day events, one per session, for import into any calendar client.
package ics

import (
	"fmt"
	"strings"

	"github.com/npellerin/foulee/internal/domain"
)

const (
	prodID    = "-//foulee//training plan//EN"
	dateStamp = "20060102T150405Z"
	dateValue = "20060102"
)

// Build renders the calendar. Output is deterministic for a given plan
// and session list: UIDs reuse the stable session identity and events
// appear in input order.
func Build(plan *domain.TrainingPlan, sessions []*domain.Session) string {
	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "X-WR-CALNAME:"+escape(calendarName(plan)))

	for _, s := range sessions {
		writeEvent(&b, s)
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func writeEvent(b *strings.Builder, s *domain.Session) {
	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, "UID:"+s.ID+"@foulee")
	writeLine(b, "DTSTAMP:"+s.CreatedAt.UTC().Format(dateStamp))
	writeLine(b, "DTSTART;VALUE=DATE:"+s.Date.Format(dateValue))
	writeLine(b, "SUMMARY:"+escape(summary(s)))
	writeLine(b, "DESCRIPTION:"+escape(description(s)))
	writeLine(b, "CATEGORIES:"+escape(strings.ToUpper(string(s.Type))))
	writeLine(b, "END:VEVENT")
}

func calendarName(plan *domain.TrainingPlan) string {
	if plan == nil || plan.Goal == "" {
		return "Training plan"
	}
	return fmt.Sprintf("Training plan %s (%d weeks)", plan.Goal, plan.NbWeeks)
}

func summary(s *domain.Session) string {
	if s.DurationMin > 0 {
		return fmt.Sprintf("%s (%dmin)", s.Title, s.DurationMin)
	}
	return s.Title
}

func description(s *domain.Session) string {
	parts := []string{s.Description}
	parts = append(parts, s.Steps...)
	if len(s.WarRoom.Alerts) > 0 {
		parts = append(parts, "Warnings: "+strings.Join(s.WarRoom.Alerts, "; "))
	}
	return strings.Join(parts, "\n")
}

// escape applies RFC 5545 text escaping for backslash, semicolon, comma
// and newline.
func escape(text string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(text)
}

// writeLine terminates content lines with CRLF and folds lines longer
// than 75 octets as the RFC requires.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		b.WriteString(line[:limit])
		b.WriteString("\r\n ")
		line = line[limit:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}
