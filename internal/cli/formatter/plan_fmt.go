package formatter

import (
	"fmt"
	"strings"

	"github.com/npellerin/foulee/internal/domain"
)

// FormatPlan renders the plan header followed by a per-week session table.
func FormatPlan(plan *domain.TrainingPlan, sessions []*domain.Session) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("plan %s · %s · %d weeks", plan.Goal, plan.Level, plan.NbWeeks)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s → %s", plan.StartDate.Format("2006-01-02"), plan.EndDate.Format("2006-01-02"))))
	b.WriteString("\n")
	b.WriteString(formatPhaseLine(plan.Phases))
	b.WriteString("\n\n")

	byWeek := make(map[int][]*domain.Session)
	maxWeek := 0
	for _, s := range sessions {
		byWeek[s.Week] = append(byWeek[s.Week], s)
		if s.Week > maxWeek {
			maxWeek = s.Week
		}
	}

	for week := 1; week <= maxWeek; week++ {
		weekSessions := byWeek[week]
		if len(weekSessions) == 0 {
			continue
		}
		b.WriteString(Bold(fmt.Sprintf("Week %d", week)))
		b.WriteString("  ")
		b.WriteString(PhasePill(weekSessions[0].Phase))
		b.WriteString("\n")
		b.WriteString(FormatSessions(weekSessions))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatSessions renders a session table without plan context.
func FormatSessions(sessions []*domain.Session) string {
	headers := []string{"DATE", "SESSION", "TYPE", "LOAD", "RISK"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			StyleFg.Render(s.Date.Format("Mon 02 Jan")),
			Bold(s.Title),
			StyleBlue.Render(string(s.Type)),
			formatLoad(s),
			RiskIndicator(s.WarRoom.Level),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSessionDetail renders one session with its steps and alerts.
func FormatSessionDetail(s *domain.Session) string {
	var b strings.Builder
	b.WriteString(Header(s.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleFg.Render(s.Date.Format("Monday 02 January")),
		StyleBlue.Render(string(s.Type)),
		RiskIndicator(s.WarRoom.Level)))
	b.WriteString(Dim(s.Description))
	b.WriteString("\n")
	for _, step := range s.Steps {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render("·"), StyleFg.Render(step)))
	}
	for _, alert := range s.WarRoom.Alerts {
		b.WriteString(StyleYellow.Render("  ! " + alert))
		b.WriteString("\n")
	}
	for _, note := range s.WarRoom.Notes {
		b.WriteString(Dim("  > " + note))
		b.WriteString("\n")
	}
	return b.String()
}

func formatPhaseLine(phases []domain.Phase) string {
	parts := make([]string, 0, len(phases))
	for _, p := range phases {
		parts = append(parts, fmt.Sprintf("%s %s", PhasePill(p.Name), Dim(fmt.Sprintf("w%d-%d", p.WeekStart, p.WeekEnd))))
	}
	return strings.Join(parts, "  ")
}

func formatLoad(s *domain.Session) string {
	if s.DistanceKm > 0 {
		return StyleFg.Render(fmt.Sprintf("%dmin · %.1fkm", s.DurationMin, s.DistanceKm))
	}
	return StyleFg.Render(fmt.Sprintf("%dmin", s.DurationMin))
}
