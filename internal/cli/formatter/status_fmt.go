package formatter

import (
	"fmt"
	"strings"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/domain"
)

// FormatStatus renders the active-plan dashboard.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	plan := resp.Plan
	b.WriteString(Header(fmt.Sprintf("%s · %s", plan.Goal, plan.Level)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold(fmt.Sprintf("Week %d/%d", resp.CurrentWeek, plan.NbWeeks)),
		PhasePill(resp.CurrentPhase),
		Dim(fmt.Sprintf("(race day %s)", plan.EndDate.Format("2006-01-02")))))

	b.WriteString(riskSummaryLine(resp.SessionsByRisk, resp.SessionsTotal))
	b.WriteString("\n")

	if resp.NextSession != nil {
		b.WriteString("\n")
		b.WriteString(Bold("Next session"))
		b.WriteString("\n")
		b.WriteString(FormatSessionDetail(resp.NextSession))
	} else {
		b.WriteString("\n")
		b.WriteString(Dim("No session left in this plan."))
		b.WriteString("\n")
	}

	return b.String()
}

func riskSummaryLine(byRisk map[domain.RiskLevel]int, total int) string {
	parts := []string{Dim(fmt.Sprintf("%d sessions", total))}
	if n := byRisk[domain.RiskMedium]; n > 0 {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("%d medium risk", n)))
	}
	if n := byRisk[domain.RiskHard] + byRisk[domain.RiskCritical]; n > 0 {
		parts = append(parts, StyleRed.Render(fmt.Sprintf("%d high risk", n)))
	}
	return strings.Join(parts, Dim(" · "))
}
