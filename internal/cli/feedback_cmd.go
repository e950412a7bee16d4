package cli

import (
	"context"
	"fmt"

	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/planner"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record and review how training feels",
	}
	cmd.AddCommand(newFeedbackLogCmd(app), newFeedbackListCmd(app))
	return cmd
}

func newFeedbackLogCmd(app *App) *cobra.Command {
	var note string
	var date string

	cmd := &cobra.Command{
		Use:   "log <fatigued|neutral|good>",
		Short: "Log today's perceived state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := &domain.Feedback{
				State: domain.ParsePerceivedState(args[0]),
				Note:  note,
			}
			if d := planner.ParseLenientDate(date); d != nil {
				fb.Date = *d
			}

			if err := app.Feedback.Log(context.Background(), fb); err != nil {
				return err
			}
			fmt.Println(formatter.Bold(fmt.Sprintf("Logged %s for %s.",
				fb.State, fb.Date.Format("2006-01-02"))))
			fmt.Println(formatter.Dim("The next plan generation will take it into account."))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD, default today)")

	return cmd
}

func newFeedbackListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent feedback reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Feedback.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println(formatter.Dim("No feedback recorded."))
				return nil
			}

			headers := []string{"DATE", "STATE", "NOTE"}
			rows := make([][]string, 0, len(reports))
			for _, r := range reports {
				rows = append(rows, []string{
					formatter.StyleFg.Render(r.Date.Format("Mon 02 Jan")),
					stateStyled(r.State),
					formatter.Dim(r.Note),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "How many days back to list")

	return cmd
}

func stateStyled(s domain.PerceivedState) string {
	switch s {
	case domain.StateGood:
		return formatter.StyleGreen.Render(string(s))
	case domain.StateFatigued:
		return formatter.StyleRed.Render(string(s))
	case domain.StateNeutral:
		return formatter.StyleBlue.Render(string(s))
	default:
		return formatter.Dim(string(s))
	}
}
