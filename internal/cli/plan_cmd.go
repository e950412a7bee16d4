package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect the active training plan",
	}
	cmd.AddCommand(newPlanShowCmd(app))
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var week int
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active plan's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := app.Plans.GetActive(ctx)
			if err != nil {
				return err
			}

			var sessions []*domain.Session
			if upcoming {
				sessions, err = app.Plans.ListUpcoming(ctx, plan.ID, time.Now())
			} else {
				sessions, err = app.Plans.ListSessions(ctx, plan.ID)
			}
			if err != nil {
				return err
			}

			if week > 0 {
				filtered := sessions[:0]
				for _, s := range sessions {
					if s.Week == week {
						filtered = append(filtered, s)
					}
				}
				sessions = filtered
				if len(sessions) == 0 {
					return fmt.Errorf("no sessions in week %d", week)
				}
			}

			fmt.Print(formatter.FormatPlan(plan, sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Only show the given week")
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only show sessions from today on")

	return cmd
}
