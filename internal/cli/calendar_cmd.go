package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/ics"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export the active plan to calendar formats",
	}
	cmd.AddCommand(newCalendarExportCmd(app))
	return cmd
}

func newCalendarExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active plan as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := app.Plans.GetActive(ctx)
			if err != nil {
				return err
			}
			sessions, err := app.Plans.ListSessions(ctx, plan.ID)
			if err != nil {
				return err
			}

			feed := ics.Build(plan, sessions)
			if out == "" {
				fmt.Print(feed)
				return nil
			}
			if err := os.WriteFile(out, []byte(feed), 0o644); err != nil {
				return fmt.Errorf("writing calendar file: %w", err)
			}
			fmt.Println(formatter.Bold(fmt.Sprintf("Exported %d sessions to %s.", len(sessions), out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	return cmd
}
