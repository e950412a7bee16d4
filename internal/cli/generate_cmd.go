package cli

import (
	"context"
	"fmt"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a training plan from the stored profile",
		Long: "Generate computes the plan window from the goal race, selects the " +
			"weekly training days, partitions the weeks into phases and picks a " +
			"session for every slot. The new plan replaces the active one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := cliApp.Plans.Generate(context.Background(), app.GeneratePlanRequest{})
			if err != nil {
				return err
			}

			if resp.Adaptation.Applied {
				fmt.Println(formatter.Dim(fmt.Sprintf(
					"Adapted to today's feedback (%s): volume x%.2f",
					resp.Adaptation.State, resp.Adaptation.VolumeFactor)))
				fmt.Println()
			}

			fmt.Print(formatter.FormatPlan(resp.Plan, resp.Sessions))
			printRiskFootnote(resp.Sessions)
			return nil
		},
	}
}

func printRiskFootnote(sessions []*domain.Session) {
	flagged := 0
	for _, s := range sessions {
		if s.WarRoom.Level != domain.RiskSoft {
			flagged++
		}
	}
	if flagged > 0 {
		fmt.Println(formatter.StyleYellow.Render(
			fmt.Sprintf("%d sessions carry risk warnings; see foulee plan show", flagged)))
	}
}
