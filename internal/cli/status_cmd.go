package cli

import (
	"context"
	"fmt"

	"github.com/npellerin/foulee/internal/app"
	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where you stand in the active plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := cliApp.Status.GetStatus(context.Background(), app.StatusRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
}
