package cli

import (
	"fmt"
	"strings"

	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Inspect the session template catalogue",
	}
	cmd.AddCommand(newCatalogueListCmd(app))
	return cmd
}

func newCatalogueListCmd(app *App) *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available session templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Catalogue.ListAll()
			if typeFilter != "" {
				templates = app.Catalogue.ByType(domain.SessionType(strings.ToLower(typeFilter)))
			}
			if len(templates) == 0 {
				fmt.Println(formatter.Dim("No templates match."))
				return nil
			}

			headers := []string{"CODE", "TITLE", "TYPE", "TAGS", "LOAD"}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{
					formatter.Bold(t.Code),
					formatter.StyleFg.Render(t.Title),
					formatter.StyleBlue.Render(string(t.Type)),
					formatter.Dim(tagList(t.Tags)),
					formatter.StyleFg.Render(fmt.Sprintf("%dmin · %.1fkm", t.DurationMin, t.DistanceKm)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "Filter by session type")

	return cmd
}

func tagList(tags []domain.IntensityTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
