package cli

import (
	"github.com/npellerin/foulee/internal/catalogue"
	"github.com/npellerin/foulee/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles service.ProfileService
	Plans    service.PlanService
	Feedback service.FeedbackService
	Status   service.StatusService

	Catalogue *catalogue.Catalogue

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags-only mode when it is not.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "foulee" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "foulee",
		Short: "Running plan generator and training companion",
	}

	root.AddCommand(
		newProfileCmd(app),
		newGenerateCmd(app),
		newPlanCmd(app),
		newStatusCmd(app),
		newFeedbackCmd(app),
		newCalendarCmd(app),
		newCatalogueCmd(app),
	)

	return root
}
