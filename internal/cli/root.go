package cli

import (
	"github.com/forgeos/forgeplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Deals    service.DealService
	Events   service.EventService
	Settings service.SettingsService
	DayPlan  service.DayPlanService
	WeekPlan service.WeekPlanService
	Replan   service.ReplanService

	// IsInteractive reports whether stdin is a terminal; form-based
	// prompts are only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "forgeplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "forgeplan",
		Short: "Revenue-first task planner for small businesses",
	}

	root.AddCommand(
		newTaskCmd(app),
		newDealCmd(app),
		newEventCmd(app),
		newPlanCmd(app),
		newReplanCmd(app),
		newBlockCmd(app),
		newSettingsCmd(app),
		newCalCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
