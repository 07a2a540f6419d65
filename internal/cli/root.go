package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analyses service.AnalysisService
	Goals    service.GoalService
	Criteria intelligence.CriteriaService
	Refine   intelligence.RefineService

	// IsInteractive reports whether stdin is a terminal; the goal wizard is
	// only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "goalsmith" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "goalsmith",
		Short: "Turn free-text goal descriptions into structured SMART goals",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newIntentCmd(app),
		newTimeframeCmd(app),
		newMetricsCmd(app),
		newConstraintsCmd(app),
		newGoalCmd(app),
		newCriteriaCmd(app),
		newRefineCmd(app),
	)

	return root
}
