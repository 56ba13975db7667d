package cli

import (
	"github.com/alexanderramin/goalpath/internal/loading"
	"github.com/alexanderramin/goalpath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals     service.GoalService
	Templates service.TemplateService
	Tracks    service.TrackService

	// Loading configures the timers of the Loading phase. ContentCount is
	// filled in from the tips when a task starts.
	Loading loading.Options

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the shell only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "goalpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "goalpath",
		Short: "Turn a learning goal into a personalized project track",
		Long: `goalpath guides you from a learning goal, written from scratch or
picked from a template, to a track of hands-on projects.

Run without arguments in a terminal to open the interactive shell.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newShellCmd(app),
		newScoreCmd(),
		newTemplateCmd(app),
		newTrackCmd(app),
	)

	return root
}
