package cli

import (
	"log/slog"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/alexanderramin/cursada/internal/config"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Planner service.PlannerService
	Store   service.SelectionStore
	Loader  catalog.Loader
	Config  config.Config
	Logger  *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	term    string
	program domain.Program
}

// NewRootCmd creates the top-level "cursada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{term: app.Config.Term, program: app.Config.Program}
	if opts.term == "" {
		opts.term = config.DefaultConfig().Term
	}
	if opts.program == "" {
		opts.program = domain.ProgramPS
	}

	root := &cobra.Command{
		Use:           "cursada",
		Short:         "Weekly course-schedule planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app, opts)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&opts.term, "term", opts.term, "Academic term, e.g. 2025-2")
	root.PersistentFlags().Var((*programValue)(&opts.program), "program", "Degree program (PS, PR, LM, TE)")

	root.AddCommand(
		newChairsCmd(app, opts),
		newSectionsCmd(app, opts),
		newPickCmd(app, opts),
		newDropCmd(app, opts),
		newPlanCmd(app, opts),
		newZoneCmd(app, opts),
		newTermsCmd(app),
		newDataCmd(app, opts),
		newServeCmd(app),
		newTUICmd(app, opts),
	)

	return root
}
