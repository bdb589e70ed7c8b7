package cli

import (
	"fmt"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/spf13/cobra"
)

// openState loads the planner for the selected term and program. When
// requireCatalog is false a load failure is reported on stderr and the
// empty state is returned so read-only commands still work offline.
func openState(cmd *cobra.Command, app *App, opts *rootOptions, requireCatalog bool) (planner.State, error) {
	stop := func() {}
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Cargando "+opts.term+"…")
	}
	st, err := app.Planner.Open(cmd.Context(), opts.term, opts.program)
	stop()
	if err == nil {
		return st, nil
	}
	if requireCatalog {
		return st, fmt.Errorf("term %s: %w", opts.term, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("Sin datos para "+opts.term+": "+err.Error()))
	return st, nil
}
