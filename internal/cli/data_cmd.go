package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errDataIssues = errors.New("catalog has data issues")

func newDataCmd(app *App, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect published term catalogs",
	}
	cmd.AddCommand(newDataCheckCmd(app, opts))
	return cmd
}

func newDataCheckCmd(app *App, opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [term]",
		Short: "Load a term catalog and report malformed or unresolvable records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := opts.term
			if len(args) == 1 {
				term = args[0]
			}
			cat, err := app.Loader.Load(cmd.Context(), term)
			if err != nil {
				return err
			}
			report := catalog.Check(cat)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
			if strict && !report.OK() {
				return errDataIssues
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any issue is found")
	return cmd
}

func newTermsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List terms with a saved plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := app.Store.Terms(cmd.Context())
			w := cmd.OutOrStdout()
			if len(terms) == 0 {
				fmt.Fprintln(w, formatter.Dim("No hay planes guardados."))
				return nil
			}
			for _, t := range terms {
				fmt.Fprintln(w, t)
			}
			return nil
		},
	}
}
