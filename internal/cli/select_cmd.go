package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/spf13/cobra"
)

var errNotPractical = errors.New("only practical sections can be picked")

func newPickCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick <sectionId>...",
		Short: "Add practical sections to the plan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openState(cmd, app, opts, true)
			if err != nil {
				return err
			}
			for _, id := range args {
				sec, ok := st.Catalog.SectionByID(id)
				if !ok {
					return fmt.Errorf("section %q not found in term %s", id, opts.term)
				}
				if !sec.IsPractical() {
					return fmt.Errorf("%s is a %s: %w", id, sec.Kind.Label(), errNotPractical)
				}
				if sec.Program != st.Program {
					return fmt.Errorf("%s belongs to program %s, not %s", id, sec.Program, st.Program)
				}
				if !st.Selected.Has(id) {
					st = planner.Update(st, planner.PracticalToggled{ID: id})
				}
			}
			app.Planner.Save(cmd.Context(), st)
			printSelection(cmd, st)
			return nil
		},
	}
}

func newDropCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <sectionId>...",
		Short: "Remove practical sections from the plan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openState(cmd, app, opts, true)
			if err != nil {
				return err
			}
			for _, id := range args {
				st = planner.Update(st, planner.PracticalRemoved{ID: id})
			}
			app.Planner.Save(cmd.Context(), st)
			printSelection(cmd, st)
			return nil
		},
	}
}

func printSelection(cmd *cobra.Command, st planner.State) {
	w := cmd.OutOrStdout()
	plan := planner.Derive(st)
	fmt.Fprintln(w, formatter.StyleGreen.Render(fmt.Sprintf("✓ %d prácticos elegidos, %d comisiones en total",
		len(st.Selected), len(plan.Resolved))))
	if len(plan.Resolved) > 0 {
		fmt.Fprint(w, formatter.FormatResolved(st.Catalog, plan.Resolved))
	}
	if len(plan.Overlaps) > 0 {
		fmt.Fprint(w, "\n"+formatter.FormatOverlaps(st.Catalog, st.GrayZones, plan.Overlaps))
	}
}
