package cli

import (
	"fmt"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/spf13/cobra"
)

const (
	defaultGridRows  = 30
	defaultGridWidth = 100
)

func newPlanCmd(app *App, opts *rootOptions) *cobra.Command {
	var rows, width int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Draw the weekly grid of the current plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 4 {
				return fmt.Errorf("--height must be at least 4, got %d", rows)
			}
			st, err := openState(cmd, app, opts, false)
			if err != nil {
				return err
			}
			st.Viewport = formatter.TerminalViewport(rows)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(st, planner.Derive(st), rows, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "height", defaultGridRows, "Grid height in rows")
	cmd.Flags().IntVar(&width, "width", defaultGridWidth, "Grid width in columns")
	return cmd
}
