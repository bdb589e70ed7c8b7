package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChairsCmd(app *App, opts *rootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "chairs",
		Short: "List the chairs of a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openState(cmd, app, opts, true)
			if err != nil {
				return err
			}
			chairs := st.Catalog.ChairsByProgram(opts.program, search)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChairs(opts.program, chairs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by course or lead instructor (ignores accents)")
	return cmd
}

func newSectionsCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <catedraId>",
		Short: "Show the sections of a chair and what each practical requires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid chair number %q", args[0])
			}
			st, err := openState(cmd, app, opts, true)
			if err != nil {
				return err
			}
			if len(st.Catalog.SectionsForChair(opts.program, id)) == 0 {
				return fmt.Errorf("chair %d not found in program %s", id, opts.program)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChairSections(st.Catalog, opts.program, id, st.Selected))
			return nil
		},
	}
}
