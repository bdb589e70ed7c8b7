package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/spf13/cobra"
)

var errZoneNotFound = errors.New("gray zone not found")

func newZoneCmd(app *App, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zone",
		Aliases: []string{"zones"},
		Short:   "Manage gray zones (times you are busy)",
	}
	cmd.AddCommand(
		newZoneAddCmd(app, opts),
		newZoneListCmd(app, opts),
		newZoneRmCmd(app, opts),
	)
	return cmd
}

// zoneState returns a state holding only the stored gray zones of the term.
// Gray zones do not depend on the catalog, so nothing is fetched.
func zoneState(cmd *cobra.Command, app *App, opts *rootOptions) planner.State {
	st := planner.NewState(opts.term, opts.program)
	return planner.Update(st, planner.GrayZonesRestored{Zones: app.Store.LoadGrayZones(cmd.Context(), opts.term)})
}

func newZoneAddCmd(app *App, opts *rootOptions) *cobra.Command {
	var in zoneInput
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a gray zone",
		Example: `  cursada zone add --day lunes --from 09:00 --to 13:00 --note trabajo
  cursada zone add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := zoneForm(&in).Run(); err != nil {
					return err
				}
			} else if in.Day == "" || in.From == "" || in.To == "" {
				return errors.New("--day, --from and --to are required (or use -i)")
			}

			zone, err := in.toZone()
			if err != nil {
				return err
			}
			st := planner.Update(zoneState(cmd, app, opts), planner.GrayZoneAdded{Zone: zone})
			app.Planner.SaveGrayZones(cmd.Context(), st)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				formatter.StyleGreen.Render("✓ Zona gris agregada:"),
				domain.DayLabel(zone.DayNum),
				formatter.TimeRange(zone.StartMin, zone.EndMin),
				formatter.Dim(zone.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Day, "day", "", "Day (1-6 or lunes..sábado)")
	cmd.Flags().StringVar(&in.From, "from", "", "Start time HH:MM")
	cmd.Flags().StringVar(&in.To, "to", "", "End time HH:MM")
	cmd.Flags().StringVar(&in.Note, "note", "", "Optional note")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the zone with a form")
	return cmd
}

func newZoneListCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List gray zones",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := zoneState(cmd, app, opts)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGrayZones(st.GrayZones))
			return nil
		},
	}
}

func newZoneRmCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a gray zone by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := zoneState(cmd, app, opts)
			id, err := resolveZoneID(st.GrayZones, args[0])
			if err != nil {
				return err
			}
			st = planner.Update(st, planner.GrayZoneRemoved{ID: id})
			app.Planner.SaveGrayZones(cmd.Context(), st)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✓ Zona gris eliminada: ")+formatter.Dim(id))
			return nil
		},
	}
}

// resolveZoneID accepts a full id or a prefix matching exactly one zone.
func resolveZoneID(zones []domain.GrayZone, input string) (string, error) {
	var matches []string
	for _, z := range zones {
		if z.ID == input {
			return z.ID, nil
		}
		if strings.HasPrefix(z.ID, input) {
			matches = append(matches, z.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", errZoneNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("prefix %q matches %d gray zones", input, len(matches))
	}
}
