package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/dataserver"
	"github.com/spf13/cobra"
)

const defaultDataDir = "data"

func newServeCmd(app *App) *cobra.Command {
	dir := app.Config.DataDir
	if dir == "" {
		dir = defaultDataDir
	}
	addr := app.Config.Addr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve term catalogs as static JSON under /api/data/{term}/{file}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("data directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("data directory: %s is not a directory", dir)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s\n",
				formatter.StyleGreen.Render("Sirviendo"), dir, formatter.Dim("en "+addr))
			return dataserver.New(dir, app.logger()).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", dir, "Directory holding {term}/catedras.json, sections.json, meets.json")
	cmd.Flags().StringVar(&addr, "addr", addr, "Listen address")
	return cmd
}
