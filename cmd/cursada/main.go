package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/alexanderramin/cursada/internal/cli"
	"github.com/alexanderramin/cursada/internal/config"
	"github.com/alexanderramin/cursada/internal/repository"
	"github.com/alexanderramin/cursada/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	cfg := config.LoadConfig()
	logger := cfg.NewLogger(os.Stderr)

	// Wire the key-value store: Redis when configured, local SQLite otherwise.
	var kv repository.KVStore
	if cfg.RedisAddr != "" {
		store, err := repository.OpenRedisKVStore(context.Background(), cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		kv = store
	} else {
		store, err := repository.OpenSQLiteKVStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		kv = store
	}
	defer kv.Close()

	// Wire the catalog loader: a local data directory wins over HTTP.
	observer := catalog.NewLogObserver(logger)
	var loader catalog.Loader
	if cfg.DataDir != "" {
		loader = catalog.NewDirLoader(cfg.DataDir, observer)
	} else {
		loader = catalog.NewHTTPLoader(cfg.DataBaseURL, cfg.FetchTimeout(), observer)
	}

	useCases := service.NewLogUseCaseObserver(logger)
	store := service.NewSelectionStore(kv, useCases)

	app := &cli.App{
		Planner: service.NewPlannerService(loader, store, useCases),
		Store:   store,
		Loader:  loader,
		Config:  cfg,
		Logger:  logger,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
