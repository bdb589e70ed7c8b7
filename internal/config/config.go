// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/joho/godotenv"
)

// DefaultDataBaseURL is the public host of the published term catalogs.
const DefaultDataBaseURL = "https://santiago-musso.github.io/psico-uba-data"

// Config holds all runtime settings.
type Config struct {
	DBPath         string
	Term           string
	Program        domain.Program
	DataBaseURL    string
	DataDir        string
	Addr           string
	RedisAddr      string
	LogLevel       slog.Level
	FetchTimeoutMs int
}

// DefaultConfig returns the settings used when no variable is set.
func DefaultConfig() Config {
	dbPath := filepath.Join(".cursada", "cursada.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".cursada", "cursada.db")
	}
	return Config{
		DBPath:         dbPath,
		Term:           "2025-2",
		Program:        domain.ProgramPS,
		DataBaseURL:    DefaultDataBaseURL,
		Addr:           ":8080",
		LogLevel:       slog.LevelWarn,
		FetchTimeoutMs: 15000,
	}
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or unparseable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CURSADA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("CURSADA_TERM")); v != "" {
		cfg.Term = v
	}
	if v := os.Getenv("CURSADA_PROGRAM"); v != "" {
		if p, err := domain.ParseProgram(v); err == nil {
			cfg.Program = p
		}
	}
	if v := os.Getenv("CURSADA_DATA_BASE"); v != "" {
		cfg.DataBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("CURSADA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CURSADA_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CURSADA_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("CURSADA_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("CURSADA_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutMs = n
		}
	}

	return cfg
}

// FetchTimeout returns the catalog load deadline.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

// NewLogger returns a text logger on w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
