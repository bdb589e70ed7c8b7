package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "2025-2", cfg.Term)
	assert.Equal(t, domain.ProgramPS, cfg.Program)
	assert.Equal(t, DefaultDataBaseURL, cfg.DataBaseURL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "cursada.db", filepath.Base(cfg.DBPath))
	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CURSADA_DB", "/tmp/x.db")
	t.Setenv("CURSADA_TERM", " 2026-1 ")
	t.Setenv("CURSADA_PROGRAM", "lm")
	t.Setenv("CURSADA_DATA_BASE", "http://localhost:8080/api/data/")
	t.Setenv("CURSADA_DATA_DIR", "/srv/data")
	t.Setenv("CURSADA_ADDR", "127.0.0.1:9000")
	t.Setenv("CURSADA_REDIS_ADDR", "localhost:6379")
	t.Setenv("CURSADA_LOG_LEVEL", "debug")
	t.Setenv("CURSADA_FETCH_TIMEOUT_MS", "2500")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "2026-1", cfg.Term)
	assert.Equal(t, domain.ProgramLM, cfg.Program)
	assert.Equal(t, "http://localhost:8080/api/data", cfg.DataBaseURL)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2500*time.Millisecond, cfg.FetchTimeout())
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("CURSADA_PROGRAM", "XX")
	t.Setenv("CURSADA_LOG_LEVEL", "loud")
	t.Setenv("CURSADA_FETCH_TIMEOUT_MS", "-5")

	cfg := LoadConfig()
	def := DefaultConfig()

	assert.Equal(t, def.Program, cfg.Program)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.FetchTimeoutMs, cfg.FetchTimeoutMs)
}

func TestLoadEnvFile_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CURSADA_TERM=2030-1\nCURSADA_ADDR=:7000\n"), 0o644))
	t.Setenv("CURSADA_TERM", "2025-2")
	t.Setenv("CURSADA_ADDR", "")
	os.Unsetenv("CURSADA_ADDR")

	require.NoError(t, LoadEnvFile(path))
	cfg := LoadConfig()

	assert.Equal(t, "2025-2", cfg.Term)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoadEnvFile_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
