package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, domain.DefaultDayHours(), cfg.DayHours)
	assert.Equal(t, 3, cfg.Variants)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, "itinera.db", filepath.Base(cfg.DBPath))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ITINERA_DB", "/tmp/trips.db")
	t.Setenv("ITINERA_LOG_LEVEL", "debug")
	t.Setenv("ITINERA_LOG_USE_CASES", "true")
	t.Setenv("ITINERA_VARIANTS", "5")
	t.Setenv("ITINERA_DAY_START_HOUR", "8")
	t.Setenv("ITINERA_DAY_END_HOUR", "22")
	t.Setenv("ITINERA_CATALOG", "cities.yaml")

	cfg := Load()

	assert.Equal(t, "/tmp/trips.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 5, cfg.Variants)
	assert.Equal(t, domain.DayHours{StartHour: 8, EndHour: 22}, cfg.DayHours)
	assert.Equal(t, "cities.yaml", cfg.CatalogPath)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ITINERA_LOG_LEVEL", "loud")
	t.Setenv("ITINERA_VARIANTS", "0")
	t.Setenv("ITINERA_DAY_START_HOUR", "not-a-number")
	t.Setenv("ITINERA_DAY_END_HOUR", "30")

	cfg := Load()

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 3, cfg.Variants)
	assert.Equal(t, domain.DefaultDayHours(), cfg.DayHours)
}

func TestLoad_InvertedHoursFallBack(t *testing.T) {
	t.Setenv("ITINERA_DAY_START_HOUR", "20")
	t.Setenv("ITINERA_DAY_END_HOUR", "10")

	assert.Equal(t, domain.DefaultDayHours(), Load().DayHours)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ITINERA_VARIANTS=4\nITINERA_DB=from-file.db\n"), 0o644))

	t.Setenv("ITINERA_DB", "from-env.db")
	t.Setenv("ITINERA_VARIANTS", "")
	os.Unsetenv("ITINERA_VARIANTS")

	require.NoError(t, LoadDotEnv(path))
	cfg := Load()

	assert.Equal(t, 4, cfg.Variants)
	assert.Equal(t, "from-env.db", cfg.DBPath, "existing variables take precedence")
}

func TestLoadDotEnv_MissingFileSkipped(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
