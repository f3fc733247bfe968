package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	DBPath      string
	LogLevel    slog.Level
	LogUseCases bool
	DayHours    domain.DayHours
	Variants    int
	// CatalogPath, when set, is imported at startup if no cities are stored.
	CatalogPath string
}

// DefaultConfig returns the configuration used when no variables are set.
// The database lives under the user's home directory.
func DefaultConfig() Config {
	dbPath := "itinera.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".itinera", "itinera.db")
	}
	return Config{
		DBPath:   dbPath,
		LogLevel: slog.LevelInfo,
		DayHours: domain.DefaultDayHours(),
		Variants: 3,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// named) into the process environment. Variables already set win, and
// missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Load reads configuration from ITINERA_* environment variables, falling
// back to defaults for any unset or malformed values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ITINERA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ITINERA_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("ITINERA_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ITINERA_VARIANTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Variants = n
		}
	}
	cfg.CatalogPath = os.Getenv("ITINERA_CATALOG")

	hours := cfg.DayHours
	applyHourEnv(&hours.StartHour, "ITINERA_DAY_START_HOUR")
	applyHourEnv(&hours.EndHour, "ITINERA_DAY_END_HOUR")
	if hours.Validate() == nil {
		cfg.DayHours = hours
	}

	return cfg
}

func applyHourEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 23 {
		return
	}
	*dst = n
}
