// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDB          = "ANTIGRAVITY_DB"
	EnvCatalog     = "ANTIGRAVITY_CATALOG"
	EnvLogUseCases = "ANTIGRAVITY_LOG_USECASES"
	EnvLogLevel    = "ANTIGRAVITY_LOG_LEVEL"
)

type Config struct {
	DBPath      string
	CatalogPath string // optional routine catalog override
	LogUseCases bool
	LogLevel    slog.Level
}

// DefaultConfig keeps the database under ~/.antigravity and logging off.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, ".antigravity", "antigravity.db"),
		LogLevel: slog.LevelInfo,
	}, nil
}

// Load applies envFiles (default ".env") and then the process environment.
// Variables already set in the environment win over file values. Missing
// files are skipped; unparsable values keep their defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg, nil
}
