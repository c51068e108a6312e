// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable name read by
// [GetStructuredConfig], e.g. JOURNAL_STORAGE_DB_DSN.
const EnvPrefix = "JOURNAL_"

// Default values applied before any other source is merged.
const (
	DefaultDirName     = ".trade-journal"
	DefaultDBFile      = "journal.db"
	DefaultLogFile     = "journal.log"
	DefaultLogLevel    = "info"
	DefaultPageSize    = 25
	DefaultMaxImages   = 5
	DefaultBusyTimeout = 5 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// journal. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: logging.
	App App `envPrefix:"APP_"`

	// Storage holds the embedded database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// UI holds presentation limits shared by the CLI and the browse screen.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the JOURNAL_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds logging configuration.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: JOURNAL_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file JSON log lines are appended to.
	// Env: JOURNAL_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the go-sqlite3 data source name: a file path, a "file:" URI or
	// ":memory:".
	// Env: JOURNAL_STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// BusyTimeout is how long a statement waits on a locked database before
	// failing (e.g. "5s").
	// Env: JOURNAL_STORAGE_DB_BUSY_TIMEOUT
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT"`
}

// UI holds presentation settings.
type UI struct {
	// PageSize is the number of reflections shown per list page.
	// Env: JOURNAL_UI_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxImages caps the screenshots attached to one draft.
	// Env: JOURNAL_UI_MAX_IMAGES
	MaxImages int `env:"MAX_IMAGES"`
}

// GetStructuredConfig loads, merges, and validates the journal
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered on fs and parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}

// Defaults returns the built-in configuration: a database and log file
// under $HOME/.trade-journal (the working directory when no home directory
// is known).
func Defaults() *StructuredConfig {
	dir := DefaultDirName
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir = filepath.Join(home, DefaultDirName)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  filepath.Join(dir, DefaultLogFile),
		},
		Storage: Storage{
			DB: DB{
				DSN:         filepath.Join(dir, DefaultDBFile),
				BusyTimeout: DefaultBusyTimeout,
			},
		},
		UI: UI{
			PageSize:  DefaultPageSize,
			MaxImages: DefaultMaxImages,
		},
	}
}
