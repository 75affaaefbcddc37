// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable name looked up by
// [Load].
const EnvPrefix = "NOTEKEEPER_"

// Default values used when no source sets a field.
const (
	DefaultDirName        = ".notekeeper"
	DefaultRecentFileName = "recent.txt"
	DefaultCatalogName    = "catalog.db"
	DefaultLogFileName    = "notekeeper.log"
	DefaultLogLevel       = "info"
	DefaultCatalogTimeout = 5 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// notekeeper application. It aggregates all sub-configurations and is
// populated by merging values from defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - env: environment variable name without the NOTEKEEPER_ prefix.
type StructuredConfig struct {
	// Storage holds file-system locations for notes and the recency list.
	Storage Storage

	// Catalog holds the note metadata catalog connection settings.
	Catalog Catalog

	// Log holds the log file destination and verbosity.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: NOTEKEEPER_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups file-system locations used by the CLI.
type Storage struct {
	// DataDir is the base directory for all notekeeper state. Relative
	// note paths given on the command line are NOT resolved against it.
	// Env: NOTEKEEPER_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// RecentFile is the path of the recently-opened notes file.
	// Env: NOTEKEEPER_RECENT_FILE
	RecentFile string `env:"RECENT_FILE"`
}

// Catalog holds connection settings for the metadata catalog database.
type Catalog struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file path.
	// Env: NOTEKEEPER_CATALOG_DSN
	DSN string `env:"CATALOG_DSN"`

	// Timeout bounds a single catalog operation including retries.
	// Env: NOTEKEEPER_CATALOG_TIMEOUT
	Timeout time.Duration `env:"CATALOG_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the JSON-lines log file.
	// Env: NOTEKEEPER_LOG_FILE
	File string `env:"LOG_FILE"`

	// Level is a zerolog level name.
	// Env: NOTEKEEPER_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Load merges every configuration source, fills defaults for the fields no
// source has set, and validates the result. flags is the config bound to the
// command line by [BindFlags]; it may be nil.
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// applyDefaults fills empty fields. File locations default to entries under
// DataDir, so setting only the data directory moves everything.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir()
	}
	if cfg.Storage.RecentFile == "" {
		cfg.Storage.RecentFile = filepath.Join(cfg.Storage.DataDir, DefaultRecentFileName)
	}
	if cfg.Catalog.DSN == "" {
		cfg.Catalog.DSN = filepath.Join(cfg.Storage.DataDir, DefaultCatalogName)
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = DefaultCatalogTimeout
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Storage.DataDir, DefaultLogFileName)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}
