package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// those flags write into. The returned value is only meaningful after fs has
// been parsed; pass it to [Load].
//
// Flags:
//
//	-c/--config     json file path with configs
//	--data-dir      base directory for notekeeper state
//	--recent-file   recently-opened notes file
//	--catalog-dsn   catalog database: postgres URL or SQLite file path
//	--catalog-timeout timeout for one catalog operation (e.g. "5s")
//	--log-file      log file path
//	--log-level     log level (debug, info, warn, error, disabled)
//
// All flags default to the zero value so an unset flag never overrides a
// lower-priority source.
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Base directory for notekeeper state")
	fs.StringVar(&cfg.Storage.RecentFile, "recent-file", "", "Recently-opened notes file")
	fs.StringVar(&cfg.Catalog.DSN, "catalog-dsn", "", "Catalog database: postgres URL or SQLite file path")
	fs.DurationVar(&cfg.Catalog.Timeout, "catalog-timeout", 0, "Timeout for one catalog operation (e.g. 5s)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error, disabled)")

	return cfg
}
