package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags registers the global configuration flags on fs and parses args.
// Arguments after the first non-flag (the subcommand and its own flags) are
// left in fs.Args().
//
// Flags:
//
//	-d database DSN
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-page-size reflections per list page
//	-max-images screenshots per draft
//	-busy-timeout wait on a locked database (e.g., "5s")
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var logFile string
	var pageSize int
	var maxImages int
	var busyTimeout time.Duration

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.IntVar(&pageSize, "page-size", 0, "Reflections per list page")
	fs.IntVar(&maxImages, "max-images", 0, "Screenshots per draft")
	fs.DurationVar(&busyTimeout, "busy-timeout", 0, "Wait on a locked database (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				BusyTimeout: busyTimeout,
			},
		},
		UI: UI{
			PageSize:  pageSize,
			MaxImages: maxImages,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
