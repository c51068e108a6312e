package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/cli"
	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/internal/tui"
	"github.com/MKhiriev/go-trade-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cfg, err := config.GetStructuredConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	log := logger.NewLogger("journal", cfg.App.LogLevel, cfg.App.LogFile)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "main").Msg("open local storage")
		fmt.Fprintf(os.Stderr, "Unable to open the journal database %s: %v\n", cfg.Storage.DB.DSN, err)
		os.Exit(int(subcommands.ExitFailure))
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, *cfg, log)

	cli.Register(commander, &cli.Env{
		Services:  services,
		Browser:   tui.New(services.Reflections, cfg.UI.PageSize, buildInfo, log),
		BuildInfo: buildInfo,
		PageSize:  cfg.UI.PageSize,
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
	})

	status := commander.Execute(ctx)
	if err = storages.Close(); err != nil {
		log.Debug().Err(err).Str("func", "main").Msg("close local storage")
	}
	os.Exit(int(status))
}
