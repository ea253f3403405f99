package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keycore/internal/agent"
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-pass-keycore")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	app, err := agent.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
