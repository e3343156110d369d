package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/api-activity/internal/adapter"
	"github.com/MKhiriev/api-activity/internal/client"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewConsoleLogger("api-activity-client", os.Stderr, "error")

	app, err := client.NewApp(adapter.NewHTTPServerAdapter, info.String(), os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
