package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/cli"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.Execute(ctx, nil)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
