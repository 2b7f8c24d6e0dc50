package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/visitdesk/visitdesk/internal/buildinfo"
	"github.com/visitdesk/visitdesk/internal/cli"
	"github.com/visitdesk/visitdesk/internal/config"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/obs"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	obs.Init()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
