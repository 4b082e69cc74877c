package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/strumind/console/internal/buildinfo"
	"github.com/strumind/console/internal/client/cli"
	"github.com/strumind/console/internal/client/config"
	"github.com/strumind/console/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
