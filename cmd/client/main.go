package main

import (
	"context"
	"os"

	"campuspocket/internal/client/cli"
	"campuspocket/internal/client/config"
	"campuspocket/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewZerologLogger(os.Stdout, cfg.Debug)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		os.Exit(1)
	}

	app.Run(ctx)
}
