package main

import (
	"context"
	"os"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/buildinfo"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/config"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/console"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel)

	app := console.NewApp(cfg, log)
	app.Run(ctx)

}
