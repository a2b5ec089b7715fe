package main

import (
	"os"
	"shareit/config"
	"shareit/di"
	"shareit/helper"
	"shareit/shared/logger"
	"shareit/shared/metrics"
	"shareit/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg, os.Stdout)
	timezone.Init(cfg.App.Timezone)

	if cfg.Metrics.Enable {
		metrics.Register()
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	server, cleanup := di.InitializeService()
	defer cleanup()

	server.Serve()
}
