package main

import (
	"os"

	"github.com/oguzk/disiplintakip/internal/bootstrap"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// @title Disiplin Takip API
// @version 1.0
// @description Okul disiplin olaylarının kaydı, kurul kararları ve resmi evrak üretimi için API

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	if err := bootstrap.Run(); err != nil {
		logger.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
	logger.Info().Msg("Application finished gracefully.")
}
