package main

import (
	"os"

	"github.com/selim/groupdesk/internal/pkg/logger"
	"github.com/selim/groupdesk/internal/server"
)

// @title GroupDesk API
// @version 1.0
// @description Back-office API for language-travel group operations: groups, flights, transfers, centres and staffing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
