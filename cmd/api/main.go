package main

import (
	"os"

	"github.com/unibecas/sibeca/internal/pkg/logger"
	"github.com/unibecas/sibeca/internal/server"
)

// @title SiBeca API
// @version 1.0
// @description Attendance backend for the scholarship work-study program

// @host localhost:8080
// @schemes http https

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
}
