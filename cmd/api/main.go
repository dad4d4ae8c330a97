package main

import (
	"flag"

	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/server"
)

// @title Wedding Site Edge API
// @version 1.0
// @description Photo intake, metadata validation and static snapshot serving for the wedding site

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	configPath := flag.String("config", "", "path to the config file (default configs/config.yaml)")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Run blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
