package main

import (
	"os"

	"github.com/TFMV/AddressValidator/pkg/api"
	"github.com/TFMV/AddressValidator/pkg/config"
	"github.com/TFMV/AddressValidator/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := utils.NewLogger("address-validator ")

	// Load configuration; a missing file means defaults.
	configPath := "config.yaml"
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Info("No config file loaded (%v); using defaults", err)
		cfg = config.Default()
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		logger.Fatal("API_KEY environment variable is not set. The service cannot authenticate requests.")
	}

	router := gin.Default()
	api.SetupRoutes(router, apiKey)

	logger.Info("Starting server on %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Fatal("Server exited: %v", err)
	}
}
