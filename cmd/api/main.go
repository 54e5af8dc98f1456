package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pantrypal/recipe-search-api/internal/config"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"github.com/pantrypal/recipe-search-api/internal/router"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load search settings from YAML, falling back to defaults
	settings, err := config.LoadSettings("configs/search.yaml")
	if err != nil {
		logger.Get().Warn("settings file not loaded, using defaults", zap.Error(err))
		settings = config.DefaultSettings()
	}
	cfg.Settings = settings

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(cfg)

	// Run the server
	logger.Get().Info("starting server", zap.String("port", cfg.EnvVars.Port))
	r.Run(":" + cfg.EnvVars.Port)
}
