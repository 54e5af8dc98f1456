package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pantrypal/recipe-search-api/internal/config"
	"github.com/pantrypal/recipe-search-api/internal/edamam"
	"github.com/pantrypal/recipe-search-api/internal/fetch"
	"github.com/pantrypal/recipe-search-api/internal/handlers"
	"github.com/pantrypal/recipe-search-api/internal/imagecache"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"github.com/pantrypal/recipe-search-api/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Search pipeline setup: one fetcher and one cache store shared by
	// the Edamam client and the image resolver.
	fetcher := fetch.NewClient()
	store := imagecache.NewFileStore(cfg.EnvVars.CacheFile)
	searcher := edamam.NewClient(
		cfg.EnvVars.EdamamAppID,
		cfg.EnvVars.EdamamAPIKey,
		cfg.Settings.Search.Endpoint,
		fetcher,
	)
	searchService := service.NewSearchService(cfg, searcher, store, fetcher)
	searchHandler := handlers.NewSearchHandler(searchService)

	v1 := r.Group("/v1")
	{
		v1.GET("/search", searchHandler.SearchRecipes)
	}

	return r
}
