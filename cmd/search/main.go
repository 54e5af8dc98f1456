package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pantrypal/recipe-search-api/internal/config"
	"github.com/pantrypal/recipe-search-api/internal/edamam"
	"github.com/pantrypal/recipe-search-api/internal/fetch"
	"github.com/pantrypal/recipe-search-api/internal/imagecache"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"github.com/pantrypal/recipe-search-api/internal/service"
	"go.uber.org/zap"
)

// Interactive search from the terminal: prompts for ingredients, searches
// the recipe API and prints each match.
func main() {
	logger.Init(true)
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	settings, err := config.LoadSettings("configs/search.yaml")
	if err != nil {
		settings = config.DefaultSettings()
	}
	cfg.Settings = settings

	fetcher := fetch.NewClient()
	store := imagecache.NewFileStore(cfg.EnvVars.CacheFile)
	searcher := edamam.NewClient(
		cfg.EnvVars.EdamamAppID,
		cfg.EnvVars.EdamamAPIKey,
		cfg.Settings.Search.Endpoint,
		fetcher,
	)
	svc := service.NewSearchService(cfg, searcher, store, fetcher)

	fmt.Print("Enter ingredients separated by a space: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')

	ingredients := strings.Fields(line)
	if len(ingredients) == 0 {
		ingredients = cfg.Settings.DefaultIngredients
	}

	fmt.Printf("Searching for %s :\n", strings.Join(ingredients, ", "))

	results, err := svc.Search(context.Background(), ingredients, cfg.Settings.Search.MaxResults)
	if err != nil {
		logger.Get().Fatal("search failed", zap.Error(err))
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}

	for _, recipe := range results {
		fmt.Println(recipe.Name, "by", recipe.Source)
		fmt.Println("Link: ", recipe.URL)
		fmt.Println("Image: ", recipe.Image)
		fmt.Println()
	}
}
