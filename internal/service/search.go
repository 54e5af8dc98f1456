package service

import (
	"context"

	"github.com/pantrypal/recipe-search-api/internal/config"
	"github.com/pantrypal/recipe-search-api/internal/edamam"
	"github.com/pantrypal/recipe-search-api/internal/fetch"
	"github.com/pantrypal/recipe-search-api/internal/imagecache"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"go.uber.org/zap"
)

// Recipe is one search result: the recipe name, the local path of its
// downloaded image, its creator, and the link to the full recipe.
type Recipe struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// RecipeSearcher queries a remote recipe API for ingredient matches.
type RecipeSearcher interface {
	Search(ctx context.Context, terms []string, maxResults int) ([]edamam.Hit, error)
}

// SearchService handles recipe search requests against the remote API,
// resolving each result's image through the local cache.
type SearchService struct {
	Cfg      *config.Config
	Searcher RecipeSearcher
	Store    imagecache.Store
	Resolver *imagecache.Resolver
}

// NewSearchService creates a new SearchService. The store and fetcher are
// shared with the image resolver so that cache lookups, downloads and the
// final save all work against the same mapping.
func NewSearchService(cfg *config.Config, searcher RecipeSearcher, store imagecache.Store, fetcher fetch.Fetcher) *SearchService {
	resolver := imagecache.NewResolver(
		store,
		fetcher,
		cfg.EnvVars.ImageDir,
		cfg.Settings.Images.BaseName,
		cfg.Settings.Images.Placeholder,
		cfg.Settings.Images.MaxAttempts,
	)
	return &SearchService{
		Cfg:      cfg,
		Searcher: searcher,
		Store:    store,
		Resolver: resolver,
	}
}

// Search returns one Recipe per hit, in the order the API returned them.
// A failed or empty upstream response yields an empty slice and leaves
// the cache untouched. A response that cannot be parsed, or a corrupt
// cache file, is returned as an error.
func (s *SearchService) Search(ctx context.Context, terms []string, maxResults int) ([]Recipe, error) {
	if maxResults <= 0 {
		maxResults = s.Cfg.Settings.Search.MaxResults
	}

	hits, err := s.Searcher.Search(ctx, terms, maxResults)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []Recipe{}, nil
	}

	if err := s.Store.Load(); err != nil {
		return nil, err
	}

	recipes := make([]Recipe, 0, len(hits))
	for _, hit := range hits {
		imgPath, downloaded := s.Resolver.Resolve(ctx, hit.Recipe.Image)
		if downloaded {
			logger.Get().Info("downloaded recipe image",
				zap.String("recipe", hit.Recipe.Label),
				zap.String("path", imgPath))
		}
		recipes = append(recipes, Recipe{
			Name:   hit.Recipe.Label,
			Image:  imgPath,
			Source: hit.Recipe.Source,
			URL:    hit.Recipe.URL,
		})
	}

	// One save per search, after all downloads are resolved. A crash
	// mid-search loses cache credit for images downloaded in that run.
	if err := s.Store.Save(); err != nil {
		logger.Get().Warn("failed to save image cache", zap.Error(err))
	}

	return recipes, nil
}
