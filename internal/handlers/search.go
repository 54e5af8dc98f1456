package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"github.com/pantrypal/recipe-search-api/internal/service"
	"go.uber.org/zap"
)

// SearchHandler handles recipe search requests.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// SearchRecipes handles GET /v1/search?ingredients=apples,butter&max=3
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	raw := c.Query("ingredients")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'ingredients' is required"})
		return
	}

	terms := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'ingredients' is required"})
		return
	}

	max := 0
	if maxStr := c.Query("max"); maxStr != "" {
		parsed, err := strconv.Atoi(maxStr)
		if err == nil && parsed > 0 && parsed <= 50 {
			max = parsed
		}
	}

	results, err := h.Service.Search(c.Request.Context(), terms, max)
	if err != nil {
		logger.Get().Error("failed to search recipes", zap.Strings("ingredients", terms), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
