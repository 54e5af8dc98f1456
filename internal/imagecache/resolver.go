package imagecache

import (
	"context"
	"os"

	"github.com/asaskevich/govalidator"
	"github.com/pantrypal/recipe-search-api/internal/fetch"
	"github.com/pantrypal/recipe-search-api/internal/logger"
	"go.uber.org/zap"
)

// Resolver turns remote image URLs into local file paths, consulting the
// Store before downloading and falling back to a placeholder path when a
// download is not possible. Failed downloads are never cached, so they
// are retried on the next search.
type Resolver struct {
	store       Store
	fetcher     fetch.Fetcher
	dir         string
	baseName    string
	placeholder string
	maxAttempts int
}

// NewResolver creates a Resolver downloading into dir with file names
// derived from baseName.
func NewResolver(store Store, fetcher fetch.Fetcher, dir, baseName, placeholder string, maxAttempts int) *Resolver {
	return &Resolver{
		store:       store,
		fetcher:     fetcher,
		dir:         dir,
		baseName:    baseName,
		placeholder: placeholder,
		maxAttempts: maxAttempts,
	}
}

// Resolve returns the local path for an image URL and whether a download
// took place. A cache hit returns the stored path with no I/O. A miss
// downloads the image to a freshly allocated name and records the
// mapping; if anything along the way fails, the placeholder path is
// returned and nothing is recorded.
func (r *Resolver) Resolve(ctx context.Context, imgURL string) (string, bool) {
	if path, ok := r.store.Get(imgURL); ok {
		logger.Get().Debug("image cache hit", zap.String("url", imgURL))
		return path, false
	}

	if !govalidator.IsURL(imgURL) {
		logger.Get().Warn("skipping invalid image url", zap.String("url", imgURL))
		return r.placeholder, false
	}

	data, err := r.fetcher.Get(ctx, imgURL)
	if err != nil {
		logger.Get().Warn("image download failed", zap.String("url", imgURL), zap.Error(err))
		return r.placeholder, false
	}
	if len(data) == 0 {
		return r.placeholder, false
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		logger.Get().Warn("failed to create image directory", zap.String("dir", r.dir), zap.Error(err))
		return r.placeholder, false
	}

	path, err := AllocateFileName(r.dir, r.baseName, r.maxAttempts)
	if err != nil {
		logger.Get().Warn("failed to allocate image file name", zap.Error(err))
		return r.placeholder, false
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Get().Warn("failed to write image file", zap.String("path", path), zap.Error(err))
		return r.placeholder, false
	}

	r.store.Put(imgURL, path)
	logger.Get().Debug("image downloaded", zap.String("url", imgURL), zap.String("path", path))
	return path, true
}
