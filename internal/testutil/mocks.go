package testutil

import (
	"context"
	"fmt"

	"github.com/pantrypal/recipe-search-api/internal/edamam"
)

// --- MockFetcher ---

// MockFetcher is a mock implementation of fetch.Fetcher. Responses maps
// URLs to canned bodies; GetFunc, when set, takes precedence.
type MockFetcher struct {
	GetFunc   func(ctx context.Context, url string) ([]byte, error)
	Responses map[string][]byte
	Requested []string
}

func (m *MockFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	m.Requested = append(m.Requested, url)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, url)
	}
	if body, ok := m.Responses[url]; ok {
		return body, nil
	}
	return nil, nil
}

// --- MockStore ---

// MockStore is a mock implementation of imagecache.Store that records
// how many times Load and Save were called.
type MockStore struct {
	LoadFunc  func() error
	SaveFunc  func() error
	Entries   map[string]string
	LoadCalls int
	SaveCalls int
}

func NewMockStore() *MockStore {
	return &MockStore{Entries: make(map[string]string)}
}

func (m *MockStore) Load() error {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockStore) Save() error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc()
	}
	return nil
}

func (m *MockStore) Get(url string) (string, bool) {
	path, ok := m.Entries[url]
	return path, ok
}

func (m *MockStore) Put(url, path string) {
	m.Entries[url] = path
}

// --- MockSearcher ---

// MockSearcher is a mock implementation of service.RecipeSearcher.
type MockSearcher struct {
	SearchFunc func(ctx context.Context, terms []string, maxResults int) ([]edamam.Hit, error)
}

func (m *MockSearcher) Search(ctx context.Context, terms []string, maxResults int) ([]edamam.Hit, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, terms, maxResults)
	}
	return nil, fmt.Errorf("Search not configured")
}
