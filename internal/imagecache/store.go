package imagecache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store is a persistent mapping from remote image URL to local file path.
// Load pulls the mapping into memory, Get/Put operate on the in-memory
// view, and Save writes the whole mapping back in one shot.
type Store interface {
	Load() error
	Save() error
	Get(url string) (string, bool)
	Put(url, path string)
}

// FileStore persists the mapping as a single flat JSON object on disk.
// Last writer wins; there is no cross-process locking.
type FileStore struct {
	path    string
	entries map[string]string
}

// NewFileStore creates a FileStore backed by the given file path. The
// file is not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:    path,
		entries: make(map[string]string),
	}
}

// Load reads the cache file. A missing file yields an empty mapping;
// malformed content is an error.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.entries = make(map[string]string)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache file: %w", err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse cache file: %w", err)
	}
	s.entries = entries
	return nil
}

// Save overwrites the cache file with the current mapping.
func (s *FileStore) Save() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to serialize cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Get returns the cached local path for a URL, if present.
func (s *FileStore) Get(url string) (string, bool) {
	path, ok := s.entries[url]
	return path, ok
}

// Put records a URL to local path mapping in memory. It is not persisted
// until Save.
func (s *FileStore) Put(url, path string) {
	s.entries[url] = path
}

// MemoryStore is an in-memory Store with no persistence. Tests use it in
// place of a FileStore.
type MemoryStore struct {
	entries map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Load is a no-op.
func (s *MemoryStore) Load() error { return nil }

// Save is a no-op.
func (s *MemoryStore) Save() error { return nil }

// Get returns the cached local path for a URL, if present.
func (s *MemoryStore) Get(url string) (string, bool) {
	path, ok := s.entries[url]
	return path, ok
}

// Put records a URL to local path mapping.
func (s *MemoryStore) Put(url, path string) {
	s.entries[url] = path
}
