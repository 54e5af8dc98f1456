package imagecache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "cached.json"))

	if err := s.Load(); err != nil {
		t.Fatalf("Load of missing file should yield empty mapping, got %v", err)
	}
	if _, ok := s.Get("http://img.example.com/1.jpg"); ok {
		t.Error("empty store should have no entries")
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cached.json")

	s := NewFileStore(path)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	s.Put("http://img.example.com/1.jpg", "img/img_1.jpg")
	s.Put("http://img.example.com/2.jpg", "img/img_2.jpg")
	if err := s.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reloaded := NewFileStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, ok := reloaded.Get("http://img.example.com/1.jpg"); !ok || got != "img/img_1.jpg" {
		t.Errorf("Get(1) = %q, %v; want img/img_1.jpg, true", got, ok)
	}
	if got, ok := reloaded.Get("http://img.example.com/2.jpg"); !ok || got != "img/img_2.jpg" {
		t.Errorf("Get(2) = %q, %v; want img/img_2.jpg, true", got, ok)
	}
}

func TestFileStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cached.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewFileStore(path).Load(); err == nil {
		t.Error("malformed cache file should be a load error")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cached.json")
	if err := os.WriteFile(path, []byte(`{"http://old/1.jpg":"img/img_9.jpg"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	s.Put("http://new/1.jpg", "img/img_1.jpg")
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewFileStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.Get("http://old/1.jpg"); ok {
		t.Error("Save should overwrite, not merge, the previous file")
	}
}

func TestMemoryStore_GetPut(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	s.Put("http://img.example.com/1.jpg", "img/img_1.jpg")
	if got, ok := s.Get("http://img.example.com/1.jpg"); !ok || got != "img/img_1.jpg" {
		t.Errorf("Get = %q, %v; want img/img_1.jpg, true", got, ok)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
}
