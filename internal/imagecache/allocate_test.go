package imagecache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllocateFileName_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	got, err := AllocateFileName(dir, "img", 100)
	if err != nil {
		t.Fatalf("AllocateFileName returned error: %v", err)
	}
	want := filepath.Join(dir, "img_1.jpg")
	if got != want {
		t.Errorf("AllocateFileName = %q, want %q", got, want)
	}
}

func TestAllocateFileName_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img_1.jpg", "img_2.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := AllocateFileName(dir, "img", 100)
	if err != nil {
		t.Fatalf("AllocateFileName returned error: %v", err)
	}
	want := filepath.Join(dir, "img_3.jpg")
	if got != want {
		t.Errorf("AllocateFileName = %q, want %q", got, want)
	}
}

func TestAllocateFileName_NeverReturnsExistingPath(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		path, err := AllocateFileName(dir, "img", 100)
		if err != nil {
			t.Fatalf("AllocateFileName returned error: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("allocated path %q already exists", path)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAllocateFileName_Bounded(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img_1.jpg", "img_2.jpg", "img_3.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := AllocateFileName(dir, "img", 3); err == nil {
		t.Error("expected error when all names up to maxAttempts are taken")
	}
}

func TestAllocateFileName_DifferentBaseNamesIndependent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "img_1.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := AllocateFileName(dir, "thumb", 100)
	if err != nil {
		t.Fatalf("AllocateFileName returned error: %v", err)
	}
	want := filepath.Join(dir, "thumb_1.jpg")
	if got != want {
		t.Errorf("AllocateFileName = %q, want %q", got, want)
	}
}
