package imagecache

import (
	"fmt"
	"os"
	"path/filepath"
)

// AllocateFileName finds the first unused dir/base_N.jpg path by probing
// N = 1, 2, ... It never returns a path that already exists. The search
// is bounded: past maxAttempts it gives up with an error rather than
// probing forever.
func AllocateFileName(dir, base string, maxAttempts int) (string, error) {
	for n := 1; n <= maxAttempts; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.jpg", base, n))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no free file name for %q in %s after %d attempts", base, dir, maxAttempts)
}
