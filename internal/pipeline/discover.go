package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the EPUB archives directly inside inputDir. The scan is
// non-recursive: subdirectories and non-EPUB entries are ignored. The
// ".epub" extension matches case-insensitively and names are kept as found.
// os.ReadDir returns entries sorted by filename, so the order is
// deterministic across runs.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".epub") {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	return files, nil
}
