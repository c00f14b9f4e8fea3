// Package naming derives output document names from source archive paths.
package naming

import (
	"path/filepath"
	"strings"
)

// Basename returns the file name of path stripped of its directory and
// extension. It is the identifier a source archive and its output document
// share: "library/war-and-peace.epub" -> "war-and-peace".
//
// A name that is nothing but an extension (".epub") is kept whole; stripping
// it would leave no identifier to name the output after.
func Basename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// OutputPath builds the output document path for a source archive:
//
//	<outputDir>/<basename>.json
//
// Sources whose names differ only in extension map to the same output path;
// whichever conversion finishes last wins.
func OutputPath(sourcePath, outputDir string) string {
	return filepath.Join(outputDir, Basename(sourcePath)+".json")
}
