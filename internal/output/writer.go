// Package output persists assembled books as JSON documents.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jdillick/epub2json/internal/book"
	"github.com/jdillick/epub2json/internal/naming"
)

// Writer serializes Book documents into an output directory.
type Writer struct {
	log zerolog.Logger
}

// NewWriter returns a Writer logging through log.
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Write marshals b and stores it as <basename>.json inside outputDir,
// replacing any existing file with that name. It returns the number of
// bytes written and logs the success notice with the output path.
func (w *Writer) Write(b *book.Book, sourcePath, outputDir string) (int64, error) {
	outPath := naming.OutputPath(sourcePath, outputDir)

	data, err := json.Marshal(b)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, err
	}

	w.log.Info().
		Str("output", outPath).
		Int("chapters", len(b.ChapterIDs)).
		Msg("Wrote document")
	return int64(len(data)), nil
}
