package book

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jdillick/epub2json/internal/archive"
	"github.com/jdillick/epub2json/internal/naming"
)

// Assembler converts EPUB archives into Book documents.
type Assembler struct {
	reader archive.Reader
	log    zerolog.Logger
}

// NewAssembler returns an Assembler that opens archives through reader.
func NewAssembler(reader archive.Reader, log zerolog.Logger) *Assembler {
	return &Assembler{reader: reader, log: log}
}

// Assemble opens the archive at path and builds its Book: metadata copied
// verbatim, every chapter of the reading order fetched, contents placed back
// in declared order. Chapters are read concurrently; completion order never
// affects the result. All-or-nothing: one failed chapter discards the book.
func (as *Assembler) Assemble(ctx context.Context, path string) (*Book, error) {
	ar, err := as.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveParse, err)
	}
	defer ar.Close()

	base := filepath.Base(path)
	for _, w := range ar.Warnings() {
		as.log.Debug().Str("file", base).Msg(w)
	}

	ids := ar.ReadingOrder()
	as.log.Debug().Str("file", base).Int("chapters", len(ids)).Msg("Reading chapters")

	// Fan out one goroutine per chapter; each writes into its own slot so
	// the declared order survives arbitrary completion order.
	contents := make([]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			text, err := ar.ReadChapter(gctx, id)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrChapterRead, id, err)
			}
			contents[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []string{}
	}
	chapters := make(map[string]string, len(ids))
	for i, id := range ids {
		chapters[id] = contents[i]
	}

	md := ar.Metadata()
	return &Book{
		Filename:    naming.Basename(path),
		Creator:     md.Creator,
		Title:       md.Title,
		Language:    md.Language,
		Subject:     md.Subject,
		Date:        md.Date,
		Description: md.Description,
		ChapterIDs:  ids,
		Chapters:    chapters,
	}, nil
}
