package archive

import (
	"context"
	"fmt"
	"sync"

	"github.com/simp-lee/epub"
)

// EPUBReader opens archives via github.com/simp-lee/epub.
type EPUBReader struct{}

// NewEPUBReader returns the production Reader.
func NewEPUBReader() *EPUBReader { return &EPUBReader{} }

// Open parses the EPUB at path. Metadata and the reading order are captured
// eagerly so the accessors never touch the underlying parser again; only
// chapter content is read lazily.
func (*EPUBReader) Open(ctx context.Context, path string) (Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bk, err := epub.Open(path)
	if err != nil {
		return nil, err
	}

	a := &epubArchive{
		book:     bk,
		chapters: make(map[string]epub.Chapter),
		warnings: bk.Warnings(),
	}

	md := bk.Metadata()
	if len(md.Authors) > 0 {
		a.meta.Creator = md.Authors[0].Name
	}
	if len(md.Titles) > 0 {
		a.meta.Title = md.Titles[0]
	}
	if len(md.Language) > 0 {
		a.meta.Language = md.Language[0]
	}
	if len(md.Subjects) > 0 {
		a.meta.Subject = md.Subjects[0]
	}
	a.meta.Date = md.Date
	a.meta.Description = md.Description

	for _, ch := range bk.Chapters() {
		if ch.ID == "" || ch.Href == "" {
			// Spine entry resolving to no manifest item: nothing to read.
			continue
		}
		a.order = append(a.order, ch.ID)
		if _, seen := a.chapters[ch.ID]; !seen {
			a.chapters[ch.ID] = ch
		}
	}

	return a, nil
}

// epubArchive adapts one open epub.Book. The underlying Book is not safe
// for concurrent use, so chapter reads are serialized behind mu while
// callers stay free to fan out.
type epubArchive struct {
	mu       sync.Mutex
	book     *epub.Book
	meta     Metadata
	order    []string
	chapters map[string]epub.Chapter
	warnings []string
}

func (a *epubArchive) Metadata() Metadata { return a.meta }

func (a *epubArchive) ReadingOrder() []string {
	return append([]string(nil), a.order...)
}

// ReadChapter returns the chapter's body markup. Scripts, styles, and event
// handlers are already stripped by the underlying reader; no further
// normalization happens here.
func (a *epubArchive) ReadChapter(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch, ok := a.chapters[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChapter, id)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return ch.BodyHTML()
}

func (a *epubArchive) Warnings() []string {
	return append([]string(nil), a.warnings...)
}

func (a *epubArchive) Close() error { return a.book.Close() }
