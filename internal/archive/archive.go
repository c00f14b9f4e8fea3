// Package archive abstracts read access to EPUB containers.
//
// The conversion pipeline consumes these interfaces and never touches EPUB
// internals itself. The production implementation wraps
// github.com/simp-lee/epub; tests substitute fakes.
package archive

import (
	"context"
	"errors"
)

// ErrUnknownChapter is returned by ReadChapter for ids that are not part of
// the archive's reading order.
var ErrUnknownChapter = errors.New("archive: unknown chapter id")

// Metadata is the descriptive record of an opened archive. Fields the
// archive does not declare are empty strings, never omitted.
type Metadata struct {
	Creator     string
	Title       string
	Language    string
	Subject     string
	Date        string
	Description string
}

// Reader opens EPUB archives from disk.
type Reader interface {
	// Open parses the archive at path and returns a handle for reading it.
	// The caller must Close the returned Archive.
	Open(ctx context.Context, path string) (Archive, error)
}

// Archive is one opened EPUB container.
//
// ReadChapter may be called from multiple goroutines at once;
// implementations serialize access to any non-thread-safe internals.
type Archive interface {
	// Metadata returns the archive's descriptive record.
	Metadata() Metadata

	// ReadingOrder returns chapter ids in the order the archive declares
	// them. The slice is a copy; callers may keep or modify it.
	ReadingOrder() []string

	// ReadChapter returns the content markup of the chapter with the
	// given id.
	ReadChapter(ctx context.Context, id string) (string, error)

	// Warnings returns non-fatal structural notes gathered during Open.
	Warnings() []string

	// Close releases the underlying file handle.
	Close() error
}
