package book

import "errors"

// Sentinel errors classifying why an archive could not be converted.
var (
	// ErrArchiveParse indicates the source file could not be opened or
	// parsed as an EPUB archive.
	ErrArchiveParse = errors.New("book: archive cannot be parsed")

	// ErrChapterRead indicates a chapter named by the reading order could
	// not be read. The whole book is discarded when this happens.
	ErrChapterRead = errors.New("book: chapter cannot be read")
)
