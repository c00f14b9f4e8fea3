// Package book assembles EPUB archives into JSON-ready documents.
package book

// Book is the converted form of one EPUB archive. The JSON field names are
// the output contract; downstream consumers key on them directly.
//
// ChapterIDs carries the reading order. Chapters maps each id to its
// content markup and holds no ordering of its own. An archive with no
// chapters yields an empty slice and map, never null.
type Book struct {
	Filename    string            `json:"filename"`
	Creator     string            `json:"creator"`
	Title       string            `json:"title"`
	Language    string            `json:"language"`
	Subject     string            `json:"subject"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	ChapterIDs  []string          `json:"chapterIds"`
	Chapters    map[string]string `json:"chapters"`
}
