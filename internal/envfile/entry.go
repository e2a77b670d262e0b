package envfile

import (
	"fmt"
	"strings"
)

// Delimiter separates a key from its value on a single line.
const Delimiter = "="

const commentPrefix = "#"

// FileEntry identifies a scanned env file.
type FileEntry struct {
	Path       string `json:"path"`
	FileName   string `json:"file_name"`
	TotalLines int    `json:"total_lines"`
}

// String returns the path used when reporting problems for the file.
func (f FileEntry) String() string {
	return f.Path
}

// LineEntry is one physical line of an env file together with its provenance.
// Entries are immutable once built by the reader and are passed around by value.
type LineEntry struct {
	Number int       `json:"number"`
	File   FileEntry `json:"file"`
	Raw    string    `json:"raw"`
}

// NewLineEntry builds a line entry, enforcing 1 <= number <= file.TotalLines.
func NewLineEntry(file FileEntry, number int, raw string) (LineEntry, error) {
	if number < 1 || number > file.TotalLines {
		return LineEntry{}, fmt.Errorf("line number %d is out of range 1..%d for %q", number, file.TotalLines, file.Path)
	}
	return LineEntry{Number: number, File: file, Raw: raw}, nil
}

// Key returns the verbatim text before the first delimiter.
// The second value is false when there is no delimiter or nothing precedes it.
func (l LineEntry) Key() (string, bool) {
	idx := strings.Index(l.Raw, Delimiter)
	if idx <= 0 {
		return "", false
	}
	return l.Raw[:idx], true
}

// Value returns the verbatim text after the first delimiter.
func (l LineEntry) Value() (string, bool) {
	idx := strings.Index(l.Raw, Delimiter)
	if idx < 0 {
		return "", false
	}
	return l.Raw[idx+len(Delimiter):], true
}

// IsEmpty reports whether the line holds nothing but whitespace.
func (l LineEntry) IsEmpty() bool {
	return strings.TrimSpace(l.Raw) == ""
}

// IsComment reports whether the first non-space text of the line starts a comment.
func (l LineEntry) IsComment() bool {
	return strings.HasPrefix(strings.TrimSpace(l.Raw), commentPrefix)
}

// IsEmptyOrComment is shorthand used by checks that only look at definitions.
func (l LineEntry) IsEmptyOrComment() bool {
	return l.IsEmpty() || l.IsComment()
}

// IsLast reports whether this is the final line of its file.
func (l LineEntry) IsLast() bool {
	return l.Number == l.File.TotalLines
}

// Location renders "path:line" for reporting.
func (l LineEntry) Location() string {
	return fmt.Sprintf("%s:%d", l.File.Path, l.Number)
}
