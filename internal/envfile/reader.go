package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/scan-io-git/envlint/pkg/shared/files"
)

// ReadFile loads an env file and splits it into line entries in file order.
// A trailing newline does not produce an extra empty line and CRLF endings are
// normalised. Non UTF-8 content is rejected here so checks always see decoded text.
func ReadFile(path string) (FileEntry, []LineEntry, error) {
	if err := files.ValidatePath(path); err != nil {
		return FileEntry{}, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return FileEntry{}, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return FileEntry{}, nil, fmt.Errorf("file %q is not valid UTF-8", path)
	}

	raw := SplitLines(string(data))
	file := FileEntry{
		Path:       path,
		FileName:   filepath.Base(path),
		TotalLines: len(raw),
	}

	lines := make([]LineEntry, 0, len(raw))
	for i, text := range raw {
		lines = append(lines, LineEntry{Number: i + 1, File: file, Raw: text})
	}
	return file, lines, nil
}

// SplitLines splits content into physical lines without their terminators.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	parts := strings.Split(content, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
