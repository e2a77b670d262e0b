package checks

import (
	"github.com/scan-io-git/envlint/internal/envfile"
)

func newLine(raw string) envfile.LineEntry {
	return envfile.LineEntry{
		Number: 1,
		File: envfile.FileEntry{
			Path:       ".env",
			FileName:   ".env",
			TotalLines: 1,
		},
		Raw: raw,
	}
}
