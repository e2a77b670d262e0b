package checks

import (
	"strings"
	"unicode"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// TrailingWhitespace flags lines ending in whitespace.
type TrailingWhitespace struct{}

func (TrailingWhitespace) Name() string {
	return "TrailingWhitespace"
}

func (TrailingWhitespace) Description() string {
	return "Lines must not end with whitespace"
}

func (c TrailingWhitespace) Run(line envfile.LineEntry) *Warning {
	if strings.TrimRightFunc(line.Raw, unicode.IsSpace) == line.Raw {
		return nil
	}
	return NewWarning(line, c.Name(), "Trailing whitespace detected")
}
