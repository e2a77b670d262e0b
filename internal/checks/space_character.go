package checks

import (
	"strings"
	"unicode"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// SpaceCharacter flags whitespace directly around the first delimiter.
type SpaceCharacter struct{}

func (SpaceCharacter) Name() string {
	return "SpaceCharacter"
}

func (SpaceCharacter) Description() string {
	return "The equal sign must not be surrounded by whitespace"
}

func (c SpaceCharacter) Run(line envfile.LineEntry) *Warning {
	if line.IsEmptyOrComment() {
		return nil
	}
	key, hasKey := line.Key()
	value, hasValue := line.Value()
	if !hasKey || !hasValue {
		return nil
	}
	// A value made only of whitespace belongs to TrailingWhitespace.
	spaceBefore := strings.TrimRightFunc(key, unicode.IsSpace) != key
	spaceAfter := strings.TrimSpace(value) != "" && strings.TrimLeftFunc(value, unicode.IsSpace) != value
	if spaceBefore || spaceAfter {
		return NewWarning(line, c.Name(), "The line has spaces around equal sign")
	}
	return nil
}
