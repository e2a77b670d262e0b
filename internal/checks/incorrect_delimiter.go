package checks

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// IncorrectDelimiter flags keys with characters other than letters, digits and
// underscore between the characters of the key.
//
// Invalid leading characters are left to LeadingCharacter and whitespace next to
// the delimiter is left to SpaceCharacter.
type IncorrectDelimiter struct {
	name     string
	template string
}

// NewIncorrectDelimiter returns the check with its default name and message.
func NewIncorrectDelimiter() *IncorrectDelimiter {
	return &IncorrectDelimiter{
		name:     "IncorrectDelimiter",
		template: "The %s key has incorrect delimiter",
	}
}

func (c *IncorrectDelimiter) Name() string {
	return c.name
}

func (c *IncorrectDelimiter) Description() string {
	return "Keys must only separate words with underscores"
}

func (c *IncorrectDelimiter) Run(line envfile.LineEntry) *Warning {
	key, ok := line.Key()
	if !ok {
		return nil
	}

	cleaned := strings.TrimSpace(trimInvalidLeading(key))
	for _, r := range cleaned {
		if !isKeyRune(r) {
			return NewWarning(line, c.name, fmt.Sprintf(c.template, key))
		}
	}
	return nil
}

// trimInvalidLeading drops the leading run of runes that are neither
// alphanumeric nor underscore.
func trimInvalidLeading(key string) string {
	return strings.TrimLeftFunc(key, func(r rune) bool {
		return !isKeyRune(r)
	})
}

func isKeyRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
