package checks

import (
	"unicode"
	"unicode/utf8"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// LeadingCharacter flags definitions whose first character is not a letter or underscore.
type LeadingCharacter struct{}

func (LeadingCharacter) Name() string {
	return "LeadingCharacter"
}

func (LeadingCharacter) Description() string {
	return "Keys must start with a letter or an underscore"
}

func (c LeadingCharacter) Run(line envfile.LineEntry) *Warning {
	if line.IsEmptyOrComment() {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(line.Raw)
	if r == '_' || unicode.IsLetter(r) {
		return nil
	}
	return NewWarning(line, c.Name(), "Invalid leading character detected")
}
