package checks

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// LowercaseKey flags keys containing lowercase letters.
type LowercaseKey struct{}

func (LowercaseKey) Name() string {
	return "LowercaseKey"
}

func (LowercaseKey) Description() string {
	return "Keys must be written in uppercase"
}

func (c LowercaseKey) Run(line envfile.LineEntry) *Warning {
	if line.IsEmptyOrComment() {
		return nil
	}
	key, ok := line.Key()
	if !ok {
		return nil
	}
	if strings.IndexFunc(key, unicode.IsLower) < 0 {
		return nil
	}
	return NewWarning(line, c.Name(), fmt.Sprintf("The %s key should be in uppercase", key))
}
