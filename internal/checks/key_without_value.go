package checks

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// KeyWithoutValue flags definitions that carry no delimiter at all.
type KeyWithoutValue struct{}

func (KeyWithoutValue) Name() string {
	return "KeyWithoutValue"
}

func (KeyWithoutValue) Description() string {
	return "Every key must be followed by an equal sign"
}

func (c KeyWithoutValue) Run(line envfile.LineEntry) *Warning {
	if line.IsEmptyOrComment() || strings.Contains(line.Raw, envfile.Delimiter) {
		return nil
	}
	return NewWarning(line, c.Name(), fmt.Sprintf("The %s key should be with a value or have an equal sign", strings.TrimSpace(line.Raw)))
}
