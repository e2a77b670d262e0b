package shared

import (
	"github.com/spf13/pflag"
)

// HasFlags reports whether any flag of the set was explicitly changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) {
		changed = true
	})
	return changed
}
