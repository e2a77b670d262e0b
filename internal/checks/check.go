// Package checks holds the per-line rules applied to env files and the warning
// model they produce.
package checks

import (
	"github.com/scan-io-git/envlint/internal/envfile"
)

// Check is a single per-line validation rule.
//
// Implementations must be pure: the result depends only on the line passed in,
// so one instance can be shared across goroutines and files.
type Check interface {
	// Name returns the stable identifier used in output and in skip lists.
	Name() string

	// Description explains what the check enforces.
	Description() string

	// Run inspects one line and returns a warning, or nil when the line is fine.
	Run(line envfile.LineEntry) *Warning
}
