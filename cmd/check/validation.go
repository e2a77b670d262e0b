package check

import (
	"fmt"
	"os"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/report"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(opts *RunOptionsCheck, args []string) error {
	if opts.Threads < 0 {
		return fmt.Errorf("the 'threads' flag must not be negative")
	}

	if _, err := report.ParseFormat(opts.Format); err != nil {
		return err
	}

	for _, name := range opts.Skip {
		if !checks.IsKnown(name) {
			return fmt.Errorf("unknown check %q in 'skip' flag, available checks: %v", name, checks.Names())
		}
	}

	for _, target := range args {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			return fmt.Errorf("the target path does not exist: %v", target)
		}
	}

	return nil
}
