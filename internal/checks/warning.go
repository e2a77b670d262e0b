package checks

import (
	"fmt"

	"github.com/scan-io-git/envlint/internal/envfile"
)

// Warning is one problem found by a check on a single line.
type Warning struct {
	Line      envfile.LineEntry `json:"line"`
	CheckName string            `json:"check_name"`
	Message   string            `json:"message"`
}

// NewWarning creates a warning for the given line.
func NewWarning(line envfile.LineEntry, checkName, message string) *Warning {
	return &Warning{
		Line:      line,
		CheckName: checkName,
		Message:   message,
	}
}

// String renders the warning as "path:line CheckName: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Line.Location(), w.CheckName, w.Message)
}

// Less orders warnings by file path, line number and check name.
func Less(a, b Warning) bool {
	if a.Line.File.Path != b.Line.File.Path {
		return a.Line.File.Path < b.Line.File.Path
	}
	if a.Line.Number != b.Line.Number {
		return a.Line.Number < b.Line.Number
	}
	return a.CheckName < b.CheckName
}
