package findings

import (
	"github.com/scan-io-git/envlint/internal/checks"
)

// SeverityWarning is the severity every envlint check reports with.
const SeverityWarning = "warning"

// Property is a simple name/value pair used for custom metadata.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Finding is the flat, serialisable view of a warning used in machine readable output.
type Finding struct {
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Scanner     string `json:"scanner"`

	FilePath  string `json:"file_path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`

	Properties []Property `json:"properties,omitempty"`
}

// FromWarning converts a check warning into a finding attributed to scanner.
func FromWarning(scanner string, w checks.Warning) Finding {
	f := Finding{
		RuleID:      w.CheckName,
		Description: w.Message,
		Severity:    SeverityWarning,
		Scanner:     scanner,
		FilePath:    w.Line.File.Path,
		StartLine:   w.Line.Number,
		EndLine:     w.Line.Number,
	}
	if key, ok := w.Line.Key(); ok {
		f.Properties = append(f.Properties, Property{Name: "key", Value: key})
	}
	return f
}

// FromWarnings converts warnings preserving their order.
func FromWarnings(scanner string, ws []checks.Warning) []Finding {
	result := make([]Finding, 0, len(ws))
	for _, w := range ws {
		result = append(result, FromWarning(scanner, w))
	}
	return result
}
