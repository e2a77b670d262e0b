package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/envfile"
)

func TestFromWarnings(t *testing.T) {
	file := envfile.FileEntry{Path: "app/.env", FileName: ".env", TotalLines: 3}
	ws := []checks.Warning{
		{Line: envfile.LineEntry{Number: 2, File: file, Raw: "FOO-BAR=1"}, CheckName: "IncorrectDelimiter", Message: "The FOO-BAR key has incorrect delimiter"},
		{Line: envfile.LineEntry{Number: 3, File: file, Raw: "BAZ"}, CheckName: "KeyWithoutValue", Message: "The BAZ key should be with a value or have an equal sign"},
	}

	got := FromWarnings("envlint", ws)

	assert.Equal(t, []Finding{
		{
			RuleID:      "IncorrectDelimiter",
			Description: "The FOO-BAR key has incorrect delimiter",
			Severity:    SeverityWarning,
			Scanner:     "envlint",
			FilePath:    "app/.env",
			StartLine:   2,
			EndLine:     2,
			Properties:  []Property{{Name: "key", Value: "FOO-BAR"}},
		},
		{
			RuleID:      "KeyWithoutValue",
			Description: "The BAZ key should be with a value or have an equal sign",
			Severity:    SeverityWarning,
			Scanner:     "envlint",
			FilePath:    "app/.env",
			StartLine:   3,
			EndLine:     3,
		},
	}, got)
}
