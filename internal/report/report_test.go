package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/envfile"
	"github.com/scan-io-git/envlint/internal/runner"
)

func sampleResult() runner.Result {
	file := envfile.FileEntry{Path: ".env", FileName: ".env", TotalLines: 2}
	first := envfile.LineEntry{Number: 1, File: file, Raw: "FOO-BAR=1"}
	second := envfile.LineEntry{Number: 2, File: file, Raw: "BAZ"}
	return runner.Result{
		Files: 1,
		Warnings: []checks.Warning{
			*checks.NewIncorrectDelimiter().Run(first),
			*checks.KeyWithoutValue{}.Run(second),
		},
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " sarif ": FormatSARIF} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.EqualError(t, err, `unsupported format "xml", expected one of: text, json, sarif`)

	assert.Equal(t, "txt", FormatText.Extension())
	assert.Equal(t, "sarif", FormatSARIF.Extension())
}

func TestReportText(t *testing.T) {
	tests := []struct {
		name   string
		result runner.Result
		quiet  bool
		want   string
	}{
		{
			name:   "Warnings with summary",
			result: sampleResult(),
			want: ".env:1 IncorrectDelimiter: The FOO-BAR key has incorrect delimiter\n" +
				".env:2 KeyWithoutValue: The BAZ key should be with a value or have an equal sign\n" +
				"\n" +
				"Found 2 problems in 1 file\n",
		},
		{
			name:   "Quiet",
			result: sampleResult(),
			quiet:  true,
			want: ".env:1 IncorrectDelimiter: The FOO-BAR key has incorrect delimiter\n" +
				".env:2 KeyWithoutValue: The BAZ key should be with a value or have an equal sign\n",
		},
		{
			name:   "Clean run",
			result: runner.Result{Files: 3},
			want:   "Checked 3 files, no problems found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, Options{Format: FormatText, Quiet: tt.quiet})
			require.NoError(t, r.Report(tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, Options{Format: FormatJSON, ToolVersion: "0.1.0"})
	require.NoError(t, r.Report(sampleResult()))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	_, err := uuid.Parse(got.RunID)
	assert.NoError(t, err)
	assert.Equal(t, ToolName, got.Tool)
	assert.Equal(t, "0.1.0", got.Version)
	assert.Equal(t, 1, got.Files)
	require.Len(t, got.Findings, 2)
	assert.Equal(t, "IncorrectDelimiter", got.Findings[0].RuleID)
	assert.Equal(t, "The FOO-BAR key has incorrect delimiter", got.Findings[0].Description)
	assert.Equal(t, 2, got.Findings[1].StartLine)
}

func TestReportSARIF(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, Options{Format: FormatSARIF, Checks: checks.All()})
	require.NoError(t, r.Report(sampleResult()))

	var got struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				RuleID string `json:"ruleId"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2.1.0", got.Version)
	require.Len(t, got.Runs, 1)
	require.Len(t, got.Runs[0].Results, 2)
	assert.Equal(t, "KeyWithoutValue", got.Runs[0].Results[1].RuleID)
}

func TestReportUnsupportedFormat(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, Options{Format: Format("xml")})
	assert.EqualError(t, r.Report(runner.Result{}), "unsupported format: xml")
}
