// Package report renders run results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/findings"
	"github.com/scan-io-git/envlint/internal/runner"
	"github.com/scan-io-git/envlint/internal/sarif"
)

// ToolName is recorded as the scanner in machine readable output.
const ToolName = "envlint"

// InformationURI points to the project home in SARIF output.
const InformationURI = "https://github.com/scan-io-git/envlint"

// Format represents the output format for reporting warnings.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatSARIF Format = "sarif"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatSARIF:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format %q, expected one of: text, json, sarif", name)
	}
}

// Extension returns the file extension used when the report is written to a folder.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Options configures a Reporter.
type Options struct {
	Format       Format
	Color        bool
	Quiet        bool
	ToolVersion  string
	Checks       []checks.Check // Checks that ran, listed as SARIF rules
	SourceFolder string         // Base for relative SARIF URIs
}

// Reporter writes a run result in the configured format.
type Reporter struct {
	writer io.Writer
	opts   Options
	newID  func() string
}

// NewReporter creates a new Reporter with the specified output writer and options.
func NewReporter(writer io.Writer, opts Options) *Reporter {
	return &Reporter{
		writer: writer,
		opts:   opts,
		newID:  uuid.NewString,
	}
}

// jsonReport is the document written in JSON format.
type jsonReport struct {
	RunID    string             `json:"run_id"`
	Tool     string             `json:"tool"`
	Version  string             `json:"version,omitempty"`
	Files    int                `json:"files"`
	Findings []findings.Finding `json:"findings"`
}

// Report writes the result to the output writer in the configured format.
func (r *Reporter) Report(result runner.Result) error {
	switch r.opts.Format {
	case FormatText, "":
		return r.reportText(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatSARIF:
		return r.reportSARIF(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.opts.Format)
	}
}

// reportText outputs warnings one per line followed by a summary.
func (r *Reporter) reportText(result runner.Result) error {
	location := color.New(color.FgCyan)
	name := color.New(color.FgRed, color.Bold)
	summary := color.New(color.FgYellow)
	if !r.opts.Color {
		location.DisableColor()
		name.DisableColor()
		summary.DisableColor()
	}

	for _, w := range result.Warnings {
		if _, err := fmt.Fprintf(r.writer, "%s %s: %s\n", location.Sprint(w.Line.Location()), name.Sprint(w.CheckName), w.Message); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}

	if r.opts.Quiet {
		return nil
	}
	var err error
	switch n := len(result.Warnings); n {
	case 0:
		_, err = fmt.Fprintf(r.writer, "Checked %d %s, no problems found\n", result.Files, plural(result.Files, "file"))
	default:
		if _, err = fmt.Fprintln(r.writer); err != nil {
			break
		}
		_, err = summary.Fprintf(r.writer, "Found %d %s in %d %s\n", n, plural(n, "problem"), result.Files, plural(result.Files, "file"))
	}
	if err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// reportJSON outputs the findings with a unique run identifier.
func (r *Reporter) reportJSON(result runner.Result) error {
	output := jsonReport{
		RunID:    r.newID(),
		Tool:     ToolName,
		Version:  r.opts.ToolVersion,
		Files:    result.Files,
		Findings: findings.FromWarnings(ToolName, result.Warnings),
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// reportSARIF outputs a SARIF 2.1.0 document.
func (r *Reporter) reportSARIF(result runner.Result) error {
	tool := sarif.ToolMetadata{
		Name:           ToolName,
		Version:        r.opts.ToolVersion,
		InformationURI: InformationURI,
	}
	report, err := sarif.NewReport(tool, r.opts.Checks, result.Warnings, r.opts.SourceFolder)
	if err != nil {
		return err
	}
	return report.Write(r.writer)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
