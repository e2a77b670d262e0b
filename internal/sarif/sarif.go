package sarif

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/envlint/internal/checks"
)

const levelWarning = "warning"

// Report wraps a SARIF report built from envlint warnings.
type Report struct {
	*sarif.Report
	sourceFolder string
}

// ToolMetadata describes the tool recorded in the SARIF run.
type ToolMetadata struct {
	Name           string
	Version        string
	InformationURI string
}

// NewReport builds a single-run SARIF report. Every check gets a rule
// descriptor, even when it produced no results, so consumers see what ran.
// File URIs are made relative to sourceFolder when they live under it.
func NewReport(tool ToolMetadata, cs []checks.Check, warnings []checks.Warning, sourceFolder string) (*Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(tool.Name, tool.InformationURI)
	if tool.Version != "" {
		version := tool.Version
		run.Tool.Driver.SemanticVersion = &version
	}

	for _, c := range cs {
		run.AddRule(c.Name()).
			WithDescription(c.Description()).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: levelWarning})
	}

	for _, w := range warnings {
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(artifactURI(w.Line.File.Path, sourceFolder))).
				WithRegion(sarif.NewRegion().WithStartLine(w.Line.Number)),
		)

		result := sarif.NewRuleResult(w.CheckName).
			WithMessage(sarif.NewTextMessage(w.Message)).
			WithLevel(levelWarning).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	report.AddRun(run)

	return &Report{Report: report, sourceFolder: sourceFolder}, nil
}

// Write encodes the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	if err := r.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	return nil
}

// PathWithin checks if a path is within another path (root).
// Returns true if path is within root, or if root is empty.
func PathWithin(path, root string) bool {
	if root == "" {
		return true
	}
	cleanPath, err1 := filepath.Abs(path)
	cleanRoot, err2 := filepath.Abs(root)
	if err1 != nil || err2 != nil {
		cleanPath = filepath.Clean(path)
		cleanRoot = filepath.Clean(root)
	}
	if cleanPath == cleanRoot {
		return true
	}
	rootWithSep := cleanRoot + string(filepath.Separator)
	return strings.HasPrefix(cleanPath, rootWithSep)
}

// artifactURI returns a forward-slash path, relative to sourceFolder when possible.
func artifactURI(path, sourceFolder string) string {
	if sourceFolder != "" && PathWithin(path, sourceFolder) {
		absPath, err1 := filepath.Abs(path)
		absRoot, err2 := filepath.Abs(sourceFolder)
		if err1 == nil && err2 == nil {
			if rel, err := filepath.Rel(absRoot, absPath); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	}
	return filepath.ToSlash(path)
}
