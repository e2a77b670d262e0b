// Package runner drives the checks over env files and aggregates their warnings.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/envfile"
)

// Result is the outcome of a run over a set of files.
type Result struct {
	Files    int              `json:"files"`
	Warnings []checks.Warning `json:"warnings"`
}

// Runner applies a fixed set of checks to every definition line of every file.
type Runner struct {
	checks []checks.Check // Checks to apply, shared by all workers
	jobs   int            // Maximum number of files processed at once
	logger hclog.Logger   // Logger for progress and errors
}

// New creates a Runner. A non-positive jobs value means GOMAXPROCS.
func New(cs []checks.Check, jobs int, logger hclog.Logger) *Runner {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		checks: cs,
		jobs:   jobs,
		logger: logger,
	}
}

// Run reads and checks the given files concurrently. Each file is checked into
// its own slice and the slices are merged once every worker is done, so the
// returned warnings are sorted by path, line and check name.
func (r *Runner) Run(ctx context.Context, paths []string) (Result, error) {
	r.logger.Debug("run starting", "files", len(paths), "checks", len(r.checks), "jobs", r.jobs)

	perFile := make([][]checks.Warning, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			_, lines, err := envfile.ReadFile(path)
			if err != nil {
				r.logger.Error("failed to read env file", "path", path, "error", err)
				return fmt.Errorf("failed to read env file %q: %w", path, err)
			}

			perFile[i] = r.CheckLines(lines)
			r.logger.Debug("file checked", "path", path, "lines", len(lines), "warnings", len(perFile[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Files: len(paths)}
	for _, ws := range perFile {
		result.Warnings = append(result.Warnings, ws...)
	}
	sort.SliceStable(result.Warnings, func(i, j int) bool {
		return checks.Less(result.Warnings[i], result.Warnings[j])
	})

	r.logger.Debug("run finished", "files", result.Files, "warnings", len(result.Warnings))
	return result, nil
}

// CheckLines applies the checks to the lines of one file in order.
// Comment lines are never handed to checks; control comments among them switch
// checks off and on for the lines that follow.
func (r *Runner) CheckLines(lines []envfile.LineEntry) []checks.Warning {
	var warnings []checks.Warning
	disabled := newDisabledSet()

	for _, line := range lines {
		if c, ok := parseControl(line); ok {
			disabled.apply(c)
			continue
		}
		if line.IsComment() {
			continue
		}

		for _, check := range r.checks {
			if disabled.has(check.Name()) {
				continue
			}
			if w := check.Run(line); w != nil {
				warnings = append(warnings, *w)
			}
		}
	}
	return warnings
}
