package check

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/envlint/cmd/version"
	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/internal/envfile"
	"github.com/scan-io-git/envlint/internal/report"
	"github.com/scan-io-git/envlint/internal/runner"
	"github.com/scan-io-git/envlint/pkg/shared"
	"github.com/scan-io-git/envlint/pkg/shared/config"
	"github.com/scan-io-git/envlint/pkg/shared/errors"
	"github.com/scan-io-git/envlint/pkg/shared/files"
	"github.com/scan-io-git/envlint/pkg/shared/logger"
)

// RunOptionsCheck holds the arguments for the check command.
type RunOptionsCheck struct {
	Skip       []string
	Exclude    []string
	Recursive  bool
	Format     string
	OutputPath string
	Threads    int
	Quiet      bool
	NoColor    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig         *config.Config
	checkOptions      RunOptionsCheck
	exampleCheckUsage = `  # Check .env files in the current directory
  envlint check

  # Check specific files
  envlint check .env .env.production

  # Check a project tree, skipping the vendor folder
  envlint check -r --exclude ./vendor /path/to/project

  # Skip checks for this run
  envlint check --skip LowercaseKey,TrailingWhitespace .env

  # Write a SARIF report for code scanning
  envlint check -r --format sarif --output /path/to/results/ /path/to/project`
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check [--skip NAME[,NAME...]] [--exclude PATH] [-r] [--format/-f FORMAT] [--output/-o PATH] [-j THREADS_NUMBER] [PATH...]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Check .env files for formatting problems",
	RunE:                  runCheckCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
	CheckCmd.Long = generateLongDescription()
}

// runCheckCommand executes the check command.
func runCheckCommand(cmd *cobra.Command, args []string) error {
	lg := logger.NewLogger(AppConfig, "core-check")

	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		lg.Debug("no arguments given, checking the current directory")
	}

	opts := mergeOptions(checkOptions, AppConfig, cmd.Flags().Changed("format"))
	if err := validateCheckArgs(&opts, args); err != nil {
		lg.Error("invalid check arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), errors.ExitFailure)
	}

	result, err := runCheck(cmd.Context(), opts, args, cmd.OutOrStdout(), lg)
	if err != nil {
		lg.Error("check command failed", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	if n := len(result.Warnings); n > 0 {
		lg.Debug("problems found", "count", n)
		return errors.NewCommandError(fmt.Errorf("found %d problem(s)", n), errors.ExitProblems)
	}
	lg.Debug("check command completed successfully")
	return nil
}

// runCheck discovers, checks and reports. The report goes to out unless an
// output path is set.
func runCheck(ctx context.Context, opts RunOptionsCheck, args []string, out io.Writer, lg hclog.Logger) (runner.Result, error) {
	selected, err := checks.Filter(checks.All(), opts.Skip)
	if err != nil {
		return runner.Result{}, err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	targets, err := envfile.Discover(paths, envfile.DiscoverOptions{Exclude: opts.Exclude, Recursive: opts.Recursive}, lg)
	if err != nil {
		return runner.Result{}, fmt.Errorf("failed to discover env files: %w", err)
	}
	lg.Debug("check starting", "files", len(targets), "checks", len(selected))

	result, err := runner.New(selected, opts.Threads, lg).Run(ctx, targets)
	if err != nil {
		return runner.Result{}, err
	}

	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return runner.Result{}, err
	}
	reportOpts := report.Options{
		Format:       format,
		Color:        !opts.NoColor && opts.OutputPath == "",
		Quiet:        opts.Quiet,
		ToolVersion:  version.CoreVersion,
		Checks:       selected,
		SourceFolder: sourceFolder(paths),
	}

	if opts.OutputPath == "" {
		if err := report.NewReporter(out, reportOpts).Report(result); err != nil {
			return runner.Result{}, err
		}
		return result, nil
	}

	if err := writeReport(opts.OutputPath, format, reportOpts, result); err != nil {
		return runner.Result{}, err
	}
	lg.Info("results saved to file", "path", opts.OutputPath, "problems", len(result.Warnings))
	return result, nil
}

// writeReport renders the report into a file, creating parent folders as needed.
func writeReport(outputPath string, format report.Format, opts report.Options, result runner.Result) error {
	fullPath, folder, err := files.DetermineFileFullPath(outputPath, "envlint-report."+format.Extension())
	if err != nil {
		return err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.NewReporter(&buf, opts).Report(result); err != nil {
		return err
	}
	return files.WriteFile(fullPath, buf.Bytes())
}

// sourceFolder picks the base used for relative SARIF locations: the single
// directory argument when there is one, the working directory otherwise.
func sourceFolder(paths []string) string {
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			return paths[0]
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// mergeOptions layers command line flags over the YAML configuration.
// Skip and exclude lists are combined, booleans are enabled by either side.
func mergeOptions(flags RunOptionsCheck, cfg *config.Config, formatChanged bool) RunOptionsCheck {
	opts := flags
	if cfg == nil {
		return opts
	}

	opts.Skip = append(append([]string{}, cfg.Checks.Skip...), flags.Skip...)
	opts.Exclude = append(append([]string{}, cfg.Exclude...), flags.Exclude...)
	opts.Recursive = flags.Recursive || cfg.Recursive
	opts.Quiet = flags.Quiet || cfg.Output.Quiet
	opts.NoColor = flags.NoColor || !config.ColorEnabled(cfg)
	if !formatChanged {
		opts.Format = config.OutputFormat(cfg)
	}
	return opts
}

// generateLongDescription generates the long description with the list of available checks.
func generateLongDescription() string {
	var lines []string
	for _, c := range checks.All() {
		lines = append(lines, fmt.Sprintf("%-20s %s", c.Name(), c.Description()))
	}
	return fmt.Sprintf(`Check .env files for formatting problems.

Directories are searched for files whose name starts with %q; files given explicitly are always checked.
The command exits with code 1 when problems are found and 2 on errors.

List of available checks:
  %s`, envfile.FilePrefix, strings.Join(lines, "\n  "))
}

// Initialize flags for the check command.
func init() {
	CheckCmd.Flags().StringSliceVar(&checkOptions.Skip, "skip", nil, "Checks to skip (repeat flag or use comma-separated values).")
	CheckCmd.Flags().StringSliceVar(&checkOptions.Exclude, "exclude", nil, "Files or directories to exclude from the check.")
	CheckCmd.Flags().BoolVarP(&checkOptions.Recursive, "recursive", "r", false, "Search directories recursively.")
	CheckCmd.Flags().StringVarP(&checkOptions.Format, "format", "f", string(report.FormatText), "Output format: text, json or sarif.")
	CheckCmd.Flags().StringVarP(&checkOptions.OutputPath, "output", "o", "", "Path to the output file or directory where the report will be saved.")
	CheckCmd.Flags().IntVarP(&checkOptions.Threads, "threads", "j", 0, "Number of files checked concurrently (0 uses all CPUs).")
	CheckCmd.Flags().BoolVarP(&checkOptions.Quiet, "quiet", "q", false, "Print problems only, without the summary.")
	CheckCmd.Flags().BoolVar(&checkOptions.NoColor, "no-color", false, "Disable colored output.")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
