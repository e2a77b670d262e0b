package list

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/envlint/internal/checks"
	"github.com/scan-io-git/envlint/pkg/shared/config"
	"github.com/scan-io-git/envlint/pkg/shared/errors"
	"github.com/scan-io-git/envlint/pkg/shared/logger"
)

// CheckInfo describes a single check in list output.
type CheckInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Global variables for configuration and command arguments
var (
	AppConfig   *config.Config
	listOptions struct {
		JSON bool
	}

	exampleListUsage = `  # List all available checks
  envlint list

  # List checks as JSON
  envlint list --json`
)

// ListCmd represents the command for list command.
var ListCmd = &cobra.Command{
	Use:                   "list [--json]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleListUsage,
	Short:                 "List available checks",
	Args:                  cobra.NoArgs,
	RunE:                  runListCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runListCommand(cmd *cobra.Command, args []string) error {
	lg := logger.NewLogger(AppConfig, "core-list")

	if err := printChecks(cmd.OutOrStdout(), collectChecks(checks.All()), listOptions.JSON); err != nil {
		lg.Error("list command failed", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}
	return nil
}

// collectChecks returns check metadata ordered by name.
func collectChecks(cs []checks.Check) []CheckInfo {
	byName := make(map[string]checks.Check, len(cs))
	for _, c := range cs {
		byName[c.Name()] = c
	}

	var infos []CheckInfo
	for _, name := range checks.Names() {
		if c, ok := byName[name]; ok {
			infos = append(infos, CheckInfo{Name: c.Name(), Description: c.Description()})
		}
	}
	return infos
}

func printChecks(w io.Writer, infos []CheckInfo, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(infos, "", "    ")
		if err != nil {
			return fmt.Errorf("error marshaling the check list: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, info := range infos {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func init() {
	ListCmd.Flags().BoolVar(&listOptions.JSON, "json", false, "Print the check list as JSON.")
	ListCmd.Flags().BoolP("help", "h", false, "Show help for the list command.")
}
