package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/envlint/cmd/check"
	"github.com/scan-io-git/envlint/cmd/list"
	"github.com/scan-io-git/envlint/cmd/version"
	"github.com/scan-io-git/envlint/pkg/shared/config"
	"github.com/scan-io-git/envlint/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "envlint [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Envlint is a linter for .env files.",
		Long: `Envlint checks environment variable definition files (KEY=VALUE per line)
	for formatting problems such as invalid key delimiters, leading characters and stray whitespace.
	`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s when present)", config.DefaultConfigFile))
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	code := errors.ExitCode(err)
	if err != nil && code != errors.ExitProblems {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
	}
	return code
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		return errors.NewCommandError(fmt.Errorf("initializing config file function is crashed: %w", err), errors.ExitFailure)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	check.Init(AppConfig)
	list.Init(AppConfig)
	version.Init(AppConfig)
	return nil
}
