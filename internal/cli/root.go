// Package cli implements the pystack command-line interface.
package cli

import (
	"fmt"

	"github.com/raveheart1/pystack/internal/config"
	"github.com/raveheart1/pystack/internal/errors"
	"github.com/raveheart1/pystack/internal/runner"
	"github.com/raveheart1/pystack/internal/setup"
	"github.com/raveheart1/pystack/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pystack",
	Short: "Bootstrap a Python project's development tooling",
	Long: `pystack bootstraps a new Python project's development tooling.

It verifies Poetry is installed, initializes the project if needed, installs
a curated set of production and development dependencies, writes the linter,
type-checker and test-runner configuration into pyproject.toml, generates the
pre-commit and dependabot manifests plus a security policy, and activates the
commit hooks.

Every step is idempotent: artifacts that already exist are left alone, and
re-running on a fully configured project is a no-op.`,
	Example: `  # Bootstrap the project in the current directory
  pystack

  # See what would happen without touching anything
  pystack --dry-run --verbose

  # Overwrite existing config files without .bak backups
  pystack --force`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetup,
}

func init() {
	rootCmd.PersistentFlags().Bool("dry-run", false, "Simulate the run without writing files or executing commands")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Emit detailed step logs")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Overwrite existing config files without creating .bak backups")
	rootCmd.PersistentFlags().String("config", "", "Path to a pystack config file (default .pystack.yml)")
}

// Execute runs the root command. Errors are printed in structured form here;
// the caller only decides the exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Runtime)
	}
	return err
}

// loadConfiguration loads the layered configuration and applies explicit CLI
// flag overrides on top.
func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration)
	}

	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	if cmd.Flags().Changed("force") {
		cfg.Force, _ = cmd.Flags().GetBool("force")
	}

	return cfg, nil
}

// runSetup executes the full bootstrap sequence.
func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	execRunner := &runner.ExecRunner{
		DryRun: cfg.DryRun,
		Log: func(format string, logArgs ...interface{}) {
			if !cfg.Verbose {
				return
			}
			prefix := ""
			if cfg.DryRun {
				prefix = "[dry-run] "
			}
			fmt.Fprintf(out, prefix+format+"\n", logArgs...)
		},
	}

	s := setup.New(cfg, execRunner, out)
	return s.Run(cmd.Context())
}
