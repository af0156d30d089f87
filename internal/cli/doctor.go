package cli

import (
	"fmt"

	"github.com/raveheart1/pystack/internal/errors"
	"github.com/raveheart1/pystack/internal/health"
	"github.com/raveheart1/pystack/internal/output"
	"github.com/raveheart1/pystack/internal/progress"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are available",
	Long: `Check that the external tools pystack depends on are available.

Reports the presence of Poetry (required), pipx and pre-commit (advisory),
and whether the working directory is inside a git repository. Advisory
checks are informational and do not fail the command.`,
	Example: `  # Verify the environment before bootstrapping
  pystack doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())

	report := health.RunHealthChecks(cfg)
	for _, check := range report.Checks {
		label := fmt.Sprintf("%s: %s", check.Name, check.Message)
		switch {
		case check.Passed:
			output.PrintSuccess(out, label)
		case check.Advisory:
			output.PrintSkipped(out, label+" (optional)")
		default:
			fmt.Fprintf(out, "%s %s\n", symbols.Failure, label)
		}
	}

	if !report.Passed {
		return errors.NewPrerequisiteError(
			"environment is not ready",
			"Resolve the failed checks above, then re-run pystack",
		)
	}

	output.PrintSuccess(out, "environment is ready")
	return nil
}
