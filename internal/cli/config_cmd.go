package cli

import (
	"fmt"

	"github.com/raveheart1/pystack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pystack configuration",
	Long:  `Commands for inspecting the pystack configuration file and its defaults.`,
}

var configTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a commented default configuration file",
	Example: `  # Write a starter config to the conventional location
  pystack config template > .pystack.yml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configTemplateCmd)
	rootCmd.AddCommand(configCmd)
}
