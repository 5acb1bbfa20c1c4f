package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calderhouse/menuview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	Long:  `Walks through the configuration options and writes a .menuview.yml file in the current directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(config.DefaultPath); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", config.DefaultPath)
	}

	if _, err := config.RunWizard(); err != nil {
		return fmt.Errorf("running setup wizard: %w", err)
	}
	return nil
}
