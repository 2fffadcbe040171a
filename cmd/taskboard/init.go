// Init command prepares the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/repo"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the taskboard directories",
	Long: `Init creates the configuration directory with a default config.yaml and
the data directory with empty collection documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml are created by PersistentPreRunE.
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		if _, err := repo.Open(dataDir); err != nil {
			return fmt.Errorf("initialize data dir: %w", err)
		}
		fmt.Printf("Taskboard initialized (data directory: %s)\n", dataDir)
		return nil
	},
}
