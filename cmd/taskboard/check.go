// Check command reports data consistency issues without modifying anything.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/repo"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report consistency issues in the data directory",
	Long: `Check loads the collections and reports dangling references and
completed/status mismatches. Nothing is enforced or repaired; the write
paths deliberately leave these conditions alone.

Example:
  taskboard check
  taskboard check --data-dir /var/lib/taskboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		store, err := repo.Open(dataDir)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		issues := store.Verify()
		if len(issues) == 0 {
			fmt.Println("No issues found")
			return nil
		}
		for _, issue := range issues {
			fmt.Printf("%s: %s\n", issue.Kind, issue.Message)
		}
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}
