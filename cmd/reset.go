package cmd

import (
	"fmt"

	"github.com/marqos/signmentor/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the mentor's student",
	Long:  "Deletes all student snapshots for the mentor. The session event history stays intact; the next teach run creates a fresh student.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes the student. Re-run with --force to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		mentorID := resolveMentorID(cmd)
		if err := s.SnapshotRepo().Delete(cmd.Context(), mentorID); err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}

		fmt.Printf("Student deleted for mentor %q.\n", mentorID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
