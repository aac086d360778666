package cmd

import (
	"os"

	"github.com/marqos/signmentor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signmentor",
	Short: "Teach sign language to a simulated student",
	Long:  "SignMentor — terminal app where you mentor a simulated sign-language student and sharpen your own teaching along the way.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SIGNMENTOR_DB env var)")
	rootCmd.PersistentFlags().String("mentor", "", "Mentor ID (overrides SIGNMENTOR_MENTOR env var)")

	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SIGNMENTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveMentorID returns the mentor ID using --mentor flag, then the
// SIGNMENTOR_MENTOR env var, then "default".
func resolveMentorID(cmd *cobra.Command) string {
	if m, _ := cmd.Flags().GetString("mentor"); m != "" {
		return m
	}
	if m := os.Getenv("SIGNMENTOR_MENTOR"); m != "" {
		return m
	}
	return "default"
}
