package cmd

import (
	"fmt"
	"os"

	"github.com/marqos/signmentor/internal/app"
	"github.com/marqos/signmentor/internal/llm"
	"github.com/marqos/signmentor/internal/store"
	"github.com/spf13/cobra"
)

var teachCmd = &cobra.Command{
	Use:   "teach",
	Short: "Start an interactive teaching session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Store:    st,
		MentorID: resolveMentorID(cmd),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The student will react heuristically.")
	} else {
		opts.Provider = provider
	}

	return app.Run(ctx, opts)
}
