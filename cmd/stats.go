package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show student progress and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := loadMentorData(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if d.student == nil {
			fmt.Println("No student yet. Run `signmentor teach` first.")
			return nil
		}

		st := d.student
		fmt.Printf("%s  ·  %s  ·  %s  ·  mood %s\n", st.Name, st.Personality, st.Level, st.Mood)
		fmt.Printf("Progress %.0f%%   Comprehension %.0f%%   Attention span %d min\n",
			st.Progress*100, st.ComprehensionRate*100, st.AttentionSpan)
		if len(st.Strengths) > 0 {
			fmt.Printf("Strengths:  %s\n", strings.Join(st.Strengths, ", "))
		}
		if len(st.Weaknesses) > 0 {
			fmt.Printf("Weaknesses: %s\n", strings.Join(st.Weaknesses, ", "))
		}

		if len(d.summaries) == 0 {
			fmt.Println("\nNo closed sessions yet.")
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-22s  %-12s  %7s  %7s  %5s\n",
			"Ended", "Topic", "Method", "Success", "Effect", "Conc")
		fmt.Println(strings.Repeat("─", 84))

		summaries := d.summaries
		if limit > 0 && len(summaries) > limit {
			summaries = summaries[len(summaries)-limit:]
		}
		for _, sum := range summaries {
			fmt.Printf("%-19s  %-22s  %-12s  %6.0f%%  %6.0f%%  %5d\n",
				sum.EndedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(sum.Topic, 22),
				truncate(sum.Method, 12),
				sum.Metrics.SuccessScore*100,
				sum.Metrics.TeachingEffectiveness*100,
				len(sum.Interactions),
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
