package cmd

import (
	"fmt"
	"strings"

	"github.com/marqos/signmentor/internal/compat"
	"github.com/marqos/signmentor/internal/history"
	"github.com/spf13/cobra"
)

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Show mentor/student compatibility analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadMentorData(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if d.student == nil {
			fmt.Println("No student yet. Run `signmentor teach` first.")
			return nil
		}

		analysis := compat.Analyze(d.profile, d.student, history.Harmonize(d.summaries))
		printCompat(analysis, d.student.Name)
		return nil
	},
}

func printCompat(a compat.DetailedAnalysis, studentName string) {
	sep := strings.Repeat("─", 64)

	fmt.Printf("Compatibility with %s: %s\n", studentName, compat.Describe(a.Scores.Overall))
	fmt.Printf("Confidence: %.0f%%\n", a.Confidence*100)
	fmt.Println(sep)

	fmt.Printf("%-16s  %s\n", "Personality", scoreBar(a.Scores.Personality))
	fmt.Printf("%-16s  %s\n", "Cultural", scoreBar(a.Scores.Cultural))
	fmt.Printf("%-16s  %s\n", "Teaching style", scoreBar(a.Scores.Style))
	fmt.Printf("%-16s  %s\n", "Experience", scoreBar(a.Scores.Experience))
	fmt.Printf("%-16s  %s\n", "Methodology", scoreBar(a.Scores.Methodology))

	if len(a.Strengths) > 0 {
		fmt.Println()
		fmt.Println("Strengths")
		for _, s := range a.Strengths {
			fmt.Println("  +", s)
		}
	}
	if len(a.Challenges) > 0 {
		fmt.Println()
		fmt.Println("Challenges")
		for _, c := range a.Challenges {
			fmt.Println("  -", c)
		}
	}
	if len(a.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Recommendations")
		for _, r := range a.Recommendations {
			fmt.Println("  *", r)
		}
	}

	fmt.Println()
	fmt.Printf("Improvement plan: %.2f → %.2f over %d weeks\n",
		a.Plan.CurrentScore, a.Plan.TargetScore, a.Plan.TimelineWeeks)
	for _, m := range a.Plan.Milestones {
		fmt.Printf("  week %2d  %.2f  %s\n", m.Week, m.TargetScore, m.Focus)
	}
}

// scoreBar renders a twenty-segment bar with the numeric score.
func scoreBar(v float64) string {
	filled := int(v*20 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + fmt.Sprintf("  %.2f", v)
}
