package cmd

import (
	"fmt"
	"strings"

	"github.com/marqos/signmentor/internal/compat"
	"github.com/marqos/signmentor/internal/evaluator"
	"github.com/marqos/signmentor/internal/insights"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show consolidated learning insights",
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

		svc := insights.NewService(evaluator.New())
		bundle, err := svc.GenerateInsights(cmd.Context(), d.profile, d.student, d.summaries)
		if err != nil {
			return fmt.Errorf("generate insights: %w", err)
		}

		printInsights(bundle)
		return nil
	},
}

func printInsights(b *insights.Bundle) {
	sep := strings.Repeat("─", 64)

	fmt.Printf("Insights for %s's progress (confidence %.0f%%)\n", b.StudentName, b.Confidence*100)
	fmt.Println(sep)

	fmt.Printf("Estimated level:  %s (global score %.2f over %d sessions)\n",
		b.Evaluation.EstimatedLevel, b.Evaluation.GlobalScore, b.Evaluation.SessionCount)
	for name, score := range b.Evaluation.Competencies {
		fmt.Printf("  %-12s %.2f\n", name, score)
	}

	fmt.Println()
	fmt.Println("Session metrics")
	fmt.Printf("  Engagement      %.2f (%s)\n", b.Metrics.OverallEngagement, b.Metrics.EngagementTrend)
	fmt.Printf("  Efficiency      %.2f\n", b.Metrics.LearningEfficiency)
	fmt.Printf("  Stability       %.2f\n", b.Metrics.EmotionalStability)
	fmt.Printf("  Consistency     %.2f\n", b.Metrics.ProgressConsistency)
	if len(b.Metrics.StrengthAreas) > 0 {
		fmt.Printf("  Strengths:      %s\n", strings.Join(b.Metrics.StrengthAreas, ", "))
	}
	if len(b.Metrics.ErrorPatterns) > 0 {
		fmt.Printf("  Error patterns: %s\n", strings.Join(b.Metrics.ErrorPatterns, ", "))
	}

	fmt.Println()
	fmt.Println("Forecast")
	if b.Projection.Degraded {
		fmt.Println("  Too little history for a projection yet.")
	} else {
		fmt.Printf("  Next level probability  %.0f%%\n", b.Projection.NextLevelProbability*100)
		fmt.Printf("  Plateau risk            %.0f%%\n", b.Projection.PlateauRisk*100)
		fmt.Printf("  Estimated weeks         %d\n", b.Projection.EstimatedWeeksToNextLevel)
	}
	fmt.Printf("  Optimal pace            %.1f sessions/week\n", b.Projection.OptimalSessionsPerWeek)

	fmt.Println()
	fmt.Printf("Compatibility: %s\n", compat.Describe(b.Compatibility.Scores.Overall))

	if len(b.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Recommendations")
		for _, r := range b.Recommendations {
			fmt.Println("  *", r)
		}
	}
}
