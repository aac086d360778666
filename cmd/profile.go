package cmd

import (
	"fmt"
	"strings"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the mentor profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the mentor profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadMentorData(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.profile
		fmt.Printf("Mentor:       %s (%s)\n", p.Name, p.ID)
		fmt.Printf("Personality:  %s\n", p.Personality)
		fmt.Printf("Style:        %s\n", p.Style)
		if p.CulturalBackground != "" {
			fmt.Printf("Culture:      %s\n", p.CulturalBackground)
		}
		fmt.Printf("Adaptability: %.2f\n", p.Adaptability)
		fmt.Printf("Experience:   %d years\n", p.YearsExperience)
		if len(p.PreferredMethods) > 0 {
			fmt.Printf("Methods:      %s\n", strings.Join(p.PreferredMethods, ", "))
		}
		if len(p.Specializations) > 0 {
			fmt.Printf("Specialties:  %s\n", strings.Join(p.Specializations, ", "))
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the mentor profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		mentorID := resolveMentorID(cmd)

		p, err := s.ProfileRepo().Get(ctx, mentorID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			def := mentor.DefaultProfile(mentorID)
			p = &def
		}

		flags := cmd.Flags()
		if v, _ := flags.GetString("name"); v != "" {
			p.Name = v
		}
		if v, _ := flags.GetString("personality"); v != "" {
			p.Personality = v
		}
		if flags.Changed("style") {
			v, _ := flags.GetString("style")
			p.Style = mentor.NormalizeStyle(v)
		}
		if v, _ := flags.GetString("culture"); v != "" {
			p.CulturalBackground = v
		}
		if flags.Changed("adaptability") {
			p.Adaptability, _ = flags.GetFloat64("adaptability")
		}
		if flags.Changed("years") {
			p.YearsExperience, _ = flags.GetInt("years")
		}
		if flags.Changed("methods") {
			p.PreferredMethods, _ = flags.GetStringSlice("methods")
		}
		if flags.Changed("specializations") {
			p.Specializations, _ = flags.GetStringSlice("specializations")
		}

		if err := s.ProfileRepo().Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Profile saved for mentor %q.\n", mentorID)
		return nil
	},
}

func init() {
	f := profileSetCmd.Flags()
	f.String("name", "", "Display name")
	f.String("personality", "", "Personality (e.g. empathetic-patient, methodical-structured)")
	f.String("style", "", "Teaching style (directive, collaborative, supportive, delegative, adaptive)")
	f.String("culture", "", "Cultural background")
	f.Float64("adaptability", 0.5, "Adaptability 0..1")
	f.Int("years", 0, "Years of teaching experience")
	f.StringSlice("methods", nil, "Preferred methods (comma separated)")
	f.StringSlice("specializations", nil, "Specializations (comma separated)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
