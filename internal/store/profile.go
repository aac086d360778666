package store

import (
	"context"
	"fmt"

	"github.com/marqos/signmentor/ent"
	"github.com/marqos/signmentor/ent/profile"
	"github.com/marqos/signmentor/internal/mentor"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *mentor.Profile) error {
	existing, err := r.client.Profile.Query().
		Where(profile.MentorID(p.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing == nil {
		err = r.client.Profile.Create().
			SetMentorID(p.ID).
			SetName(p.Name).
			SetPersonality(p.Personality).
			SetStyle(string(p.Style)).
			SetCulturalBackground(p.CulturalBackground).
			SetAdaptability(p.Adaptability).
			SetYearsExperience(p.YearsExperience).
			SetPreferredMethods(p.PreferredMethods).
			SetSpecializations(p.Specializations).
			Exec(ctx)
	} else {
		err = r.client.Profile.UpdateOne(existing).
			SetName(p.Name).
			SetPersonality(p.Personality).
			SetStyle(string(p.Style)).
			SetCulturalBackground(p.CulturalBackground).
			SetAdaptability(p.Adaptability).
			SetYearsExperience(p.YearsExperience).
			SetPreferredMethods(p.PreferredMethods).
			SetSpecializations(p.Specializations).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context, mentorID string) (*mentor.Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.MentorID(mentorID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &mentor.Profile{
		ID:                 p.MentorID,
		Name:               p.Name,
		Personality:        p.Personality,
		Style:              mentor.NormalizeStyle(p.Style),
		CulturalBackground: p.CulturalBackground,
		Adaptability:       p.Adaptability,
		YearsExperience:    p.YearsExperience,
		PreferredMethods:   p.PreferredMethods,
		Specializations:    p.Specializations,
	}, nil
}
