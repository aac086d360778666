package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile stores a mentor's teaching profile.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("mentor_id").
			NotEmpty().
			Unique(),
		field.String("name").
			Default(""),
		field.String("personality").
			Default("").
			Comment("e.g. methodical-structured, empathetic-patient"),
		field.String("style").
			Default("adaptive").
			Comment("Teaching style: directive, collaborative, supportive, delegative, adaptive"),
		field.String("cultural_background").
			Default(""),
		field.Float("adaptability").
			Default(0.5).
			Comment("Willingness to adjust approach, in [0,1]"),
		field.Int("years_experience").
			Default(0),
		field.JSON("preferred_methods", []string{}).
			Optional(),
		field.JSON("specializations", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mentor_id"),
	}
}
