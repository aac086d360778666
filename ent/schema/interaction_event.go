package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records a single taught concept and the student's reaction.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mentor_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("concept").
			NotEmpty().
			Comment("Sign or concept that was taught"),
		field.String("explanation").
			Default("").
			Comment("What the mentor typed"),
		field.String("reaction").
			Default("").
			Comment("Simulated student reaction text"),
		field.Float("comprehension").
			Comment("Comprehension score in [0,1]"),
		field.String("emotion").
			NotEmpty().
			Comment("joy, satisfaction, concentration, confusion, or frustration"),
		field.Bool("needs_help").
			Comment("Whether the student asked for help"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mentor_id"),
		index.Fields("session_id"),
		index.Fields("concept"),
	}
}
