package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records teaching session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mentor_id").
			NotEmpty().
			Comment("Mentor the session belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("topic").
			Default("").
			Comment("Session topic (on start only)"),
		field.String("method").
			Default("").
			Comment("Teaching method (on start only)"),
		field.JSON("concepts", []string{}).
			Optional().
			Comment("Planned concepts (on start only)"),
		field.Float("success_score").
			Default(0).
			Comment("Mean comprehension across interactions (on end only)"),
		field.Float("teaching_effectiveness").
			Default(0).
			Comment("Derived mentor effectiveness (on end only)"),
		field.Float("participation").
			Default(0).
			Comment("Student participation score (on end only)"),
		field.Int("interventions").
			Default(0).
			Comment("Times the student needed help (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mentor_id"),
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
