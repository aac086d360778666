// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "mentor_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "reaction", Type: field.TypeString, Default: ""},
		{Name: "comprehension", Type: field.TypeFloat64},
		{Name: "emotion", Type: field.TypeString},
		{Name: "needs_help", Type: field.TypeBool},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
			{
				Name:    "interactionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4]},
			},
			{
				Name:    "interactionevent_concept",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mentor_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "personality", Type: field.TypeString, Default: ""},
		{Name: "style", Type: field.TypeString, Default: "adaptive"},
		{Name: "cultural_background", Type: field.TypeString, Default: ""},
		{Name: "adaptability", Type: field.TypeFloat64, Default: 0.5},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "preferred_methods", Type: field.TypeJSON, Nullable: true},
		{Name: "specializations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "mentor_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "method", Type: field.TypeString, Default: ""},
		{Name: "concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "success_score", Type: field.TypeFloat64, Default: 0},
		{Name: "teaching_effectiveness", Type: field.TypeFloat64, Default: 0},
		{Name: "participation", Type: field.TypeFloat64, Default: 0},
		{Name: "interventions", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mentor_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionEventsTable,
		LlmRequestEventsTable,
		ProfilesTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
