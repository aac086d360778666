// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldMentorID holds the string denoting the mentor_id field in the database.
	FieldMentorID = "mentor_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldConcepts holds the string denoting the concepts field in the database.
	FieldConcepts = "concepts"
	// FieldSuccessScore holds the string denoting the success_score field in the database.
	FieldSuccessScore = "success_score"
	// FieldTeachingEffectiveness holds the string denoting the teaching_effectiveness field in the database.
	FieldTeachingEffectiveness = "teaching_effectiveness"
	// FieldParticipation holds the string denoting the participation field in the database.
	FieldParticipation = "participation"
	// FieldInterventions holds the string denoting the interventions field in the database.
	FieldInterventions = "interventions"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldMentorID,
	FieldSessionID,
	FieldAction,
	FieldTopic,
	FieldMethod,
	FieldConcepts,
	FieldSuccessScore,
	FieldTeachingEffectiveness,
	FieldParticipation,
	FieldInterventions,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	MentorIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultMethod holds the default value on creation for the "method" field.
	DefaultMethod string
	// DefaultSuccessScore holds the default value on creation for the "success_score" field.
	DefaultSuccessScore float64
	// DefaultTeachingEffectiveness holds the default value on creation for the "teaching_effectiveness" field.
	DefaultTeachingEffectiveness float64
	// DefaultParticipation holds the default value on creation for the "participation" field.
	DefaultParticipation float64
	// DefaultInterventions holds the default value on creation for the "interventions" field.
	DefaultInterventions int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByMentorID orders the results by the mentor_id field.
func ByMentorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentorID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// BySuccessScore orders the results by the success_score field.
func BySuccessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessScore, opts...).ToFunc()
}

// ByTeachingEffectiveness orders the results by the teaching_effectiveness field.
func ByTeachingEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeachingEffectiveness, opts...).ToFunc()
}

// ByParticipation orders the results by the participation field.
func ByParticipation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipation, opts...).ToFunc()
}

// ByInterventions orders the results by the interventions field.
func ByInterventions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterventions, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
