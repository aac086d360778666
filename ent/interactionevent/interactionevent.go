// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interactionevent type in the database.
	Label = "interaction_event"
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
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldReaction holds the string denoting the reaction field in the database.
	FieldReaction = "reaction"
	// FieldComprehension holds the string denoting the comprehension field in the database.
	FieldComprehension = "comprehension"
	// FieldEmotion holds the string denoting the emotion field in the database.
	FieldEmotion = "emotion"
	// FieldNeedsHelp holds the string denoting the needs_help field in the database.
	FieldNeedsHelp = "needs_help"
	// Table holds the table name of the interactionevent in the database.
	Table = "interaction_events"
)

// Columns holds all SQL columns for interactionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldMentorID,
	FieldSessionID,
	FieldConcept,
	FieldExplanation,
	FieldReaction,
	FieldComprehension,
	FieldEmotion,
	FieldNeedsHelp,
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
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultReaction holds the default value on creation for the "reaction" field.
	DefaultReaction string
	// EmotionValidator is a validator for the "emotion" field. It is called by the builders before save.
	EmotionValidator func(string) error
)

// OrderOption defines the ordering options for the InteractionEvent queries.
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

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByReaction orders the results by the reaction field.
func ByReaction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReaction, opts...).ToFunc()
}

// ByComprehension orders the results by the comprehension field.
func ByComprehension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComprehension, opts...).ToFunc()
}

// ByEmotion orders the results by the emotion field.
func ByEmotion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotion, opts...).ToFunc()
}

// ByNeedsHelp orders the results by the needs_help field.
func ByNeedsHelp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsHelp, opts...).ToFunc()
}
