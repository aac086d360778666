// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marqos/signmentor/ent/interactionevent"
)

// InteractionEvent is the model entity for the InteractionEvent schema.
type InteractionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// MentorID holds the value of the "mentor_id" field.
	MentorID string `json:"mentor_id,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Sign or concept that was taught
	Concept string `json:"concept,omitempty"`
	// What the mentor typed
	Explanation string `json:"explanation,omitempty"`
	// Simulated student reaction text
	Reaction string `json:"reaction,omitempty"`
	// Comprehension score in [0,1]
	Comprehension float64 `json:"comprehension,omitempty"`
	// joy, satisfaction, concentration, confusion, or frustration
	Emotion string `json:"emotion,omitempty"`
	// Whether the student asked for help
	NeedsHelp    bool `json:"needs_help,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldNeedsHelp:
			values[i] = new(sql.NullBool)
		case interactionevent.FieldComprehension:
			values[i] = new(sql.NullFloat64)
		case interactionevent.FieldID, interactionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case interactionevent.FieldMentorID, interactionevent.FieldSessionID, interactionevent.FieldConcept, interactionevent.FieldExplanation, interactionevent.FieldReaction, interactionevent.FieldEmotion:
			values[i] = new(sql.NullString)
		case interactionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionEvent fields.
func (_m *InteractionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interactionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interactionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interactionevent.FieldMentorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mentor_id", values[i])
			} else if value.Valid {
				_m.MentorID = value.String
			}
		case interactionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interactionevent.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case interactionevent.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case interactionevent.FieldReaction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reaction", values[i])
			} else if value.Valid {
				_m.Reaction = value.String
			}
		case interactionevent.FieldComprehension:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field comprehension", values[i])
			} else if value.Valid {
				_m.Comprehension = value.Float64
			}
		case interactionevent.FieldEmotion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotion", values[i])
			} else if value.Valid {
				_m.Emotion = value.String
			}
		case interactionevent.FieldNeedsHelp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_help", values[i])
			} else if value.Valid {
				_m.NeedsHelp = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InteractionEvent.
// Note that you need to call InteractionEvent.Unwrap() before calling this method if this InteractionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionEvent) Update() *InteractionEventUpdateOne {
	return NewInteractionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionEvent) Unwrap() *InteractionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mentor_id=")
	builder.WriteString(_m.MentorID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("reaction=")
	builder.WriteString(_m.Reaction)
	builder.WriteString(", ")
	builder.WriteString("comprehension=")
	builder.WriteString(fmt.Sprintf("%v", _m.Comprehension))
	builder.WriteString(", ")
	builder.WriteString("emotion=")
	builder.WriteString(_m.Emotion)
	builder.WriteString(", ")
	builder.WriteString("needs_help=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsHelp))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionEvents is a parsable slice of InteractionEvent.
type InteractionEvents []*InteractionEvent
