// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marqos/signmentor/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MentorID holds the value of the "mentor_id" field.
	MentorID string `json:"mentor_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// e.g. methodical-structured, empathetic-patient
	Personality string `json:"personality,omitempty"`
	// Teaching style: directive, collaborative, supportive, delegative, adaptive
	Style string `json:"style,omitempty"`
	// CulturalBackground holds the value of the "cultural_background" field.
	CulturalBackground string `json:"cultural_background,omitempty"`
	// Willingness to adjust approach, in [0,1]
	Adaptability float64 `json:"adaptability,omitempty"`
	// YearsExperience holds the value of the "years_experience" field.
	YearsExperience int `json:"years_experience,omitempty"`
	// PreferredMethods holds the value of the "preferred_methods" field.
	PreferredMethods []string `json:"preferred_methods,omitempty"`
	// Specializations holds the value of the "specializations" field.
	Specializations []string `json:"specializations,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldPreferredMethods, profile.FieldSpecializations:
			values[i] = new([]byte)
		case profile.FieldAdaptability:
			values[i] = new(sql.NullFloat64)
		case profile.FieldID, profile.FieldYearsExperience:
			values[i] = new(sql.NullInt64)
		case profile.FieldMentorID, profile.FieldName, profile.FieldPersonality, profile.FieldStyle, profile.FieldCulturalBackground:
			values[i] = new(sql.NullString)
		case profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profile.FieldMentorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mentor_id", values[i])
			} else if value.Valid {
				_m.MentorID = value.String
			}
		case profile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case profile.FieldPersonality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personality", values[i])
			} else if value.Valid {
				_m.Personality = value.String
			}
		case profile.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				_m.Style = value.String
			}
		case profile.FieldCulturalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cultural_background", values[i])
			} else if value.Valid {
				_m.CulturalBackground = value.String
			}
		case profile.FieldAdaptability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field adaptability", values[i])
			} else if value.Valid {
				_m.Adaptability = value.Float64
			}
		case profile.FieldYearsExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_experience", values[i])
			} else if value.Valid {
				_m.YearsExperience = int(value.Int64)
			}
		case profile.FieldPreferredMethods:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_methods", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredMethods); err != nil {
					return fmt.Errorf("unmarshal field preferred_methods: %w", err)
				}
			}
		case profile.FieldSpecializations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specializations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specializations); err != nil {
					return fmt.Errorf("unmarshal field specializations: %w", err)
				}
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mentor_id=")
	builder.WriteString(_m.MentorID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("personality=")
	builder.WriteString(_m.Personality)
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(_m.Style)
	builder.WriteString(", ")
	builder.WriteString("cultural_background=")
	builder.WriteString(_m.CulturalBackground)
	builder.WriteString(", ")
	builder.WriteString("adaptability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adaptability))
	builder.WriteString(", ")
	builder.WriteString("years_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsExperience))
	builder.WriteString(", ")
	builder.WriteString("preferred_methods=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredMethods))
	builder.WriteString(", ")
	builder.WriteString("specializations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specializations))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
