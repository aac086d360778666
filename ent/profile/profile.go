// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMentorID holds the string denoting the mentor_id field in the database.
	FieldMentorID = "mentor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPersonality holds the string denoting the personality field in the database.
	FieldPersonality = "personality"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldCulturalBackground holds the string denoting the cultural_background field in the database.
	FieldCulturalBackground = "cultural_background"
	// FieldAdaptability holds the string denoting the adaptability field in the database.
	FieldAdaptability = "adaptability"
	// FieldYearsExperience holds the string denoting the years_experience field in the database.
	FieldYearsExperience = "years_experience"
	// FieldPreferredMethods holds the string denoting the preferred_methods field in the database.
	FieldPreferredMethods = "preferred_methods"
	// FieldSpecializations holds the string denoting the specializations field in the database.
	FieldSpecializations = "specializations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldMentorID,
	FieldName,
	FieldPersonality,
	FieldStyle,
	FieldCulturalBackground,
	FieldAdaptability,
	FieldYearsExperience,
	FieldPreferredMethods,
	FieldSpecializations,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	MentorIDValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultPersonality holds the default value on creation for the "personality" field.
	DefaultPersonality string
	// DefaultStyle holds the default value on creation for the "style" field.
	DefaultStyle string
	// DefaultCulturalBackground holds the default value on creation for the "cultural_background" field.
	DefaultCulturalBackground string
	// DefaultAdaptability holds the default value on creation for the "adaptability" field.
	DefaultAdaptability float64
	// DefaultYearsExperience holds the default value on creation for the "years_experience" field.
	DefaultYearsExperience int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMentorID orders the results by the mentor_id field.
func ByMentorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentorID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPersonality orders the results by the personality field.
func ByPersonality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonality, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByCulturalBackground orders the results by the cultural_background field.
func ByCulturalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCulturalBackground, opts...).ToFunc()
}

// ByAdaptability orders the results by the adaptability field.
func ByAdaptability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptability, opts...).ToFunc()
}

// ByYearsExperience orders the results by the years_experience field.
func ByYearsExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsExperience, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
