// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marqos/signmentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// MentorID applies equality check predicate on the "mentor_id" field. It's identical to MentorIDEQ.
func MentorID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMentorID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// Personality applies equality check predicate on the "personality" field. It's identical to PersonalityEQ.
func Personality(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPersonality, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStyle, v))
}

// CulturalBackground applies equality check predicate on the "cultural_background" field. It's identical to CulturalBackgroundEQ.
func CulturalBackground(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCulturalBackground, v))
}

// Adaptability applies equality check predicate on the "adaptability" field. It's identical to AdaptabilityEQ.
func Adaptability(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAdaptability, v))
}

// YearsExperience applies equality check predicate on the "years_experience" field. It's identical to YearsExperienceEQ.
func YearsExperience(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldYearsExperience, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// MentorIDEQ applies the EQ predicate on the "mentor_id" field.
func MentorIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMentorID, v))
}

// MentorIDNEQ applies the NEQ predicate on the "mentor_id" field.
func MentorIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldMentorID, v))
}

// MentorIDIn applies the In predicate on the "mentor_id" field.
func MentorIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldMentorID, vs...))
}

// MentorIDNotIn applies the NotIn predicate on the "mentor_id" field.
func MentorIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldMentorID, vs...))
}

// MentorIDGT applies the GT predicate on the "mentor_id" field.
func MentorIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldMentorID, v))
}

// MentorIDGTE applies the GTE predicate on the "mentor_id" field.
func MentorIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldMentorID, v))
}

// MentorIDLT applies the LT predicate on the "mentor_id" field.
func MentorIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldMentorID, v))
}

// MentorIDLTE applies the LTE predicate on the "mentor_id" field.
func MentorIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldMentorID, v))
}

// MentorIDContains applies the Contains predicate on the "mentor_id" field.
func MentorIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldMentorID, v))
}

// MentorIDHasPrefix applies the HasPrefix predicate on the "mentor_id" field.
func MentorIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldMentorID, v))
}

// MentorIDHasSuffix applies the HasSuffix predicate on the "mentor_id" field.
func MentorIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldMentorID, v))
}

// MentorIDEqualFold applies the EqualFold predicate on the "mentor_id" field.
func MentorIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldMentorID, v))
}

// MentorIDContainsFold applies the ContainsFold predicate on the "mentor_id" field.
func MentorIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldMentorID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// PersonalityEQ applies the EQ predicate on the "personality" field.
func PersonalityEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPersonality, v))
}

// PersonalityNEQ applies the NEQ predicate on the "personality" field.
func PersonalityNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPersonality, v))
}

// PersonalityIn applies the In predicate on the "personality" field.
func PersonalityIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldPersonality, vs...))
}

// PersonalityNotIn applies the NotIn predicate on the "personality" field.
func PersonalityNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldPersonality, vs...))
}

// PersonalityGT applies the GT predicate on the "personality" field.
func PersonalityGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldPersonality, v))
}

// PersonalityGTE applies the GTE predicate on the "personality" field.
func PersonalityGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldPersonality, v))
}

// PersonalityLT applies the LT predicate on the "personality" field.
func PersonalityLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldPersonality, v))
}

// PersonalityLTE applies the LTE predicate on the "personality" field.
func PersonalityLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldPersonality, v))
}

// PersonalityContains applies the Contains predicate on the "personality" field.
func PersonalityContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldPersonality, v))
}

// PersonalityHasPrefix applies the HasPrefix predicate on the "personality" field.
func PersonalityHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldPersonality, v))
}

// PersonalityHasSuffix applies the HasSuffix predicate on the "personality" field.
func PersonalityHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldPersonality, v))
}

// PersonalityEqualFold applies the EqualFold predicate on the "personality" field.
func PersonalityEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldPersonality, v))
}

// PersonalityContainsFold applies the ContainsFold predicate on the "personality" field.
func PersonalityContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldPersonality, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldStyle, v))
}

// CulturalBackgroundEQ applies the EQ predicate on the "cultural_background" field.
func CulturalBackgroundEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCulturalBackground, v))
}

// CulturalBackgroundNEQ applies the NEQ predicate on the "cultural_background" field.
func CulturalBackgroundNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCulturalBackground, v))
}

// CulturalBackgroundIn applies the In predicate on the "cultural_background" field.
func CulturalBackgroundIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCulturalBackground, vs...))
}

// CulturalBackgroundNotIn applies the NotIn predicate on the "cultural_background" field.
func CulturalBackgroundNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCulturalBackground, vs...))
}

// CulturalBackgroundGT applies the GT predicate on the "cultural_background" field.
func CulturalBackgroundGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCulturalBackground, v))
}

// CulturalBackgroundGTE applies the GTE predicate on the "cultural_background" field.
func CulturalBackgroundGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCulturalBackground, v))
}

// CulturalBackgroundLT applies the LT predicate on the "cultural_background" field.
func CulturalBackgroundLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCulturalBackground, v))
}

// CulturalBackgroundLTE applies the LTE predicate on the "cultural_background" field.
func CulturalBackgroundLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCulturalBackground, v))
}

// CulturalBackgroundContains applies the Contains predicate on the "cultural_background" field.
func CulturalBackgroundContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldCulturalBackground, v))
}

// CulturalBackgroundHasPrefix applies the HasPrefix predicate on the "cultural_background" field.
func CulturalBackgroundHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldCulturalBackground, v))
}

// CulturalBackgroundHasSuffix applies the HasSuffix predicate on the "cultural_background" field.
func CulturalBackgroundHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldCulturalBackground, v))
}

// CulturalBackgroundEqualFold applies the EqualFold predicate on the "cultural_background" field.
func CulturalBackgroundEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldCulturalBackground, v))
}

// CulturalBackgroundContainsFold applies the ContainsFold predicate on the "cultural_background" field.
func CulturalBackgroundContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldCulturalBackground, v))
}

// AdaptabilityEQ applies the EQ predicate on the "adaptability" field.
func AdaptabilityEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAdaptability, v))
}

// AdaptabilityNEQ applies the NEQ predicate on the "adaptability" field.
func AdaptabilityNEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAdaptability, v))
}

// AdaptabilityIn applies the In predicate on the "adaptability" field.
func AdaptabilityIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAdaptability, vs...))
}

// AdaptabilityNotIn applies the NotIn predicate on the "adaptability" field.
func AdaptabilityNotIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAdaptability, vs...))
}

// AdaptabilityGT applies the GT predicate on the "adaptability" field.
func AdaptabilityGT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAdaptability, v))
}

// AdaptabilityGTE applies the GTE predicate on the "adaptability" field.
func AdaptabilityGTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAdaptability, v))
}

// AdaptabilityLT applies the LT predicate on the "adaptability" field.
func AdaptabilityLT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAdaptability, v))
}

// AdaptabilityLTE applies the LTE predicate on the "adaptability" field.
func AdaptabilityLTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAdaptability, v))
}

// YearsExperienceEQ applies the EQ predicate on the "years_experience" field.
func YearsExperienceEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsExperienceNEQ applies the NEQ predicate on the "years_experience" field.
func YearsExperienceNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldYearsExperience, v))
}

// YearsExperienceIn applies the In predicate on the "years_experience" field.
func YearsExperienceIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldYearsExperience, vs...))
}

// YearsExperienceNotIn applies the NotIn predicate on the "years_experience" field.
func YearsExperienceNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldYearsExperience, vs...))
}

// YearsExperienceGT applies the GT predicate on the "years_experience" field.
func YearsExperienceGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldYearsExperience, v))
}

// YearsExperienceGTE applies the GTE predicate on the "years_experience" field.
func YearsExperienceGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldYearsExperience, v))
}

// YearsExperienceLT applies the LT predicate on the "years_experience" field.
func YearsExperienceLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldYearsExperience, v))
}

// YearsExperienceLTE applies the LTE predicate on the "years_experience" field.
func YearsExperienceLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldYearsExperience, v))
}

// PreferredMethodsIsNil applies the IsNil predicate on the "preferred_methods" field.
func PreferredMethodsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldPreferredMethods))
}

// PreferredMethodsNotNil applies the NotNil predicate on the "preferred_methods" field.
func PreferredMethodsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldPreferredMethods))
}

// SpecializationsIsNil applies the IsNil predicate on the "specializations" field.
func SpecializationsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSpecializations))
}

// SpecializationsNotNil applies the NotNil predicate on the "specializations" field.
func SpecializationsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSpecializations))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
