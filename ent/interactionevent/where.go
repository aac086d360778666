// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marqos/signmentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// MentorID applies equality check predicate on the "mentor_id" field. It's identical to MentorIDEQ.
func MentorID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldMentorID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldConcept, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldExplanation, v))
}

// Reaction applies equality check predicate on the "reaction" field. It's identical to ReactionEQ.
func Reaction(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldReaction, v))
}

// Comprehension applies equality check predicate on the "comprehension" field. It's identical to ComprehensionEQ.
func Comprehension(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldComprehension, v))
}

// Emotion applies equality check predicate on the "emotion" field. It's identical to EmotionEQ.
func Emotion(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldEmotion, v))
}

// NeedsHelp applies equality check predicate on the "needs_help" field. It's identical to NeedsHelpEQ.
func NeedsHelp(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldNeedsHelp, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// MentorIDEQ applies the EQ predicate on the "mentor_id" field.
func MentorIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldMentorID, v))
}

// MentorIDNEQ applies the NEQ predicate on the "mentor_id" field.
func MentorIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldMentorID, v))
}

// MentorIDIn applies the In predicate on the "mentor_id" field.
func MentorIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldMentorID, vs...))
}

// MentorIDNotIn applies the NotIn predicate on the "mentor_id" field.
func MentorIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldMentorID, vs...))
}

// MentorIDGT applies the GT predicate on the "mentor_id" field.
func MentorIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldMentorID, v))
}

// MentorIDGTE applies the GTE predicate on the "mentor_id" field.
func MentorIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldMentorID, v))
}

// MentorIDLT applies the LT predicate on the "mentor_id" field.
func MentorIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldMentorID, v))
}

// MentorIDLTE applies the LTE predicate on the "mentor_id" field.
func MentorIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldMentorID, v))
}

// MentorIDContains applies the Contains predicate on the "mentor_id" field.
func MentorIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldMentorID, v))
}

// MentorIDHasPrefix applies the HasPrefix predicate on the "mentor_id" field.
func MentorIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldMentorID, v))
}

// MentorIDHasSuffix applies the HasSuffix predicate on the "mentor_id" field.
func MentorIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldMentorID, v))
}

// MentorIDEqualFold applies the EqualFold predicate on the "mentor_id" field.
func MentorIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldMentorID, v))
}

// MentorIDContainsFold applies the ContainsFold predicate on the "mentor_id" field.
func MentorIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldMentorID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldConcept, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldExplanation, v))
}

// ReactionEQ applies the EQ predicate on the "reaction" field.
func ReactionEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldReaction, v))
}

// ReactionNEQ applies the NEQ predicate on the "reaction" field.
func ReactionNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldReaction, v))
}

// ReactionIn applies the In predicate on the "reaction" field.
func ReactionIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldReaction, vs...))
}

// ReactionNotIn applies the NotIn predicate on the "reaction" field.
func ReactionNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldReaction, vs...))
}

// ReactionGT applies the GT predicate on the "reaction" field.
func ReactionGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldReaction, v))
}

// ReactionGTE applies the GTE predicate on the "reaction" field.
func ReactionGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldReaction, v))
}

// ReactionLT applies the LT predicate on the "reaction" field.
func ReactionLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldReaction, v))
}

// ReactionLTE applies the LTE predicate on the "reaction" field.
func ReactionLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldReaction, v))
}

// ReactionContains applies the Contains predicate on the "reaction" field.
func ReactionContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldReaction, v))
}

// ReactionHasPrefix applies the HasPrefix predicate on the "reaction" field.
func ReactionHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldReaction, v))
}

// ReactionHasSuffix applies the HasSuffix predicate on the "reaction" field.
func ReactionHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldReaction, v))
}

// ReactionEqualFold applies the EqualFold predicate on the "reaction" field.
func ReactionEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldReaction, v))
}

// ReactionContainsFold applies the ContainsFold predicate on the "reaction" field.
func ReactionContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldReaction, v))
}

// ComprehensionEQ applies the EQ predicate on the "comprehension" field.
func ComprehensionEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldComprehension, v))
}

// ComprehensionNEQ applies the NEQ predicate on the "comprehension" field.
func ComprehensionNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldComprehension, v))
}

// ComprehensionIn applies the In predicate on the "comprehension" field.
func ComprehensionIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldComprehension, vs...))
}

// ComprehensionNotIn applies the NotIn predicate on the "comprehension" field.
func ComprehensionNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldComprehension, vs...))
}

// ComprehensionGT applies the GT predicate on the "comprehension" field.
func ComprehensionGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldComprehension, v))
}

// ComprehensionGTE applies the GTE predicate on the "comprehension" field.
func ComprehensionGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldComprehension, v))
}

// ComprehensionLT applies the LT predicate on the "comprehension" field.
func ComprehensionLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldComprehension, v))
}

// ComprehensionLTE applies the LTE predicate on the "comprehension" field.
func ComprehensionLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldComprehension, v))
}

// EmotionEQ applies the EQ predicate on the "emotion" field.
func EmotionEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldEmotion, v))
}

// EmotionNEQ applies the NEQ predicate on the "emotion" field.
func EmotionNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldEmotion, v))
}

// EmotionIn applies the In predicate on the "emotion" field.
func EmotionIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldEmotion, vs...))
}

// EmotionNotIn applies the NotIn predicate on the "emotion" field.
func EmotionNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldEmotion, vs...))
}

// EmotionGT applies the GT predicate on the "emotion" field.
func EmotionGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldEmotion, v))
}

// EmotionGTE applies the GTE predicate on the "emotion" field.
func EmotionGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldEmotion, v))
}

// EmotionLT applies the LT predicate on the "emotion" field.
func EmotionLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldEmotion, v))
}

// EmotionLTE applies the LTE predicate on the "emotion" field.
func EmotionLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldEmotion, v))
}

// EmotionContains applies the Contains predicate on the "emotion" field.
func EmotionContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldEmotion, v))
}

// EmotionHasPrefix applies the HasPrefix predicate on the "emotion" field.
func EmotionHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldEmotion, v))
}

// EmotionHasSuffix applies the HasSuffix predicate on the "emotion" field.
func EmotionHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldEmotion, v))
}

// EmotionEqualFold applies the EqualFold predicate on the "emotion" field.
func EmotionEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldEmotion, v))
}

// EmotionContainsFold applies the ContainsFold predicate on the "emotion" field.
func EmotionContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldEmotion, v))
}

// NeedsHelpEQ applies the EQ predicate on the "needs_help" field.
func NeedsHelpEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldNeedsHelp, v))
}

// NeedsHelpNEQ applies the NEQ predicate on the "needs_help" field.
func NeedsHelpNEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldNeedsHelp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.NotPredicates(p))
}
