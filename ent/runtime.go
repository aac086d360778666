// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/marqos/signmentor/ent/interactionevent"
	"github.com/marqos/signmentor/ent/llmrequestevent"
	"github.com/marqos/signmentor/ent/profile"
	"github.com/marqos/signmentor/ent/schema"
	"github.com/marqos/signmentor/ent/sessionevent"
	"github.com/marqos/signmentor/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescMentorID is the schema descriptor for mentor_id field.
	interactioneventDescMentorID := interactioneventFields[0].Descriptor()
	// interactionevent.MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	interactionevent.MentorIDValidator = interactioneventDescMentorID.Validators[0].(func(string) error)
	// interactioneventDescSessionID is the schema descriptor for session_id field.
	interactioneventDescSessionID := interactioneventFields[1].Descriptor()
	// interactionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interactionevent.SessionIDValidator = interactioneventDescSessionID.Validators[0].(func(string) error)
	// interactioneventDescConcept is the schema descriptor for concept field.
	interactioneventDescConcept := interactioneventFields[2].Descriptor()
	// interactionevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	interactionevent.ConceptValidator = interactioneventDescConcept.Validators[0].(func(string) error)
	// interactioneventDescExplanation is the schema descriptor for explanation field.
	interactioneventDescExplanation := interactioneventFields[3].Descriptor()
	// interactionevent.DefaultExplanation holds the default value on creation for the explanation field.
	interactionevent.DefaultExplanation = interactioneventDescExplanation.Default.(string)
	// interactioneventDescReaction is the schema descriptor for reaction field.
	interactioneventDescReaction := interactioneventFields[4].Descriptor()
	// interactionevent.DefaultReaction holds the default value on creation for the reaction field.
	interactionevent.DefaultReaction = interactioneventDescReaction.Default.(string)
	// interactioneventDescEmotion is the schema descriptor for emotion field.
	interactioneventDescEmotion := interactioneventFields[6].Descriptor()
	// interactionevent.EmotionValidator is a validator for the "emotion" field. It is called by the builders before save.
	interactionevent.EmotionValidator = interactioneventDescEmotion.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescMentorID is the schema descriptor for mentor_id field.
	profileDescMentorID := profileFields[0].Descriptor()
	// profile.MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	profile.MentorIDValidator = profileDescMentorID.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.DefaultName holds the default value on creation for the name field.
	profile.DefaultName = profileDescName.Default.(string)
	// profileDescPersonality is the schema descriptor for personality field.
	profileDescPersonality := profileFields[2].Descriptor()
	// profile.DefaultPersonality holds the default value on creation for the personality field.
	profile.DefaultPersonality = profileDescPersonality.Default.(string)
	// profileDescStyle is the schema descriptor for style field.
	profileDescStyle := profileFields[3].Descriptor()
	// profile.DefaultStyle holds the default value on creation for the style field.
	profile.DefaultStyle = profileDescStyle.Default.(string)
	// profileDescCulturalBackground is the schema descriptor for cultural_background field.
	profileDescCulturalBackground := profileFields[4].Descriptor()
	// profile.DefaultCulturalBackground holds the default value on creation for the cultural_background field.
	profile.DefaultCulturalBackground = profileDescCulturalBackground.Default.(string)
	// profileDescAdaptability is the schema descriptor for adaptability field.
	profileDescAdaptability := profileFields[5].Descriptor()
	// profile.DefaultAdaptability holds the default value on creation for the adaptability field.
	profile.DefaultAdaptability = profileDescAdaptability.Default.(float64)
	// profileDescYearsExperience is the schema descriptor for years_experience field.
	profileDescYearsExperience := profileFields[6].Descriptor()
	// profile.DefaultYearsExperience holds the default value on creation for the years_experience field.
	profile.DefaultYearsExperience = profileDescYearsExperience.Default.(int)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[9].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[10].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescMentorID is the schema descriptor for mentor_id field.
	sessioneventDescMentorID := sessioneventFields[0].Descriptor()
	// sessionevent.MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	sessionevent.MentorIDValidator = sessioneventDescMentorID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTopic holds the default value on creation for the topic field.
	sessionevent.DefaultTopic = sessioneventDescTopic.Default.(string)
	// sessioneventDescMethod is the schema descriptor for method field.
	sessioneventDescMethod := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultMethod holds the default value on creation for the method field.
	sessionevent.DefaultMethod = sessioneventDescMethod.Default.(string)
	// sessioneventDescSuccessScore is the schema descriptor for success_score field.
	sessioneventDescSuccessScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSuccessScore holds the default value on creation for the success_score field.
	sessionevent.DefaultSuccessScore = sessioneventDescSuccessScore.Default.(float64)
	// sessioneventDescTeachingEffectiveness is the schema descriptor for teaching_effectiveness field.
	sessioneventDescTeachingEffectiveness := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTeachingEffectiveness holds the default value on creation for the teaching_effectiveness field.
	sessionevent.DefaultTeachingEffectiveness = sessioneventDescTeachingEffectiveness.Default.(float64)
	// sessioneventDescParticipation is the schema descriptor for participation field.
	sessioneventDescParticipation := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultParticipation holds the default value on creation for the participation field.
	sessionevent.DefaultParticipation = sessioneventDescParticipation.Default.(float64)
	// sessioneventDescInterventions is the schema descriptor for interventions field.
	sessioneventDescInterventions := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultInterventions holds the default value on creation for the interventions field.
	sessionevent.DefaultInterventions = sessioneventDescInterventions.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescMentorID is the schema descriptor for mentor_id field.
	snapshotDescMentorID := snapshotFields[0].Descriptor()
	// snapshot.MentorIDValidator is a validator for the "mentor_id" field. It is called by the builders before save.
	snapshot.MentorIDValidator = snapshotDescMentorID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
