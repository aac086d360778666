// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/predicate"
	"github.com/marqos/signmentor/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *SessionEventUpdate) SetMentorID(v string) *SessionEventUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMentorID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdate) SetTopic(v string) *SessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopic(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *SessionEventUpdate) SetMethod(v string) *SessionEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMethod(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *SessionEventUpdate) SetConcepts(v []string) *SessionEventUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *SessionEventUpdate) AppendConcepts(v []string) *SessionEventUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *SessionEventUpdate) ClearConcepts() *SessionEventUpdate {
	_u.mutation.ClearConcepts()
	return _u
}

// SetSuccessScore sets the "success_score" field.
func (_u *SessionEventUpdate) SetSuccessScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetSuccessScore()
	_u.mutation.SetSuccessScore(v)
	return _u
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSuccessScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetSuccessScore(*v)
	}
	return _u
}

// AddSuccessScore adds value to the "success_score" field.
func (_u *SessionEventUpdate) AddSuccessScore(v float64) *SessionEventUpdate {
	_u.mutation.AddSuccessScore(v)
	return _u
}

// SetTeachingEffectiveness sets the "teaching_effectiveness" field.
func (_u *SessionEventUpdate) SetTeachingEffectiveness(v float64) *SessionEventUpdate {
	_u.mutation.ResetTeachingEffectiveness()
	_u.mutation.SetTeachingEffectiveness(v)
	return _u
}

// SetNillableTeachingEffectiveness sets the "teaching_effectiveness" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTeachingEffectiveness(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetTeachingEffectiveness(*v)
	}
	return _u
}

// AddTeachingEffectiveness adds value to the "teaching_effectiveness" field.
func (_u *SessionEventUpdate) AddTeachingEffectiveness(v float64) *SessionEventUpdate {
	_u.mutation.AddTeachingEffectiveness(v)
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *SessionEventUpdate) SetParticipation(v float64) *SessionEventUpdate {
	_u.mutation.ResetParticipation()
	_u.mutation.SetParticipation(v)
	return _u
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableParticipation(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetParticipation(*v)
	}
	return _u
}

// AddParticipation adds value to the "participation" field.
func (_u *SessionEventUpdate) AddParticipation(v float64) *SessionEventUpdate {
	_u.mutation.AddParticipation(v)
	return _u
}

// SetInterventions sets the "interventions" field.
func (_u *SessionEventUpdate) SetInterventions(v int) *SessionEventUpdate {
	_u.mutation.ResetInterventions()
	_u.mutation.SetInterventions(v)
	return _u
}

// SetNillableInterventions sets the "interventions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInterventions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetInterventions(*v)
	}
	return _u
}

// AddInterventions adds value to the "interventions" field.
func (_u *SessionEventUpdate) AddInterventions(v int) *SessionEventUpdate {
	_u.mutation.AddInterventions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := sessionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mentor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(sessionevent.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(sessionevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(sessionevent.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(sessionevent.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuccessScore(); ok {
		_spec.SetField(sessionevent.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessScore(); ok {
		_spec.AddField(sessionevent.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeachingEffectiveness(); ok {
		_spec.SetField(sessionevent.FieldTeachingEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeachingEffectiveness(); ok {
		_spec.AddField(sessionevent.FieldTeachingEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(sessionevent.FieldParticipation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParticipation(); ok {
		_spec.AddField(sessionevent.FieldParticipation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interventions(); ok {
		_spec.SetField(sessionevent.FieldInterventions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterventions(); ok {
		_spec.AddField(sessionevent.FieldInterventions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetMentorID sets the "mentor_id" field.
func (_u *SessionEventUpdateOne) SetMentorID(v string) *SessionEventUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMentorID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdateOne) SetTopic(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopic(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *SessionEventUpdateOne) SetMethod(v string) *SessionEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMethod(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *SessionEventUpdateOne) SetConcepts(v []string) *SessionEventUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *SessionEventUpdateOne) AppendConcepts(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *SessionEventUpdateOne) ClearConcepts() *SessionEventUpdateOne {
	_u.mutation.ClearConcepts()
	return _u
}

// SetSuccessScore sets the "success_score" field.
func (_u *SessionEventUpdateOne) SetSuccessScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetSuccessScore()
	_u.mutation.SetSuccessScore(v)
	return _u
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSuccessScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSuccessScore(*v)
	}
	return _u
}

// AddSuccessScore adds value to the "success_score" field.
func (_u *SessionEventUpdateOne) AddSuccessScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddSuccessScore(v)
	return _u
}

// SetTeachingEffectiveness sets the "teaching_effectiveness" field.
func (_u *SessionEventUpdateOne) SetTeachingEffectiveness(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetTeachingEffectiveness()
	_u.mutation.SetTeachingEffectiveness(v)
	return _u
}

// SetNillableTeachingEffectiveness sets the "teaching_effectiveness" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTeachingEffectiveness(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTeachingEffectiveness(*v)
	}
	return _u
}

// AddTeachingEffectiveness adds value to the "teaching_effectiveness" field.
func (_u *SessionEventUpdateOne) AddTeachingEffectiveness(v float64) *SessionEventUpdateOne {
	_u.mutation.AddTeachingEffectiveness(v)
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *SessionEventUpdateOne) SetParticipation(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetParticipation()
	_u.mutation.SetParticipation(v)
	return _u
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableParticipation(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetParticipation(*v)
	}
	return _u
}

// AddParticipation adds value to the "participation" field.
func (_u *SessionEventUpdateOne) AddParticipation(v float64) *SessionEventUpdateOne {
	_u.mutation.AddParticipation(v)
	return _u
}

// SetInterventions sets the "interventions" field.
func (_u *SessionEventUpdateOne) SetInterventions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetInterventions()
	_u.mutation.SetInterventions(v)
	return _u
}

// SetNillableInterventions sets the "interventions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInterventions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInterventions(*v)
	}
	return _u
}

// AddInterventions adds value to the "interventions" field.
func (_u *SessionEventUpdateOne) AddInterventions(v int) *SessionEventUpdateOne {
	_u.mutation.AddInterventions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := sessionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mentor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(sessionevent.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(sessionevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(sessionevent.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(sessionevent.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuccessScore(); ok {
		_spec.SetField(sessionevent.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessScore(); ok {
		_spec.AddField(sessionevent.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeachingEffectiveness(); ok {
		_spec.SetField(sessionevent.FieldTeachingEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeachingEffectiveness(); ok {
		_spec.AddField(sessionevent.FieldTeachingEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(sessionevent.FieldParticipation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParticipation(); ok {
		_spec.AddField(sessionevent.FieldParticipation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interventions(); ok {
		_spec.SetField(sessionevent.FieldInterventions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterventions(); ok {
		_spec.AddField(sessionevent.FieldInterventions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
