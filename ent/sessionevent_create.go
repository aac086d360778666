// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *SessionEventCreate) SetMentorID(v string) *SessionEventCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SessionEventCreate) SetTopic(v string) *SessionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTopic(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *SessionEventCreate) SetMethod(v string) *SessionEventCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMethod(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *SessionEventCreate) SetConcepts(v []string) *SessionEventCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetSuccessScore sets the "success_score" field.
func (_c *SessionEventCreate) SetSuccessScore(v float64) *SessionEventCreate {
	_c.mutation.SetSuccessScore(v)
	return _c
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableSuccessScore(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetSuccessScore(*v)
	}
	return _c
}

// SetTeachingEffectiveness sets the "teaching_effectiveness" field.
func (_c *SessionEventCreate) SetTeachingEffectiveness(v float64) *SessionEventCreate {
	_c.mutation.SetTeachingEffectiveness(v)
	return _c
}

// SetNillableTeachingEffectiveness sets the "teaching_effectiveness" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTeachingEffectiveness(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetTeachingEffectiveness(*v)
	}
	return _c
}

// SetParticipation sets the "participation" field.
func (_c *SessionEventCreate) SetParticipation(v float64) *SessionEventCreate {
	_c.mutation.SetParticipation(v)
	return _c
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableParticipation(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetParticipation(*v)
	}
	return _c
}

// SetInterventions sets the "interventions" field.
func (_c *SessionEventCreate) SetInterventions(v int) *SessionEventCreate {
	_c.mutation.SetInterventions(v)
	return _c
}

// SetNillableInterventions sets the "interventions" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableInterventions(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetInterventions(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := sessionevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Method(); !ok {
		v := sessionevent.DefaultMethod
		_c.mutation.SetMethod(v)
	}
	if _, ok := _c.mutation.SuccessScore(); !ok {
		v := sessionevent.DefaultSuccessScore
		_c.mutation.SetSuccessScore(v)
	}
	if _, ok := _c.mutation.TeachingEffectiveness(); !ok {
		v := sessionevent.DefaultTeachingEffectiveness
		_c.mutation.SetTeachingEffectiveness(v)
	}
	if _, ok := _c.mutation.Participation(); !ok {
		v := sessionevent.DefaultParticipation
		_c.mutation.SetParticipation(v)
	}
	if _, ok := _c.mutation.Interventions(); !ok {
		v := sessionevent.DefaultInterventions
		_c.mutation.SetInterventions(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`ent: missing required field "SessionEvent.mentor_id"`)}
	}
	if v, ok := _c.mutation.MentorID(); ok {
		if err := sessionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mentor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SessionEvent.topic"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "SessionEvent.method"`)}
	}
	if _, ok := _c.mutation.SuccessScore(); !ok {
		return &ValidationError{Name: "success_score", err: errors.New(`ent: missing required field "SessionEvent.success_score"`)}
	}
	if _, ok := _c.mutation.TeachingEffectiveness(); !ok {
		return &ValidationError{Name: "teaching_effectiveness", err: errors.New(`ent: missing required field "SessionEvent.teaching_effectiveness"`)}
	}
	if _, ok := _c.mutation.Participation(); !ok {
		return &ValidationError{Name: "participation", err: errors.New(`ent: missing required field "SessionEvent.participation"`)}
	}
	if _, ok := _c.mutation.Interventions(); !ok {
		return &ValidationError{Name: "interventions", err: errors.New(`ent: missing required field "SessionEvent.interventions"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(sessionevent.FieldMentorID, field.TypeString, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(sessionevent.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(sessionevent.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.SuccessScore(); ok {
		_spec.SetField(sessionevent.FieldSuccessScore, field.TypeFloat64, value)
		_node.SuccessScore = value
	}
	if value, ok := _c.mutation.TeachingEffectiveness(); ok {
		_spec.SetField(sessionevent.FieldTeachingEffectiveness, field.TypeFloat64, value)
		_node.TeachingEffectiveness = value
	}
	if value, ok := _c.mutation.Participation(); ok {
		_spec.SetField(sessionevent.FieldParticipation, field.TypeFloat64, value)
		_node.Participation = value
	}
	if value, ok := _c.mutation.Interventions(); ok {
		_spec.SetField(sessionevent.FieldInterventions, field.TypeInt, value)
		_node.Interventions = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
