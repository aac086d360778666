// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/interactionevent"
)

// InteractionEventCreate is the builder for creating a InteractionEvent entity.
type InteractionEventCreate struct {
	config
	mutation *InteractionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InteractionEventCreate) SetSequence(v int64) *InteractionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionEventCreate) SetTimestamp(v time.Time) *InteractionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableTimestamp(v *time.Time) *InteractionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *InteractionEventCreate) SetMentorID(v string) *InteractionEventCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InteractionEventCreate) SetSessionID(v string) *InteractionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *InteractionEventCreate) SetConcept(v string) *InteractionEventCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *InteractionEventCreate) SetExplanation(v string) *InteractionEventCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableExplanation(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetReaction sets the "reaction" field.
func (_c *InteractionEventCreate) SetReaction(v string) *InteractionEventCreate {
	_c.mutation.SetReaction(v)
	return _c
}

// SetNillableReaction sets the "reaction" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableReaction(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetReaction(*v)
	}
	return _c
}

// SetComprehension sets the "comprehension" field.
func (_c *InteractionEventCreate) SetComprehension(v float64) *InteractionEventCreate {
	_c.mutation.SetComprehension(v)
	return _c
}

// SetEmotion sets the "emotion" field.
func (_c *InteractionEventCreate) SetEmotion(v string) *InteractionEventCreate {
	_c.mutation.SetEmotion(v)
	return _c
}

// SetNeedsHelp sets the "needs_help" field.
func (_c *InteractionEventCreate) SetNeedsHelp(v bool) *InteractionEventCreate {
	_c.mutation.SetNeedsHelp(v)
	return _c
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_c *InteractionEventCreate) Mutation() *InteractionEventMutation {
	return _c.mutation
}

// Save creates the InteractionEvent in the database.
func (_c *InteractionEventCreate) Save(ctx context.Context) (*InteractionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionEventCreate) SaveX(ctx context.Context) *InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := interactionevent.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Reaction(); !ok {
		v := interactionevent.DefaultReaction
		_c.mutation.SetReaction(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InteractionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`ent: missing required field "InteractionEvent.mentor_id"`)}
	}
	if v, ok := _c.mutation.MentorID(); ok {
		if err := interactionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.mentor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InteractionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "InteractionEvent.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := interactionevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "InteractionEvent.explanation"`)}
	}
	if _, ok := _c.mutation.Reaction(); !ok {
		return &ValidationError{Name: "reaction", err: errors.New(`ent: missing required field "InteractionEvent.reaction"`)}
	}
	if _, ok := _c.mutation.Comprehension(); !ok {
		return &ValidationError{Name: "comprehension", err: errors.New(`ent: missing required field "InteractionEvent.comprehension"`)}
	}
	if _, ok := _c.mutation.Emotion(); !ok {
		return &ValidationError{Name: "emotion", err: errors.New(`ent: missing required field "InteractionEvent.emotion"`)}
	}
	if v, ok := _c.mutation.Emotion(); ok {
		if err := interactionevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.emotion": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsHelp(); !ok {
		return &ValidationError{Name: "needs_help", err: errors.New(`ent: missing required field "InteractionEvent.needs_help"`)}
	}
	return nil
}

func (_c *InteractionEventCreate) sqlSave(ctx context.Context) (*InteractionEvent, error) {
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

func (_c *InteractionEventCreate) createSpec() (*InteractionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(interactionevent.FieldMentorID, field.TypeString, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(interactionevent.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(interactionevent.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Reaction(); ok {
		_spec.SetField(interactionevent.FieldReaction, field.TypeString, value)
		_node.Reaction = value
	}
	if value, ok := _c.mutation.Comprehension(); ok {
		_spec.SetField(interactionevent.FieldComprehension, field.TypeFloat64, value)
		_node.Comprehension = value
	}
	if value, ok := _c.mutation.Emotion(); ok {
		_spec.SetField(interactionevent.FieldEmotion, field.TypeString, value)
		_node.Emotion = value
	}
	if value, ok := _c.mutation.NeedsHelp(); ok {
		_spec.SetField(interactionevent.FieldNeedsHelp, field.TypeBool, value)
		_node.NeedsHelp = value
	}
	return _node, _spec
}

// InteractionEventCreateBulk is the builder for creating many InteractionEvent entities in bulk.
type InteractionEventCreateBulk struct {
	config
	err      error
	builders []*InteractionEventCreate
}

// Save creates the InteractionEvent entities in the database.
func (_c *InteractionEventCreateBulk) Save(ctx context.Context) ([]*InteractionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionEventMutation)
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
func (_c *InteractionEventCreateBulk) SaveX(ctx context.Context) []*InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
