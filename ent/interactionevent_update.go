// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/interactionevent"
	"github.com/marqos/signmentor/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *InteractionEventUpdate) SetMentorID(v string) *InteractionEventUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableMentorID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdate) SetSessionID(v string) *InteractionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSessionID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *InteractionEventUpdate) SetConcept(v string) *InteractionEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableConcept(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *InteractionEventUpdate) SetExplanation(v string) *InteractionEventUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableExplanation(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetReaction sets the "reaction" field.
func (_u *InteractionEventUpdate) SetReaction(v string) *InteractionEventUpdate {
	_u.mutation.SetReaction(v)
	return _u
}

// SetNillableReaction sets the "reaction" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableReaction(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetReaction(*v)
	}
	return _u
}

// SetComprehension sets the "comprehension" field.
func (_u *InteractionEventUpdate) SetComprehension(v float64) *InteractionEventUpdate {
	_u.mutation.ResetComprehension()
	_u.mutation.SetComprehension(v)
	return _u
}

// SetNillableComprehension sets the "comprehension" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableComprehension(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetComprehension(*v)
	}
	return _u
}

// AddComprehension adds value to the "comprehension" field.
func (_u *InteractionEventUpdate) AddComprehension(v float64) *InteractionEventUpdate {
	_u.mutation.AddComprehension(v)
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *InteractionEventUpdate) SetEmotion(v string) *InteractionEventUpdate {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableEmotion(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// SetNeedsHelp sets the "needs_help" field.
func (_u *InteractionEventUpdate) SetNeedsHelp(v bool) *InteractionEventUpdate {
	_u.mutation.SetNeedsHelp(v)
	return _u
}

// SetNillableNeedsHelp sets the "needs_help" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableNeedsHelp(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetNeedsHelp(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := interactionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.mentor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := interactionevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Emotion(); ok {
		if err := interactionevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.emotion": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(interactionevent.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(interactionevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(interactionevent.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reaction(); ok {
		_spec.SetField(interactionevent.FieldReaction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comprehension(); ok {
		_spec.SetField(interactionevent.FieldComprehension, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComprehension(); ok {
		_spec.AddField(interactionevent.FieldComprehension, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(interactionevent.FieldEmotion, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsHelp(); ok {
		_spec.SetField(interactionevent.FieldNeedsHelp, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetMentorID sets the "mentor_id" field.
func (_u *InteractionEventUpdateOne) SetMentorID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableMentorID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdateOne) SetSessionID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSessionID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *InteractionEventUpdateOne) SetConcept(v string) *InteractionEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableConcept(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *InteractionEventUpdateOne) SetExplanation(v string) *InteractionEventUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableExplanation(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetReaction sets the "reaction" field.
func (_u *InteractionEventUpdateOne) SetReaction(v string) *InteractionEventUpdateOne {
	_u.mutation.SetReaction(v)
	return _u
}

// SetNillableReaction sets the "reaction" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableReaction(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetReaction(*v)
	}
	return _u
}

// SetComprehension sets the "comprehension" field.
func (_u *InteractionEventUpdateOne) SetComprehension(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetComprehension()
	_u.mutation.SetComprehension(v)
	return _u
}

// SetNillableComprehension sets the "comprehension" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableComprehension(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetComprehension(*v)
	}
	return _u
}

// AddComprehension adds value to the "comprehension" field.
func (_u *InteractionEventUpdateOne) AddComprehension(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddComprehension(v)
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *InteractionEventUpdateOne) SetEmotion(v string) *InteractionEventUpdateOne {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableEmotion(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// SetNeedsHelp sets the "needs_help" field.
func (_u *InteractionEventUpdateOne) SetNeedsHelp(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetNeedsHelp(v)
	return _u
}

// SetNillableNeedsHelp sets the "needs_help" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableNeedsHelp(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetNeedsHelp(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := interactionevent.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.mentor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := interactionevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Emotion(); ok {
		if err := interactionevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.emotion": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
		_spec.SetField(interactionevent.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(interactionevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(interactionevent.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reaction(); ok {
		_spec.SetField(interactionevent.FieldReaction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comprehension(); ok {
		_spec.SetField(interactionevent.FieldComprehension, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComprehension(); ok {
		_spec.AddField(interactionevent.FieldComprehension, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(interactionevent.FieldEmotion, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsHelp(); ok {
		_spec.SetField(interactionevent.FieldNeedsHelp, field.TypeBool, value)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
