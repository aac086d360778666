// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/predicate"
	"github.com/marqos/signmentor/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *ProfileUpdate) SetMentorID(v string) *ProfileUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableMentorID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *ProfileUpdate) SetPersonality(v string) *ProfileUpdate {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePersonality(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// SetStyle sets the "style" field.
func (_u *ProfileUpdate) SetStyle(v string) *ProfileUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStyle(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetCulturalBackground sets the "cultural_background" field.
func (_u *ProfileUpdate) SetCulturalBackground(v string) *ProfileUpdate {
	_u.mutation.SetCulturalBackground(v)
	return _u
}

// SetNillableCulturalBackground sets the "cultural_background" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCulturalBackground(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCulturalBackground(*v)
	}
	return _u
}

// SetAdaptability sets the "adaptability" field.
func (_u *ProfileUpdate) SetAdaptability(v float64) *ProfileUpdate {
	_u.mutation.ResetAdaptability()
	_u.mutation.SetAdaptability(v)
	return _u
}

// SetNillableAdaptability sets the "adaptability" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAdaptability(v *float64) *ProfileUpdate {
	if v != nil {
		_u.SetAdaptability(*v)
	}
	return _u
}

// AddAdaptability adds value to the "adaptability" field.
func (_u *ProfileUpdate) AddAdaptability(v float64) *ProfileUpdate {
	_u.mutation.AddAdaptability(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *ProfileUpdate) SetYearsExperience(v int) *ProfileUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableYearsExperience(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *ProfileUpdate) AddYearsExperience(v int) *ProfileUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetPreferredMethods sets the "preferred_methods" field.
func (_u *ProfileUpdate) SetPreferredMethods(v []string) *ProfileUpdate {
	_u.mutation.SetPreferredMethods(v)
	return _u
}

// AppendPreferredMethods appends value to the "preferred_methods" field.
func (_u *ProfileUpdate) AppendPreferredMethods(v []string) *ProfileUpdate {
	_u.mutation.AppendPreferredMethods(v)
	return _u
}

// ClearPreferredMethods clears the value of the "preferred_methods" field.
func (_u *ProfileUpdate) ClearPreferredMethods() *ProfileUpdate {
	_u.mutation.ClearPreferredMethods()
	return _u
}

// SetSpecializations sets the "specializations" field.
func (_u *ProfileUpdate) SetSpecializations(v []string) *ProfileUpdate {
	_u.mutation.SetSpecializations(v)
	return _u
}

// AppendSpecializations appends value to the "specializations" field.
func (_u *ProfileUpdate) AppendSpecializations(v []string) *ProfileUpdate {
	_u.mutation.AppendSpecializations(v)
	return _u
}

// ClearSpecializations clears the value of the "specializations" field.
func (_u *ProfileUpdate) ClearSpecializations() *ProfileUpdate {
	_u.mutation.ClearSpecializations()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := profile.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "Profile.mentor_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(profile.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(profile.FieldPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(profile.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalBackground(); ok {
		_spec.SetField(profile.FieldCulturalBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptability(); ok {
		_spec.SetField(profile.FieldAdaptability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdaptability(); ok {
		_spec.AddField(profile.FieldAdaptability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(profile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(profile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredMethods(); ok {
		_spec.SetField(profile.FieldPreferredMethods, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredMethods(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldPreferredMethods, value)
		})
	}
	if _u.mutation.PreferredMethodsCleared() {
		_spec.ClearField(profile.FieldPreferredMethods, field.TypeJSON)
	}
	if value, ok := _u.mutation.Specializations(); ok {
		_spec.SetField(profile.FieldSpecializations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecializations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSpecializations, value)
		})
	}
	if _u.mutation.SpecializationsCleared() {
		_spec.ClearField(profile.FieldSpecializations, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetMentorID sets the "mentor_id" field.
func (_u *ProfileUpdateOne) SetMentorID(v string) *ProfileUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableMentorID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *ProfileUpdateOne) SetPersonality(v string) *ProfileUpdateOne {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePersonality(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// SetStyle sets the "style" field.
func (_u *ProfileUpdateOne) SetStyle(v string) *ProfileUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStyle(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetCulturalBackground sets the "cultural_background" field.
func (_u *ProfileUpdateOne) SetCulturalBackground(v string) *ProfileUpdateOne {
	_u.mutation.SetCulturalBackground(v)
	return _u
}

// SetNillableCulturalBackground sets the "cultural_background" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCulturalBackground(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCulturalBackground(*v)
	}
	return _u
}

// SetAdaptability sets the "adaptability" field.
func (_u *ProfileUpdateOne) SetAdaptability(v float64) *ProfileUpdateOne {
	_u.mutation.ResetAdaptability()
	_u.mutation.SetAdaptability(v)
	return _u
}

// SetNillableAdaptability sets the "adaptability" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAdaptability(v *float64) *ProfileUpdateOne {
	if v != nil {
		_u.SetAdaptability(*v)
	}
	return _u
}

// AddAdaptability adds value to the "adaptability" field.
func (_u *ProfileUpdateOne) AddAdaptability(v float64) *ProfileUpdateOne {
	_u.mutation.AddAdaptability(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *ProfileUpdateOne) SetYearsExperience(v int) *ProfileUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableYearsExperience(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *ProfileUpdateOne) AddYearsExperience(v int) *ProfileUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetPreferredMethods sets the "preferred_methods" field.
func (_u *ProfileUpdateOne) SetPreferredMethods(v []string) *ProfileUpdateOne {
	_u.mutation.SetPreferredMethods(v)
	return _u
}

// AppendPreferredMethods appends value to the "preferred_methods" field.
func (_u *ProfileUpdateOne) AppendPreferredMethods(v []string) *ProfileUpdateOne {
	_u.mutation.AppendPreferredMethods(v)
	return _u
}

// ClearPreferredMethods clears the value of the "preferred_methods" field.
func (_u *ProfileUpdateOne) ClearPreferredMethods() *ProfileUpdateOne {
	_u.mutation.ClearPreferredMethods()
	return _u
}

// SetSpecializations sets the "specializations" field.
func (_u *ProfileUpdateOne) SetSpecializations(v []string) *ProfileUpdateOne {
	_u.mutation.SetSpecializations(v)
	return _u
}

// AppendSpecializations appends value to the "specializations" field.
func (_u *ProfileUpdateOne) AppendSpecializations(v []string) *ProfileUpdateOne {
	_u.mutation.AppendSpecializations(v)
	return _u
}

// ClearSpecializations clears the value of the "specializations" field.
func (_u *ProfileUpdateOne) ClearSpecializations() *ProfileUpdateOne {
	_u.mutation.ClearSpecializations()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.MentorID(); ok {
		if err := profile.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "Profile.mentor_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
		_spec.SetField(profile.FieldMentorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(profile.FieldPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(profile.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalBackground(); ok {
		_spec.SetField(profile.FieldCulturalBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptability(); ok {
		_spec.SetField(profile.FieldAdaptability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdaptability(); ok {
		_spec.AddField(profile.FieldAdaptability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(profile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(profile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredMethods(); ok {
		_spec.SetField(profile.FieldPreferredMethods, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredMethods(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldPreferredMethods, value)
		})
	}
	if _u.mutation.PreferredMethodsCleared() {
		_spec.ClearField(profile.FieldPreferredMethods, field.TypeJSON)
	}
	if value, ok := _u.mutation.Specializations(); ok {
		_spec.SetField(profile.FieldSpecializations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecializations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSpecializations, value)
		})
	}
	if _u.mutation.SpecializationsCleared() {
		_spec.ClearField(profile.FieldSpecializations, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
