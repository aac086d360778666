// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marqos/signmentor/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetMentorID sets the "mentor_id" field.
func (_c *ProfileCreate) SetMentorID(v string) *ProfileCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetPersonality sets the "personality" field.
func (_c *ProfileCreate) SetPersonality(v string) *ProfileCreate {
	_c.mutation.SetPersonality(v)
	return _c
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePersonality(v *string) *ProfileCreate {
	if v != nil {
		_c.SetPersonality(*v)
	}
	return _c
}

// SetStyle sets the "style" field.
func (_c *ProfileCreate) SetStyle(v string) *ProfileCreate {
	_c.mutation.SetStyle(v)
	return _c
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStyle(v *string) *ProfileCreate {
	if v != nil {
		_c.SetStyle(*v)
	}
	return _c
}

// SetCulturalBackground sets the "cultural_background" field.
func (_c *ProfileCreate) SetCulturalBackground(v string) *ProfileCreate {
	_c.mutation.SetCulturalBackground(v)
	return _c
}

// SetNillableCulturalBackground sets the "cultural_background" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCulturalBackground(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCulturalBackground(*v)
	}
	return _c
}

// SetAdaptability sets the "adaptability" field.
func (_c *ProfileCreate) SetAdaptability(v float64) *ProfileCreate {
	_c.mutation.SetAdaptability(v)
	return _c
}

// SetNillableAdaptability sets the "adaptability" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAdaptability(v *float64) *ProfileCreate {
	if v != nil {
		_c.SetAdaptability(*v)
	}
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *ProfileCreate) SetYearsExperience(v int) *ProfileCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableYearsExperience(v *int) *ProfileCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetPreferredMethods sets the "preferred_methods" field.
func (_c *ProfileCreate) SetPreferredMethods(v []string) *ProfileCreate {
	_c.mutation.SetPreferredMethods(v)
	return _c
}

// SetSpecializations sets the "specializations" field.
func (_c *ProfileCreate) SetSpecializations(v []string) *ProfileCreate {
	_c.mutation.SetSpecializations(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := profile.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Personality(); !ok {
		v := profile.DefaultPersonality
		_c.mutation.SetPersonality(v)
	}
	if _, ok := _c.mutation.Style(); !ok {
		v := profile.DefaultStyle
		_c.mutation.SetStyle(v)
	}
	if _, ok := _c.mutation.CulturalBackground(); !ok {
		v := profile.DefaultCulturalBackground
		_c.mutation.SetCulturalBackground(v)
	}
	if _, ok := _c.mutation.Adaptability(); !ok {
		v := profile.DefaultAdaptability
		_c.mutation.SetAdaptability(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := profile.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`ent: missing required field "Profile.mentor_id"`)}
	}
	if v, ok := _c.mutation.MentorID(); ok {
		if err := profile.MentorIDValidator(v); err != nil {
			return &ValidationError{Name: "mentor_id", err: fmt.Errorf(`ent: validator failed for field "Profile.mentor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if _, ok := _c.mutation.Personality(); !ok {
		return &ValidationError{Name: "personality", err: errors.New(`ent: missing required field "Profile.personality"`)}
	}
	if _, ok := _c.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "Profile.style"`)}
	}
	if _, ok := _c.mutation.CulturalBackground(); !ok {
		return &ValidationError{Name: "cultural_background", err: errors.New(`ent: missing required field "Profile.cultural_background"`)}
	}
	if _, ok := _c.mutation.Adaptability(); !ok {
		return &ValidationError{Name: "adaptability", err: errors.New(`ent: missing required field "Profile.adaptability"`)}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`ent: missing required field "Profile.years_experience"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(profile.FieldMentorID, field.TypeString, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Personality(); ok {
		_spec.SetField(profile.FieldPersonality, field.TypeString, value)
		_node.Personality = value
	}
	if value, ok := _c.mutation.Style(); ok {
		_spec.SetField(profile.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := _c.mutation.CulturalBackground(); ok {
		_spec.SetField(profile.FieldCulturalBackground, field.TypeString, value)
		_node.CulturalBackground = value
	}
	if value, ok := _c.mutation.Adaptability(); ok {
		_spec.SetField(profile.FieldAdaptability, field.TypeFloat64, value)
		_node.Adaptability = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(profile.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.PreferredMethods(); ok {
		_spec.SetField(profile.FieldPreferredMethods, field.TypeJSON, value)
		_node.PreferredMethods = value
	}
	if value, ok := _c.mutation.Specializations(); ok {
		_spec.SetField(profile.FieldSpecializations, field.TypeJSON, value)
		_node.Specializations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
