// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
)

// FieldOverrideCreate is the builder for creating a FieldOverride entity.
type FieldOverrideCreate struct {
	config
	mutation *FieldOverrideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBoxID sets the "box_id" field.
func (_c *FieldOverrideCreate) SetBoxID(v uuid.UUID) *FieldOverrideCreate {
	_c.mutation.SetBoxID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *FieldOverrideCreate) SetFieldName(v string) *FieldOverrideCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FieldOverrideCreate) SetValue(v string) *FieldOverrideCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldOverrideCreate) SetCreatedAt(v time.Time) *FieldOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldOverrideCreate) SetNillableCreatedAt(v *time.Time) *FieldOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldOverrideCreate) SetUpdatedAt(v time.Time) *FieldOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldOverrideCreate) SetNillableUpdatedAt(v *time.Time) *FieldOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldOverrideCreate) SetID(v uuid.UUID) *FieldOverrideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldOverrideCreate) SetNillableID(v *uuid.UUID) *FieldOverrideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FieldOverrideMutation object of the builder.
func (_c *FieldOverrideCreate) Mutation() *FieldOverrideMutation {
	return _c.mutation
}

// Save creates the FieldOverride in the database.
func (_c *FieldOverrideCreate) Save(ctx context.Context) (*FieldOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldOverrideCreate) SaveX(ctx context.Context) *FieldOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldOverrideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldoverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fieldoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldoverride.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldOverrideCreate) check() error {
	if _, ok := _c.mutation.BoxID(); !ok {
		return &ValidationError{Name: "box_id", err: errors.New(`ent: missing required field "FieldOverride.box_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "FieldOverride.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := fieldoverride.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldOverride.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "FieldOverride.value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FieldOverride.updated_at"`)}
	}
	return nil
}

func (_c *FieldOverrideCreate) sqlSave(ctx context.Context) (*FieldOverride, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldOverrideCreate) createSpec() (*FieldOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldoverride.Table, sqlgraph.NewFieldSpec(fieldoverride.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BoxID(); ok {
		_spec.SetField(fieldoverride.FieldBoxID, field.TypeUUID, value)
		_node.BoxID = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(fieldoverride.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(fieldoverride.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FieldOverride.Create().
//		SetBoxID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FieldOverrideUpsert) {
//			SetBoxID(v+v).
//		}).
//		Exec(ctx)
func (_c *FieldOverrideCreate) OnConflict(opts ...sql.ConflictOption) *FieldOverrideUpsertOne {
	_c.conflict = opts
	return &FieldOverrideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FieldOverrideCreate) OnConflictColumns(columns ...string) *FieldOverrideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FieldOverrideUpsertOne{
		create: _c,
	}
}

type (
	// FieldOverrideUpsertOne is the builder for "upsert"-ing
	//  one FieldOverride node.
	FieldOverrideUpsertOne struct {
		create *FieldOverrideCreate
	}

	// FieldOverrideUpsert is the "OnConflict" setter.
	FieldOverrideUpsert struct {
		*sql.UpdateSet
	}
)

// SetBoxID sets the "box_id" field.
func (u *FieldOverrideUpsert) SetBoxID(v uuid.UUID) *FieldOverrideUpsert {
	u.Set(fieldoverride.FieldBoxID, v)
	return u
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *FieldOverrideUpsert) UpdateBoxID() *FieldOverrideUpsert {
	u.SetExcluded(fieldoverride.FieldBoxID)
	return u
}

// SetFieldName sets the "field_name" field.
func (u *FieldOverrideUpsert) SetFieldName(v string) *FieldOverrideUpsert {
	u.Set(fieldoverride.FieldFieldName, v)
	return u
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *FieldOverrideUpsert) UpdateFieldName() *FieldOverrideUpsert {
	u.SetExcluded(fieldoverride.FieldFieldName)
	return u
}

// SetValue sets the "value" field.
func (u *FieldOverrideUpsert) SetValue(v string) *FieldOverrideUpsert {
	u.Set(fieldoverride.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FieldOverrideUpsert) UpdateValue() *FieldOverrideUpsert {
	u.SetExcluded(fieldoverride.FieldValue)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *FieldOverrideUpsert) SetCreatedAt(v time.Time) *FieldOverrideUpsert {
	u.Set(fieldoverride.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FieldOverrideUpsert) UpdateCreatedAt() *FieldOverrideUpsert {
	u.SetExcluded(fieldoverride.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FieldOverrideUpsert) SetUpdatedAt(v time.Time) *FieldOverrideUpsert {
	u.Set(fieldoverride.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FieldOverrideUpsert) UpdateUpdatedAt() *FieldOverrideUpsert {
	u.SetExcluded(fieldoverride.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fieldoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FieldOverrideUpsertOne) UpdateNewValues() *FieldOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fieldoverride.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FieldOverrideUpsertOne) Ignore() *FieldOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FieldOverrideUpsertOne) DoNothing() *FieldOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FieldOverrideCreate.OnConflict
// documentation for more info.
func (u *FieldOverrideUpsertOne) Update(set func(*FieldOverrideUpsert)) *FieldOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FieldOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetBoxID sets the "box_id" field.
func (u *FieldOverrideUpsertOne) SetBoxID(v uuid.UUID) *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetBoxID(v)
	})
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *FieldOverrideUpsertOne) UpdateBoxID() *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateBoxID()
	})
}

// SetFieldName sets the "field_name" field.
func (u *FieldOverrideUpsertOne) SetFieldName(v string) *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *FieldOverrideUpsertOne) UpdateFieldName() *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateFieldName()
	})
}

// SetValue sets the "value" field.
func (u *FieldOverrideUpsertOne) SetValue(v string) *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FieldOverrideUpsertOne) UpdateValue() *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateValue()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FieldOverrideUpsertOne) SetCreatedAt(v time.Time) *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FieldOverrideUpsertOne) UpdateCreatedAt() *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FieldOverrideUpsertOne) SetUpdatedAt(v time.Time) *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FieldOverrideUpsertOne) UpdateUpdatedAt() *FieldOverrideUpsertOne {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FieldOverrideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FieldOverrideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FieldOverrideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FieldOverrideUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FieldOverrideUpsertOne.ID is not supported by MySQL driver. Use FieldOverrideUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FieldOverrideUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FieldOverrideCreateBulk is the builder for creating many FieldOverride entities in bulk.
type FieldOverrideCreateBulk struct {
	config
	err      error
	builders []*FieldOverrideCreate
	conflict []sql.ConflictOption
}

// Save creates the FieldOverride entities in the database.
func (_c *FieldOverrideCreateBulk) Save(ctx context.Context) ([]*FieldOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldOverrideMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *FieldOverrideCreateBulk) SaveX(ctx context.Context) []*FieldOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FieldOverride.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FieldOverrideUpsert) {
//			SetBoxID(v+v).
//		}).
//		Exec(ctx)
func (_c *FieldOverrideCreateBulk) OnConflict(opts ...sql.ConflictOption) *FieldOverrideUpsertBulk {
	_c.conflict = opts
	return &FieldOverrideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FieldOverrideCreateBulk) OnConflictColumns(columns ...string) *FieldOverrideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FieldOverrideUpsertBulk{
		create: _c,
	}
}

// FieldOverrideUpsertBulk is the builder for "upsert"-ing
// a bulk of FieldOverride nodes.
type FieldOverrideUpsertBulk struct {
	create *FieldOverrideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fieldoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FieldOverrideUpsertBulk) UpdateNewValues() *FieldOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fieldoverride.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FieldOverride.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FieldOverrideUpsertBulk) Ignore() *FieldOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FieldOverrideUpsertBulk) DoNothing() *FieldOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FieldOverrideCreateBulk.OnConflict
// documentation for more info.
func (u *FieldOverrideUpsertBulk) Update(set func(*FieldOverrideUpsert)) *FieldOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FieldOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetBoxID sets the "box_id" field.
func (u *FieldOverrideUpsertBulk) SetBoxID(v uuid.UUID) *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetBoxID(v)
	})
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *FieldOverrideUpsertBulk) UpdateBoxID() *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateBoxID()
	})
}

// SetFieldName sets the "field_name" field.
func (u *FieldOverrideUpsertBulk) SetFieldName(v string) *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *FieldOverrideUpsertBulk) UpdateFieldName() *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateFieldName()
	})
}

// SetValue sets the "value" field.
func (u *FieldOverrideUpsertBulk) SetValue(v string) *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FieldOverrideUpsertBulk) UpdateValue() *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateValue()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FieldOverrideUpsertBulk) SetCreatedAt(v time.Time) *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FieldOverrideUpsertBulk) UpdateCreatedAt() *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FieldOverrideUpsertBulk) SetUpdatedAt(v time.Time) *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FieldOverrideUpsertBulk) UpdateUpdatedAt() *FieldOverrideUpsertBulk {
	return u.Update(func(s *FieldOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FieldOverrideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FieldOverrideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FieldOverrideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FieldOverrideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
