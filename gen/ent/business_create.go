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
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
)

// BusinessCreate is the builder for creating a Business entity.
type BusinessCreate struct {
	config
	mutation *BusinessMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *BusinessCreate) SetName(v string) *BusinessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTaxID sets the "tax_id" field.
func (_c *BusinessCreate) SetTaxID(v string) *BusinessCreate {
	_c.mutation.SetTaxID(v)
	return _c
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableTaxID(v *string) *BusinessCreate {
	if v != nil {
		_c.SetTaxID(*v)
	}
	return _c
}

// SetDefaultCurrency sets the "default_currency" field.
func (_c *BusinessCreate) SetDefaultCurrency(v string) *BusinessCreate {
	_c.mutation.SetDefaultCurrency(v)
	return _c
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableDefaultCurrency(v *string) *BusinessCreate {
	if v != nil {
		_c.SetDefaultCurrency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessCreate) SetCreatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCreatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessCreate) SetUpdatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableUpdatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessCreate) SetID(v uuid.UUID) *BusinessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableID(v *uuid.UUID) *BusinessCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBoxIDs adds the "boxes" edge to the Box entity by IDs.
func (_c *BusinessCreate) AddBoxIDs(ids ...uuid.UUID) *BusinessCreate {
	_c.mutation.AddBoxIDs(ids...)
	return _c
}

// AddBoxes adds the "boxes" edges to the Box entity.
func (_c *BusinessCreate) AddBoxes(v ...*Box) *BusinessCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBoxIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_c *BusinessCreate) Mutation() *BusinessMutation {
	return _c.mutation
}

// Save creates the Business in the database.
func (_c *BusinessCreate) Save(ctx context.Context) (*Business, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessCreate) SaveX(ctx context.Context) *Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessCreate) defaults() {
	if _, ok := _c.mutation.DefaultCurrency(); !ok {
		v := business.DefaultDefaultCurrency
		_c.mutation.SetDefaultCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := business.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := business.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := business.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Business.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultCurrency(); !ok {
		return &ValidationError{Name: "default_currency", err: errors.New(`ent: missing required field "Business.default_currency"`)}
	}
	if v, ok := _c.mutation.DefaultCurrency(); ok {
		if err := business.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Business.default_currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Business.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Business.updated_at"`)}
	}
	return nil
}

func (_c *BusinessCreate) sqlSave(ctx context.Context) (*Business, error) {
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

func (_c *BusinessCreate) createSpec() (*Business, *sqlgraph.CreateSpec) {
	var (
		_node = &Business{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(business.Table, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TaxID(); ok {
		_spec.SetField(business.FieldTaxID, field.TypeString, value)
		_node.TaxID = value
	}
	if value, ok := _c.mutation.DefaultCurrency(); ok {
		_spec.SetField(business.FieldDefaultCurrency, field.TypeString, value)
		_node.DefaultCurrency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BoxesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.BoxesTable,
			Columns: []string{business.BoxesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Business.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessCreate) OnConflict(opts ...sql.ConflictOption) *BusinessUpsertOne {
	_c.conflict = opts
	return &BusinessUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessCreate) OnConflictColumns(columns ...string) *BusinessUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessUpsertOne{
		create: _c,
	}
}

type (
	// BusinessUpsertOne is the builder for "upsert"-ing
	//  one Business node.
	BusinessUpsertOne struct {
		create *BusinessCreate
	}

	// BusinessUpsert is the "OnConflict" setter.
	BusinessUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *BusinessUpsert) SetName(v string) *BusinessUpsert {
	u.Set(business.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateName() *BusinessUpsert {
	u.SetExcluded(business.FieldName)
	return u
}

// SetTaxID sets the "tax_id" field.
func (u *BusinessUpsert) SetTaxID(v string) *BusinessUpsert {
	u.Set(business.FieldTaxID, v)
	return u
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateTaxID() *BusinessUpsert {
	u.SetExcluded(business.FieldTaxID)
	return u
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *BusinessUpsert) ClearTaxID() *BusinessUpsert {
	u.SetNull(business.FieldTaxID)
	return u
}

// SetDefaultCurrency sets the "default_currency" field.
func (u *BusinessUpsert) SetDefaultCurrency(v string) *BusinessUpsert {
	u.Set(business.FieldDefaultCurrency, v)
	return u
}

// UpdateDefaultCurrency sets the "default_currency" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateDefaultCurrency() *BusinessUpsert {
	u.SetExcluded(business.FieldDefaultCurrency)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *BusinessUpsert) SetCreatedAt(v time.Time) *BusinessUpsert {
	u.Set(business.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateCreatedAt() *BusinessUpsert {
	u.SetExcluded(business.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsert) SetUpdatedAt(v time.Time) *BusinessUpsert {
	u.Set(business.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateUpdatedAt() *BusinessUpsert {
	u.SetExcluded(business.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(business.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BusinessUpsertOne) UpdateNewValues() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(business.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BusinessUpsertOne) Ignore() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessUpsertOne) DoNothing() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessCreate.OnConflict
// documentation for more info.
func (u *BusinessUpsertOne) Update(set func(*BusinessUpsert)) *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BusinessUpsertOne) SetName(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateName() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateName()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *BusinessUpsertOne) SetTaxID(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateTaxID() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateTaxID()
	})
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *BusinessUpsertOne) ClearTaxID() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.ClearTaxID()
	})
}

// SetDefaultCurrency sets the "default_currency" field.
func (u *BusinessUpsertOne) SetDefaultCurrency(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetDefaultCurrency(v)
	})
}

// UpdateDefaultCurrency sets the "default_currency" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateDefaultCurrency() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateDefaultCurrency()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *BusinessUpsertOne) SetCreatedAt(v time.Time) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateCreatedAt() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsertOne) SetUpdatedAt(v time.Time) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateUpdatedAt() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BusinessUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BusinessCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BusinessUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BusinessUpsertOne.ID is not supported by MySQL driver. Use BusinessUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BusinessUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BusinessCreateBulk is the builder for creating many Business entities in bulk.
type BusinessCreateBulk struct {
	config
	err      error
	builders []*BusinessCreate
	conflict []sql.ConflictOption
}

// Save creates the Business entities in the database.
func (_c *BusinessCreateBulk) Save(ctx context.Context) ([]*Business, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Business, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessMutation)
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
func (_c *BusinessCreateBulk) SaveX(ctx context.Context) []*Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Business.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessCreateBulk) OnConflict(opts ...sql.ConflictOption) *BusinessUpsertBulk {
	_c.conflict = opts
	return &BusinessUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessCreateBulk) OnConflictColumns(columns ...string) *BusinessUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessUpsertBulk{
		create: _c,
	}
}

// BusinessUpsertBulk is the builder for "upsert"-ing
// a bulk of Business nodes.
type BusinessUpsertBulk struct {
	create *BusinessCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(business.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BusinessUpsertBulk) UpdateNewValues() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(business.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BusinessUpsertBulk) Ignore() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessUpsertBulk) DoNothing() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessCreateBulk.OnConflict
// documentation for more info.
func (u *BusinessUpsertBulk) Update(set func(*BusinessUpsert)) *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BusinessUpsertBulk) SetName(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateName() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateName()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *BusinessUpsertBulk) SetTaxID(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateTaxID() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateTaxID()
	})
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *BusinessUpsertBulk) ClearTaxID() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.ClearTaxID()
	})
}

// SetDefaultCurrency sets the "default_currency" field.
func (u *BusinessUpsertBulk) SetDefaultCurrency(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetDefaultCurrency(v)
	})
}

// UpdateDefaultCurrency sets the "default_currency" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateDefaultCurrency() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateDefaultCurrency()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *BusinessUpsertBulk) SetCreatedAt(v time.Time) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateCreatedAt() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsertBulk) SetUpdatedAt(v time.Time) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateUpdatedAt() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BusinessUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BusinessCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BusinessCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
