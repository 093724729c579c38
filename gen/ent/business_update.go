// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// BusinessUpdate is the builder for updating Business entities.
type BusinessUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessMutation
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdate) Where(ps ...predicate.Business) *BusinessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessUpdate) SetName(v string) *BusinessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableName(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *BusinessUpdate) SetTaxID(v string) *BusinessUpdate {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableTaxID(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *BusinessUpdate) ClearTaxID() *BusinessUpdate {
	_u.mutation.ClearTaxID()
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *BusinessUpdate) SetDefaultCurrency(v string) *BusinessUpdate {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableDefaultCurrency(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BusinessUpdate) SetCreatedAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCreatedAt(v *time.Time) *BusinessUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdate) SetUpdatedAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBoxIDs adds the "boxes" edge to the Box entity by IDs.
func (_u *BusinessUpdate) AddBoxIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.AddBoxIDs(ids...)
	return _u
}

// AddBoxes adds the "boxes" edges to the Box entity.
func (_u *BusinessUpdate) AddBoxes(v ...*Box) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBoxIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdate) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearBoxes clears all "boxes" edges to the Box entity.
func (_u *BusinessUpdate) ClearBoxes() *BusinessUpdate {
	_u.mutation.ClearBoxes()
	return _u
}

// RemoveBoxIDs removes the "boxes" edge to Box entities by IDs.
func (_u *BusinessUpdate) RemoveBoxIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.RemoveBoxIDs(ids...)
	return _u
}

// RemoveBoxes removes "boxes" edges to Box entities.
func (_u *BusinessUpdate) RemoveBoxes(v ...*Box) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBoxIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := business.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Business.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(business.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(business.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(business.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBoxesIDs(); len(nodes) > 0 && !_u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessUpdateOne is the builder for updating a single Business entity.
type BusinessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessMutation
}

// SetName sets the "name" field.
func (_u *BusinessUpdateOne) SetName(v string) *BusinessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableName(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *BusinessUpdateOne) SetTaxID(v string) *BusinessUpdateOne {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableTaxID(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *BusinessUpdateOne) ClearTaxID() *BusinessUpdateOne {
	_u.mutation.ClearTaxID()
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *BusinessUpdateOne) SetDefaultCurrency(v string) *BusinessUpdateOne {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableDefaultCurrency(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BusinessUpdateOne) SetCreatedAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCreatedAt(v *time.Time) *BusinessUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdateOne) SetUpdatedAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBoxIDs adds the "boxes" edge to the Box entity by IDs.
func (_u *BusinessUpdateOne) AddBoxIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.AddBoxIDs(ids...)
	return _u
}

// AddBoxes adds the "boxes" edges to the Box entity.
func (_u *BusinessUpdateOne) AddBoxes(v ...*Box) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBoxIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdateOne) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearBoxes clears all "boxes" edges to the Box entity.
func (_u *BusinessUpdateOne) ClearBoxes() *BusinessUpdateOne {
	_u.mutation.ClearBoxes()
	return _u
}

// RemoveBoxIDs removes the "boxes" edge to Box entities by IDs.
func (_u *BusinessUpdateOne) RemoveBoxIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.RemoveBoxIDs(ids...)
	return _u
}

// RemoveBoxes removes "boxes" edges to Box entities.
func (_u *BusinessUpdateOne) RemoveBoxes(v ...*Box) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBoxIDs(ids...)
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdateOne) Where(ps ...predicate.Business) *BusinessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessUpdateOne) Select(field string, fields ...string) *BusinessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Business entity.
func (_u *BusinessUpdateOne) Save(ctx context.Context) (*Business, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdateOne) SaveX(ctx context.Context) *Business {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := business.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Business.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdateOne) sqlSave(ctx context.Context) (_node *Business, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Business.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, business.FieldID)
		for _, f := range fields {
			if !business.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != business.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(business.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(business.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(business.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBoxesIDs(); len(nodes) > 0 && !_u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Business{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
