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
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// FieldOverrideUpdate is the builder for updating FieldOverride entities.
type FieldOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *FieldOverrideMutation
}

// Where appends a list predicates to the FieldOverrideUpdate builder.
func (_u *FieldOverrideUpdate) Where(ps ...predicate.FieldOverride) *FieldOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBoxID sets the "box_id" field.
func (_u *FieldOverrideUpdate) SetBoxID(v uuid.UUID) *FieldOverrideUpdate {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *FieldOverrideUpdate) SetNillableBoxID(v *uuid.UUID) *FieldOverrideUpdate {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldOverrideUpdate) SetFieldName(v string) *FieldOverrideUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldOverrideUpdate) SetNillableFieldName(v *string) *FieldOverrideUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FieldOverrideUpdate) SetValue(v string) *FieldOverrideUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FieldOverrideUpdate) SetNillableValue(v *string) *FieldOverrideUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldOverrideUpdate) SetCreatedAt(v time.Time) *FieldOverrideUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldOverrideUpdate) SetNillableCreatedAt(v *time.Time) *FieldOverrideUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldOverrideUpdate) SetUpdatedAt(v time.Time) *FieldOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FieldOverrideMutation object of the builder.
func (_u *FieldOverrideUpdate) Mutation() *FieldOverrideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldOverrideUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldoverride.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldOverride.field_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldoverride.Table, fieldoverride.Columns, sqlgraph.NewFieldSpec(fieldoverride.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BoxID(); ok {
		_spec.SetField(fieldoverride.FieldBoxID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldoverride.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fieldoverride.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldoverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldOverrideUpdateOne is the builder for updating a single FieldOverride entity.
type FieldOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldOverrideMutation
}

// SetBoxID sets the "box_id" field.
func (_u *FieldOverrideUpdateOne) SetBoxID(v uuid.UUID) *FieldOverrideUpdateOne {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *FieldOverrideUpdateOne) SetNillableBoxID(v *uuid.UUID) *FieldOverrideUpdateOne {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldOverrideUpdateOne) SetFieldName(v string) *FieldOverrideUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldOverrideUpdateOne) SetNillableFieldName(v *string) *FieldOverrideUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FieldOverrideUpdateOne) SetValue(v string) *FieldOverrideUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FieldOverrideUpdateOne) SetNillableValue(v *string) *FieldOverrideUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldOverrideUpdateOne) SetCreatedAt(v time.Time) *FieldOverrideUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldOverrideUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldOverrideUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldOverrideUpdateOne) SetUpdatedAt(v time.Time) *FieldOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FieldOverrideMutation object of the builder.
func (_u *FieldOverrideUpdateOne) Mutation() *FieldOverrideMutation {
	return _u.mutation
}

// Where appends a list predicates to the FieldOverrideUpdate builder.
func (_u *FieldOverrideUpdateOne) Where(ps ...predicate.FieldOverride) *FieldOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldOverrideUpdateOne) Select(field string, fields ...string) *FieldOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldOverride entity.
func (_u *FieldOverrideUpdateOne) Save(ctx context.Context) (*FieldOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldOverrideUpdateOne) SaveX(ctx context.Context) *FieldOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldOverrideUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldoverride.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldOverride.field_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldOverrideUpdateOne) sqlSave(ctx context.Context) (_node *FieldOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldoverride.Table, fieldoverride.Columns, sqlgraph.NewFieldSpec(fieldoverride.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldoverride.FieldID)
		for _, f := range fields {
			if !fieldoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldoverride.FieldID {
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
	if value, ok := _u.mutation.BoxID(); ok {
		_spec.SetField(fieldoverride.FieldBoxID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldoverride.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fieldoverride.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldoverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FieldOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
