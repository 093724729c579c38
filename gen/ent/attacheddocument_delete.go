// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// AttachedDocumentDelete is the builder for deleting a AttachedDocument entity.
type AttachedDocumentDelete struct {
	config
	hooks    []Hook
	mutation *AttachedDocumentMutation
}

// Where appends a list predicates to the AttachedDocumentDelete builder.
func (_d *AttachedDocumentDelete) Where(ps ...predicate.AttachedDocument) *AttachedDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AttachedDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttachedDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AttachedDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(attacheddocument.Table, sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AttachedDocumentDeleteOne is the builder for deleting a single AttachedDocument entity.
type AttachedDocumentDeleteOne struct {
	_d *AttachedDocumentDelete
}

// Where appends a list predicates to the AttachedDocumentDelete builder.
func (_d *AttachedDocumentDeleteOne) Where(ps ...predicate.AttachedDocument) *AttachedDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AttachedDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{attacheddocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttachedDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
