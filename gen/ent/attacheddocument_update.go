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
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// AttachedDocumentUpdate is the builder for updating AttachedDocument entities.
type AttachedDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachedDocumentMutation
}

// Where appends a list predicates to the AttachedDocumentUpdate builder.
func (_u *AttachedDocumentUpdate) Where(ps ...predicate.AttachedDocument) *AttachedDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *AttachedDocumentUpdate) SetBusinessID(v uuid.UUID) *AttachedDocumentUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableBusinessID(v *uuid.UUID) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBoxID sets the "box_id" field.
func (_u *AttachedDocumentUpdate) SetBoxID(v uuid.UUID) *AttachedDocumentUpdate {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableBoxID(v *uuid.UUID) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// ClearBoxID clears the value of the "box_id" field.
func (_u *AttachedDocumentUpdate) ClearBoxID() *AttachedDocumentUpdate {
	_u.mutation.ClearBoxID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachedDocumentUpdate) SetFilename(v string) *AttachedDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableFilename(v *string) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AttachedDocumentUpdate) SetFileExt(v string) *AttachedDocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableFileExt(v *string) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AttachedDocumentUpdate) SetContentHash(v []byte) *AttachedDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *AttachedDocumentUpdate) ClearContentHash() *AttachedDocumentUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *AttachedDocumentUpdate) SetDocType(v string) *AttachedDocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableDocType(v *string) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *AttachedDocumentUpdate) SetUploadedAt(v time.Time) *AttachedDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *AttachedDocumentUpdate) SetNillableUploadedAt(v *time.Time) *AttachedDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetBox sets the "box" edge to the Box entity.
func (_u *AttachedDocumentUpdate) SetBox(v *Box) *AttachedDocumentUpdate {
	return _u.SetBoxID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *AttachedDocumentUpdate) AddExtractionIDs(ids ...uuid.UUID) *AttachedDocumentUpdate {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *AttachedDocumentUpdate) AddExtractions(v ...*Extraction) *AttachedDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the AttachedDocumentMutation object of the builder.
func (_u *AttachedDocumentUpdate) Mutation() *AttachedDocumentMutation {
	return _u.mutation
}

// ClearBox clears the "box" edge to the Box entity.
func (_u *AttachedDocumentUpdate) ClearBox() *AttachedDocumentUpdate {
	_u.mutation.ClearBox()
	return _u
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *AttachedDocumentUpdate) ClearExtractions() *AttachedDocumentUpdate {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *AttachedDocumentUpdate) RemoveExtractionIDs(ids ...uuid.UUID) *AttachedDocumentUpdate {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *AttachedDocumentUpdate) RemoveExtractions(v ...*Extraction) *AttachedDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachedDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachedDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachedDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachedDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachedDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attacheddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := attacheddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := attacheddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.doc_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachedDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attacheddocument.Table, attacheddocument.Columns, sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(attacheddocument.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attacheddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(attacheddocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(attacheddocument.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(attacheddocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(attacheddocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(attacheddocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.BoxCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attacheddocument.BoxTable,
			Columns: []string{attacheddocument.BoxColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attacheddocument.BoxTable,
			Columns: []string{attacheddocument.BoxColumn},
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
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attacheddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachedDocumentUpdateOne is the builder for updating a single AttachedDocument entity.
type AttachedDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachedDocumentMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *AttachedDocumentUpdateOne) SetBusinessID(v uuid.UUID) *AttachedDocumentUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableBusinessID(v *uuid.UUID) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBoxID sets the "box_id" field.
func (_u *AttachedDocumentUpdateOne) SetBoxID(v uuid.UUID) *AttachedDocumentUpdateOne {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableBoxID(v *uuid.UUID) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// ClearBoxID clears the value of the "box_id" field.
func (_u *AttachedDocumentUpdateOne) ClearBoxID() *AttachedDocumentUpdateOne {
	_u.mutation.ClearBoxID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachedDocumentUpdateOne) SetFilename(v string) *AttachedDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableFilename(v *string) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AttachedDocumentUpdateOne) SetFileExt(v string) *AttachedDocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableFileExt(v *string) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AttachedDocumentUpdateOne) SetContentHash(v []byte) *AttachedDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *AttachedDocumentUpdateOne) ClearContentHash() *AttachedDocumentUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *AttachedDocumentUpdateOne) SetDocType(v string) *AttachedDocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableDocType(v *string) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *AttachedDocumentUpdateOne) SetUploadedAt(v time.Time) *AttachedDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *AttachedDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *AttachedDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetBox sets the "box" edge to the Box entity.
func (_u *AttachedDocumentUpdateOne) SetBox(v *Box) *AttachedDocumentUpdateOne {
	return _u.SetBoxID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *AttachedDocumentUpdateOne) AddExtractionIDs(ids ...uuid.UUID) *AttachedDocumentUpdateOne {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *AttachedDocumentUpdateOne) AddExtractions(v ...*Extraction) *AttachedDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the AttachedDocumentMutation object of the builder.
func (_u *AttachedDocumentUpdateOne) Mutation() *AttachedDocumentMutation {
	return _u.mutation
}

// ClearBox clears the "box" edge to the Box entity.
func (_u *AttachedDocumentUpdateOne) ClearBox() *AttachedDocumentUpdateOne {
	_u.mutation.ClearBox()
	return _u
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *AttachedDocumentUpdateOne) ClearExtractions() *AttachedDocumentUpdateOne {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *AttachedDocumentUpdateOne) RemoveExtractionIDs(ids ...uuid.UUID) *AttachedDocumentUpdateOne {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *AttachedDocumentUpdateOne) RemoveExtractions(v ...*Extraction) *AttachedDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Where appends a list predicates to the AttachedDocumentUpdate builder.
func (_u *AttachedDocumentUpdateOne) Where(ps ...predicate.AttachedDocument) *AttachedDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachedDocumentUpdateOne) Select(field string, fields ...string) *AttachedDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttachedDocument entity.
func (_u *AttachedDocumentUpdateOne) Save(ctx context.Context) (*AttachedDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachedDocumentUpdateOne) SaveX(ctx context.Context) *AttachedDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachedDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachedDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachedDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attacheddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := attacheddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := attacheddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.doc_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachedDocumentUpdateOne) sqlSave(ctx context.Context) (_node *AttachedDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attacheddocument.Table, attacheddocument.Columns, sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttachedDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attacheddocument.FieldID)
		for _, f := range fields {
			if !attacheddocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attacheddocument.FieldID {
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
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(attacheddocument.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attacheddocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(attacheddocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(attacheddocument.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(attacheddocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(attacheddocument.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(attacheddocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.BoxCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attacheddocument.BoxTable,
			Columns: []string{attacheddocument.BoxColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attacheddocument.BoxTable,
			Columns: []string{attacheddocument.BoxColumn},
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
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attacheddocument.ExtractionsTable,
			Columns: []string{attacheddocument.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AttachedDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attacheddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
