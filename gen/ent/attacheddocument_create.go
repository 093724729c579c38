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
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
)

// AttachedDocumentCreate is the builder for creating a AttachedDocument entity.
type AttachedDocumentCreate struct {
	config
	mutation *AttachedDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *AttachedDocumentCreate) SetBusinessID(v uuid.UUID) *AttachedDocumentCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetBoxID sets the "box_id" field.
func (_c *AttachedDocumentCreate) SetBoxID(v uuid.UUID) *AttachedDocumentCreate {
	_c.mutation.SetBoxID(v)
	return _c
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_c *AttachedDocumentCreate) SetNillableBoxID(v *uuid.UUID) *AttachedDocumentCreate {
	if v != nil {
		_c.SetBoxID(*v)
	}
	return _c
}

// SetFilename sets the "filename" field.
func (_c *AttachedDocumentCreate) SetFilename(v string) *AttachedDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *AttachedDocumentCreate) SetFileExt(v string) *AttachedDocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *AttachedDocumentCreate) SetContentHash(v []byte) *AttachedDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *AttachedDocumentCreate) SetDocType(v string) *AttachedDocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *AttachedDocumentCreate) SetUploadedAt(v time.Time) *AttachedDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *AttachedDocumentCreate) SetNillableUploadedAt(v *time.Time) *AttachedDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttachedDocumentCreate) SetID(v uuid.UUID) *AttachedDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttachedDocumentCreate) SetNillableID(v *uuid.UUID) *AttachedDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBox sets the "box" edge to the Box entity.
func (_c *AttachedDocumentCreate) SetBox(v *Box) *AttachedDocumentCreate {
	return _c.SetBoxID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *AttachedDocumentCreate) AddExtractionIDs(ids ...uuid.UUID) *AttachedDocumentCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *AttachedDocumentCreate) AddExtractions(v ...*Extraction) *AttachedDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the AttachedDocumentMutation object of the builder.
func (_c *AttachedDocumentCreate) Mutation() *AttachedDocumentMutation {
	return _c.mutation
}

// Save creates the AttachedDocument in the database.
func (_c *AttachedDocumentCreate) Save(ctx context.Context) (*AttachedDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttachedDocumentCreate) SaveX(ctx context.Context) *AttachedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachedDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachedDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttachedDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := attacheddocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attacheddocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttachedDocumentCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "AttachedDocument.business_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "AttachedDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := attacheddocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "AttachedDocument.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := attacheddocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "AttachedDocument.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := attacheddocument.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "AttachedDocument.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "AttachedDocument.uploaded_at"`)}
	}
	return nil
}

func (_c *AttachedDocumentCreate) sqlSave(ctx context.Context) (*AttachedDocument, error) {
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

func (_c *AttachedDocumentCreate) createSpec() (*AttachedDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &AttachedDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attacheddocument.Table, sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(attacheddocument.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(attacheddocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(attacheddocument.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(attacheddocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(attacheddocument.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(attacheddocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.BoxIDs(); len(nodes) > 0 {
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
		_node.BoxID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttachedDocument.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachedDocumentUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachedDocumentCreate) OnConflict(opts ...sql.ConflictOption) *AttachedDocumentUpsertOne {
	_c.conflict = opts
	return &AttachedDocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachedDocumentCreate) OnConflictColumns(columns ...string) *AttachedDocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachedDocumentUpsertOne{
		create: _c,
	}
}

type (
	// AttachedDocumentUpsertOne is the builder for "upsert"-ing
	//  one AttachedDocument node.
	AttachedDocumentUpsertOne struct {
		create *AttachedDocumentCreate
	}

	// AttachedDocumentUpsert is the "OnConflict" setter.
	AttachedDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *AttachedDocumentUpsert) SetBusinessID(v uuid.UUID) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateBusinessID() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldBusinessID)
	return u
}

// SetBoxID sets the "box_id" field.
func (u *AttachedDocumentUpsert) SetBoxID(v uuid.UUID) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldBoxID, v)
	return u
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateBoxID() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldBoxID)
	return u
}

// ClearBoxID clears the value of the "box_id" field.
func (u *AttachedDocumentUpsert) ClearBoxID() *AttachedDocumentUpsert {
	u.SetNull(attacheddocument.FieldBoxID)
	return u
}

// SetFilename sets the "filename" field.
func (u *AttachedDocumentUpsert) SetFilename(v string) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateFilename() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldFilename)
	return u
}

// SetFileExt sets the "file_ext" field.
func (u *AttachedDocumentUpsert) SetFileExt(v string) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldFileExt, v)
	return u
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateFileExt() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldFileExt)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *AttachedDocumentUpsert) SetContentHash(v []byte) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateContentHash() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AttachedDocumentUpsert) ClearContentHash() *AttachedDocumentUpsert {
	u.SetNull(attacheddocument.FieldContentHash)
	return u
}

// SetDocType sets the "doc_type" field.
func (u *AttachedDocumentUpsert) SetDocType(v string) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldDocType, v)
	return u
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateDocType() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldDocType)
	return u
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AttachedDocumentUpsert) SetUploadedAt(v time.Time) *AttachedDocumentUpsert {
	u.Set(attacheddocument.FieldUploadedAt, v)
	return u
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AttachedDocumentUpsert) UpdateUploadedAt() *AttachedDocumentUpsert {
	u.SetExcluded(attacheddocument.FieldUploadedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attacheddocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachedDocumentUpsertOne) UpdateNewValues() *AttachedDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(attacheddocument.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttachedDocumentUpsertOne) Ignore() *AttachedDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachedDocumentUpsertOne) DoNothing() *AttachedDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachedDocumentCreate.OnConflict
// documentation for more info.
func (u *AttachedDocumentUpsertOne) Update(set func(*AttachedDocumentUpsert)) *AttachedDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachedDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *AttachedDocumentUpsertOne) SetBusinessID(v uuid.UUID) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateBusinessID() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateBusinessID()
	})
}

// SetBoxID sets the "box_id" field.
func (u *AttachedDocumentUpsertOne) SetBoxID(v uuid.UUID) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetBoxID(v)
	})
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateBoxID() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateBoxID()
	})
}

// ClearBoxID clears the value of the "box_id" field.
func (u *AttachedDocumentUpsertOne) ClearBoxID() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.ClearBoxID()
	})
}

// SetFilename sets the "filename" field.
func (u *AttachedDocumentUpsertOne) SetFilename(v string) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateFilename() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AttachedDocumentUpsertOne) SetFileExt(v string) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateFileExt() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateFileExt()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AttachedDocumentUpsertOne) SetContentHash(v []byte) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateContentHash() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AttachedDocumentUpsertOne) ClearContentHash() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetDocType sets the "doc_type" field.
func (u *AttachedDocumentUpsertOne) SetDocType(v string) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateDocType() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateDocType()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AttachedDocumentUpsertOne) SetUploadedAt(v time.Time) *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AttachedDocumentUpsertOne) UpdateUploadedAt() *AttachedDocumentUpsertOne {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *AttachedDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachedDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachedDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttachedDocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AttachedDocumentUpsertOne.ID is not supported by MySQL driver. Use AttachedDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttachedDocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttachedDocumentCreateBulk is the builder for creating many AttachedDocument entities in bulk.
type AttachedDocumentCreateBulk struct {
	config
	err      error
	builders []*AttachedDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the AttachedDocument entities in the database.
func (_c *AttachedDocumentCreateBulk) Save(ctx context.Context) ([]*AttachedDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttachedDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttachedDocumentMutation)
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
func (_c *AttachedDocumentCreateBulk) SaveX(ctx context.Context) []*AttachedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachedDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachedDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttachedDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachedDocumentUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachedDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttachedDocumentUpsertBulk {
	_c.conflict = opts
	return &AttachedDocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachedDocumentCreateBulk) OnConflictColumns(columns ...string) *AttachedDocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachedDocumentUpsertBulk{
		create: _c,
	}
}

// AttachedDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of AttachedDocument nodes.
type AttachedDocumentUpsertBulk struct {
	create *AttachedDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attacheddocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachedDocumentUpsertBulk) UpdateNewValues() *AttachedDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(attacheddocument.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttachedDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttachedDocumentUpsertBulk) Ignore() *AttachedDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachedDocumentUpsertBulk) DoNothing() *AttachedDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachedDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *AttachedDocumentUpsertBulk) Update(set func(*AttachedDocumentUpsert)) *AttachedDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachedDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *AttachedDocumentUpsertBulk) SetBusinessID(v uuid.UUID) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateBusinessID() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateBusinessID()
	})
}

// SetBoxID sets the "box_id" field.
func (u *AttachedDocumentUpsertBulk) SetBoxID(v uuid.UUID) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetBoxID(v)
	})
}

// UpdateBoxID sets the "box_id" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateBoxID() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateBoxID()
	})
}

// ClearBoxID clears the value of the "box_id" field.
func (u *AttachedDocumentUpsertBulk) ClearBoxID() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.ClearBoxID()
	})
}

// SetFilename sets the "filename" field.
func (u *AttachedDocumentUpsertBulk) SetFilename(v string) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateFilename() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AttachedDocumentUpsertBulk) SetFileExt(v string) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateFileExt() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateFileExt()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AttachedDocumentUpsertBulk) SetContentHash(v []byte) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateContentHash() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AttachedDocumentUpsertBulk) ClearContentHash() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetDocType sets the "doc_type" field.
func (u *AttachedDocumentUpsertBulk) SetDocType(v string) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateDocType() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateDocType()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AttachedDocumentUpsertBulk) SetUploadedAt(v time.Time) *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AttachedDocumentUpsertBulk) UpdateUploadedAt() *AttachedDocumentUpsertBulk {
	return u.Update(func(s *AttachedDocumentUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *AttachedDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttachedDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachedDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachedDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
