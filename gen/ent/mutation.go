// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttachedDocument = "AttachedDocument"
	TypeBox              = "Box"
	TypeBusiness         = "Business"
	TypeExtraction       = "Extraction"
	TypeFieldOverride    = "FieldOverride"
)

// AttachedDocumentMutation represents an operation that mutates the AttachedDocument nodes in the graph.
type AttachedDocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	business_id        *uuid.UUID
	filename           *string
	file_ext           *string
	content_hash       *[]byte
	doc_type           *string
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	box                *uuid.UUID
	clearedbox         bool
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*AttachedDocument, error)
	predicates         []predicate.AttachedDocument
}

var _ ent.Mutation = (*AttachedDocumentMutation)(nil)

// attacheddocumentOption allows management of the mutation configuration using functional options.
type attacheddocumentOption func(*AttachedDocumentMutation)

// newAttachedDocumentMutation creates new mutation for the AttachedDocument entity.
func newAttachedDocumentMutation(c config, op Op, opts ...attacheddocumentOption) *AttachedDocumentMutation {
	m := &AttachedDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachedDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachedDocumentID sets the ID field of the mutation.
func withAttachedDocumentID(id uuid.UUID) attacheddocumentOption {
	return func(m *AttachedDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *AttachedDocument
		)
		m.oldValue = func(ctx context.Context) (*AttachedDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttachedDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachedDocument sets the old AttachedDocument of the mutation.
func withAttachedDocument(node *AttachedDocument) attacheddocumentOption {
	return func(m *AttachedDocumentMutation) {
		m.oldValue = func(context.Context) (*AttachedDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachedDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachedDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AttachedDocument entities.
func (m *AttachedDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachedDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachedDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttachedDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *AttachedDocumentMutation) SetBusinessID(u uuid.UUID) {
	m.business_id = &u
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *AttachedDocumentMutation) BusinessID() (r uuid.UUID, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldBusinessID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *AttachedDocumentMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetBoxID sets the "box_id" field.
func (m *AttachedDocumentMutation) SetBoxID(u uuid.UUID) {
	m.box = &u
}

// BoxID returns the value of the "box_id" field in the mutation.
func (m *AttachedDocumentMutation) BoxID() (r uuid.UUID, exists bool) {
	v := m.box
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxID returns the old "box_id" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldBoxID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxID: %w", err)
	}
	return oldValue.BoxID, nil
}

// ClearBoxID clears the value of the "box_id" field.
func (m *AttachedDocumentMutation) ClearBoxID() {
	m.box = nil
	m.clearedFields[attacheddocument.FieldBoxID] = struct{}{}
}

// BoxIDCleared returns if the "box_id" field was cleared in this mutation.
func (m *AttachedDocumentMutation) BoxIDCleared() bool {
	_, ok := m.clearedFields[attacheddocument.FieldBoxID]
	return ok
}

// ResetBoxID resets all changes to the "box_id" field.
func (m *AttachedDocumentMutation) ResetBoxID() {
	m.box = nil
	delete(m.clearedFields, attacheddocument.FieldBoxID)
}

// SetFilename sets the "filename" field.
func (m *AttachedDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AttachedDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *AttachedDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *AttachedDocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *AttachedDocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *AttachedDocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *AttachedDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *AttachedDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *AttachedDocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[attacheddocument.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *AttachedDocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[attacheddocument.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *AttachedDocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, attacheddocument.FieldContentHash)
}

// SetDocType sets the "doc_type" field.
func (m *AttachedDocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *AttachedDocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *AttachedDocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *AttachedDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *AttachedDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the AttachedDocument entity.
// If the AttachedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachedDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *AttachedDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearBox clears the "box" edge to the Box entity.
func (m *AttachedDocumentMutation) ClearBox() {
	m.clearedbox = true
	m.clearedFields[attacheddocument.FieldBoxID] = struct{}{}
}

// BoxCleared reports if the "box" edge to the Box entity was cleared.
func (m *AttachedDocumentMutation) BoxCleared() bool {
	return m.BoxIDCleared() || m.clearedbox
}

// BoxIDs returns the "box" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BoxID instead. It exists only for internal usage by the builders.
func (m *AttachedDocumentMutation) BoxIDs() (ids []uuid.UUID) {
	if id := m.box; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBox resets all changes to the "box" edge.
func (m *AttachedDocumentMutation) ResetBox() {
	m.box = nil
	m.clearedbox = false
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *AttachedDocumentMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *AttachedDocumentMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *AttachedDocumentMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *AttachedDocumentMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *AttachedDocumentMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *AttachedDocumentMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *AttachedDocumentMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the AttachedDocumentMutation builder.
func (m *AttachedDocumentMutation) Where(ps ...predicate.AttachedDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachedDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachedDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttachedDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachedDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachedDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttachedDocument).
func (m *AttachedDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachedDocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.business_id != nil {
		fields = append(fields, attacheddocument.FieldBusinessID)
	}
	if m.box != nil {
		fields = append(fields, attacheddocument.FieldBoxID)
	}
	if m.filename != nil {
		fields = append(fields, attacheddocument.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, attacheddocument.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, attacheddocument.FieldContentHash)
	}
	if m.doc_type != nil {
		fields = append(fields, attacheddocument.FieldDocType)
	}
	if m.uploaded_at != nil {
		fields = append(fields, attacheddocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachedDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attacheddocument.FieldBusinessID:
		return m.BusinessID()
	case attacheddocument.FieldBoxID:
		return m.BoxID()
	case attacheddocument.FieldFilename:
		return m.Filename()
	case attacheddocument.FieldFileExt:
		return m.FileExt()
	case attacheddocument.FieldContentHash:
		return m.ContentHash()
	case attacheddocument.FieldDocType:
		return m.DocType()
	case attacheddocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachedDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attacheddocument.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case attacheddocument.FieldBoxID:
		return m.OldBoxID(ctx)
	case attacheddocument.FieldFilename:
		return m.OldFilename(ctx)
	case attacheddocument.FieldFileExt:
		return m.OldFileExt(ctx)
	case attacheddocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case attacheddocument.FieldDocType:
		return m.OldDocType(ctx)
	case attacheddocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AttachedDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachedDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attacheddocument.FieldBusinessID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case attacheddocument.FieldBoxID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxID(v)
		return nil
	case attacheddocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case attacheddocument.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case attacheddocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case attacheddocument.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case attacheddocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AttachedDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachedDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachedDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachedDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AttachedDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachedDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attacheddocument.FieldBoxID) {
		fields = append(fields, attacheddocument.FieldBoxID)
	}
	if m.FieldCleared(attacheddocument.FieldContentHash) {
		fields = append(fields, attacheddocument.FieldContentHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachedDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachedDocumentMutation) ClearField(name string) error {
	switch name {
	case attacheddocument.FieldBoxID:
		m.ClearBoxID()
		return nil
	case attacheddocument.FieldContentHash:
		m.ClearContentHash()
		return nil
	}
	return fmt.Errorf("unknown AttachedDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachedDocumentMutation) ResetField(name string) error {
	switch name {
	case attacheddocument.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case attacheddocument.FieldBoxID:
		m.ResetBoxID()
		return nil
	case attacheddocument.FieldFilename:
		m.ResetFilename()
		return nil
	case attacheddocument.FieldFileExt:
		m.ResetFileExt()
		return nil
	case attacheddocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case attacheddocument.FieldDocType:
		m.ResetDocType()
		return nil
	case attacheddocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown AttachedDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachedDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.box != nil {
		edges = append(edges, attacheddocument.EdgeBox)
	}
	if m.extractions != nil {
		edges = append(edges, attacheddocument.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachedDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attacheddocument.EdgeBox:
		if id := m.box; id != nil {
			return []ent.Value{*id}
		}
	case attacheddocument.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachedDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedextractions != nil {
		edges = append(edges, attacheddocument.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachedDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attacheddocument.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachedDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbox {
		edges = append(edges, attacheddocument.EdgeBox)
	}
	if m.clearedextractions {
		edges = append(edges, attacheddocument.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachedDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case attacheddocument.EdgeBox:
		return m.clearedbox
	case attacheddocument.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachedDocumentMutation) ClearEdge(name string) error {
	switch name {
	case attacheddocument.EdgeBox:
		m.ClearBox()
		return nil
	}
	return fmt.Errorf("unknown AttachedDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachedDocumentMutation) ResetEdge(name string) error {
	switch name {
	case attacheddocument.EdgeBox:
		m.ResetBox()
		return nil
	case attacheddocument.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown AttachedDocument edge %s", name)
}

// BoxMutation represents an operation that mutates the Box nodes in the graph.
type BoxMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	box_type          *string
	expense_type      *string
	contact_name      *string
	contact_tax_id    *string
	box_date          *time.Time
	has_vat           *bool
	has_wht           *bool
	wht_rate          *float64
	addwht_rate       *float64
	total_amount      *float64
	addtotal_amount   *float64
	vat_amount        *float64
	addvat_amount     *float64
	wht_amount        *float64
	addwht_amount     *float64
	payment_status    *string
	no_receipt_reason *string
	is_paid           *bool
	wht_sent          *bool
	doc_status        *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	business          *uuid.UUID
	clearedbusiness   bool
	documents         map[uuid.UUID]struct{}
	removeddocuments  map[uuid.UUID]struct{}
	cleareddocuments  bool
	done              bool
	oldValue          func(context.Context) (*Box, error)
	predicates        []predicate.Box
}

var _ ent.Mutation = (*BoxMutation)(nil)

// boxOption allows management of the mutation configuration using functional options.
type boxOption func(*BoxMutation)

// newBoxMutation creates new mutation for the Box entity.
func newBoxMutation(c config, op Op, opts ...boxOption) *BoxMutation {
	m := &BoxMutation{
		config:        c,
		op:            op,
		typ:           TypeBox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoxID sets the ID field of the mutation.
func withBoxID(id uuid.UUID) boxOption {
	return func(m *BoxMutation) {
		var (
			err   error
			once  sync.Once
			value *Box
		)
		m.oldValue = func(ctx context.Context) (*Box, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Box.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBox sets the old Box of the mutation.
func withBox(node *Box) boxOption {
	return func(m *BoxMutation) {
		m.oldValue = func(context.Context) (*Box, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Box entities.
func (m *BoxMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoxMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoxMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Box.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *BoxMutation) SetBusinessID(u uuid.UUID) {
	m.business = &u
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *BoxMutation) BusinessID() (r uuid.UUID, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldBusinessID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *BoxMutation) ResetBusinessID() {
	m.business = nil
}

// SetBoxType sets the "box_type" field.
func (m *BoxMutation) SetBoxType(s string) {
	m.box_type = &s
}

// BoxType returns the value of the "box_type" field in the mutation.
func (m *BoxMutation) BoxType() (r string, exists bool) {
	v := m.box_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxType returns the old "box_type" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldBoxType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxType: %w", err)
	}
	return oldValue.BoxType, nil
}

// ResetBoxType resets all changes to the "box_type" field.
func (m *BoxMutation) ResetBoxType() {
	m.box_type = nil
}

// SetExpenseType sets the "expense_type" field.
func (m *BoxMutation) SetExpenseType(s string) {
	m.expense_type = &s
}

// ExpenseType returns the value of the "expense_type" field in the mutation.
func (m *BoxMutation) ExpenseType() (r string, exists bool) {
	v := m.expense_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExpenseType returns the old "expense_type" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldExpenseType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpenseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpenseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpenseType: %w", err)
	}
	return oldValue.ExpenseType, nil
}

// ClearExpenseType clears the value of the "expense_type" field.
func (m *BoxMutation) ClearExpenseType() {
	m.expense_type = nil
	m.clearedFields[box.FieldExpenseType] = struct{}{}
}

// ExpenseTypeCleared returns if the "expense_type" field was cleared in this mutation.
func (m *BoxMutation) ExpenseTypeCleared() bool {
	_, ok := m.clearedFields[box.FieldExpenseType]
	return ok
}

// ResetExpenseType resets all changes to the "expense_type" field.
func (m *BoxMutation) ResetExpenseType() {
	m.expense_type = nil
	delete(m.clearedFields, box.FieldExpenseType)
}

// SetContactName sets the "contact_name" field.
func (m *BoxMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *BoxMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *BoxMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[box.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *BoxMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[box.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *BoxMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, box.FieldContactName)
}

// SetContactTaxID sets the "contact_tax_id" field.
func (m *BoxMutation) SetContactTaxID(s string) {
	m.contact_tax_id = &s
}

// ContactTaxID returns the value of the "contact_tax_id" field in the mutation.
func (m *BoxMutation) ContactTaxID() (r string, exists bool) {
	v := m.contact_tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactTaxID returns the old "contact_tax_id" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldContactTaxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactTaxID: %w", err)
	}
	return oldValue.ContactTaxID, nil
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (m *BoxMutation) ClearContactTaxID() {
	m.contact_tax_id = nil
	m.clearedFields[box.FieldContactTaxID] = struct{}{}
}

// ContactTaxIDCleared returns if the "contact_tax_id" field was cleared in this mutation.
func (m *BoxMutation) ContactTaxIDCleared() bool {
	_, ok := m.clearedFields[box.FieldContactTaxID]
	return ok
}

// ResetContactTaxID resets all changes to the "contact_tax_id" field.
func (m *BoxMutation) ResetContactTaxID() {
	m.contact_tax_id = nil
	delete(m.clearedFields, box.FieldContactTaxID)
}

// SetBoxDate sets the "box_date" field.
func (m *BoxMutation) SetBoxDate(t time.Time) {
	m.box_date = &t
}

// BoxDate returns the value of the "box_date" field in the mutation.
func (m *BoxMutation) BoxDate() (r time.Time, exists bool) {
	v := m.box_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxDate returns the old "box_date" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldBoxDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxDate: %w", err)
	}
	return oldValue.BoxDate, nil
}

// ResetBoxDate resets all changes to the "box_date" field.
func (m *BoxMutation) ResetBoxDate() {
	m.box_date = nil
}

// SetHasVat sets the "has_vat" field.
func (m *BoxMutation) SetHasVat(b bool) {
	m.has_vat = &b
}

// HasVat returns the value of the "has_vat" field in the mutation.
func (m *BoxMutation) HasVat() (r bool, exists bool) {
	v := m.has_vat
	if v == nil {
		return
	}
	return *v, true
}

// OldHasVat returns the old "has_vat" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldHasVat(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasVat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasVat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasVat: %w", err)
	}
	return oldValue.HasVat, nil
}

// ResetHasVat resets all changes to the "has_vat" field.
func (m *BoxMutation) ResetHasVat() {
	m.has_vat = nil
}

// SetHasWht sets the "has_wht" field.
func (m *BoxMutation) SetHasWht(b bool) {
	m.has_wht = &b
}

// HasWht returns the value of the "has_wht" field in the mutation.
func (m *BoxMutation) HasWht() (r bool, exists bool) {
	v := m.has_wht
	if v == nil {
		return
	}
	return *v, true
}

// OldHasWht returns the old "has_wht" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldHasWht(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasWht is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasWht requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasWht: %w", err)
	}
	return oldValue.HasWht, nil
}

// ResetHasWht resets all changes to the "has_wht" field.
func (m *BoxMutation) ResetHasWht() {
	m.has_wht = nil
}

// SetWhtRate sets the "wht_rate" field.
func (m *BoxMutation) SetWhtRate(f float64) {
	m.wht_rate = &f
	m.addwht_rate = nil
}

// WhtRate returns the value of the "wht_rate" field in the mutation.
func (m *BoxMutation) WhtRate() (r float64, exists bool) {
	v := m.wht_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldWhtRate returns the old "wht_rate" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldWhtRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhtRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhtRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhtRate: %w", err)
	}
	return oldValue.WhtRate, nil
}

// AddWhtRate adds f to the "wht_rate" field.
func (m *BoxMutation) AddWhtRate(f float64) {
	if m.addwht_rate != nil {
		*m.addwht_rate += f
	} else {
		m.addwht_rate = &f
	}
}

// AddedWhtRate returns the value that was added to the "wht_rate" field in this mutation.
func (m *BoxMutation) AddedWhtRate() (r float64, exists bool) {
	v := m.addwht_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (m *BoxMutation) ClearWhtRate() {
	m.wht_rate = nil
	m.addwht_rate = nil
	m.clearedFields[box.FieldWhtRate] = struct{}{}
}

// WhtRateCleared returns if the "wht_rate" field was cleared in this mutation.
func (m *BoxMutation) WhtRateCleared() bool {
	_, ok := m.clearedFields[box.FieldWhtRate]
	return ok
}

// ResetWhtRate resets all changes to the "wht_rate" field.
func (m *BoxMutation) ResetWhtRate() {
	m.wht_rate = nil
	m.addwht_rate = nil
	delete(m.clearedFields, box.FieldWhtRate)
}

// SetTotalAmount sets the "total_amount" field.
func (m *BoxMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *BoxMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *BoxMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *BoxMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *BoxMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetVatAmount sets the "vat_amount" field.
func (m *BoxMutation) SetVatAmount(f float64) {
	m.vat_amount = &f
	m.addvat_amount = nil
}

// VatAmount returns the value of the "vat_amount" field in the mutation.
func (m *BoxMutation) VatAmount() (r float64, exists bool) {
	v := m.vat_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmount returns the old "vat_amount" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldVatAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmount: %w", err)
	}
	return oldValue.VatAmount, nil
}

// AddVatAmount adds f to the "vat_amount" field.
func (m *BoxMutation) AddVatAmount(f float64) {
	if m.addvat_amount != nil {
		*m.addvat_amount += f
	} else {
		m.addvat_amount = &f
	}
}

// AddedVatAmount returns the value that was added to the "vat_amount" field in this mutation.
func (m *BoxMutation) AddedVatAmount() (r float64, exists bool) {
	v := m.addvat_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetVatAmount resets all changes to the "vat_amount" field.
func (m *BoxMutation) ResetVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
}

// SetWhtAmount sets the "wht_amount" field.
func (m *BoxMutation) SetWhtAmount(f float64) {
	m.wht_amount = &f
	m.addwht_amount = nil
}

// WhtAmount returns the value of the "wht_amount" field in the mutation.
func (m *BoxMutation) WhtAmount() (r float64, exists bool) {
	v := m.wht_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldWhtAmount returns the old "wht_amount" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldWhtAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhtAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhtAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhtAmount: %w", err)
	}
	return oldValue.WhtAmount, nil
}

// AddWhtAmount adds f to the "wht_amount" field.
func (m *BoxMutation) AddWhtAmount(f float64) {
	if m.addwht_amount != nil {
		*m.addwht_amount += f
	} else {
		m.addwht_amount = &f
	}
}

// AddedWhtAmount returns the value that was added to the "wht_amount" field in this mutation.
func (m *BoxMutation) AddedWhtAmount() (r float64, exists bool) {
	v := m.addwht_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetWhtAmount resets all changes to the "wht_amount" field.
func (m *BoxMutation) ResetWhtAmount() {
	m.wht_amount = nil
	m.addwht_amount = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *BoxMutation) SetPaymentStatus(s string) {
	m.payment_status = &s
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *BoxMutation) PaymentStatus() (r string, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldPaymentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *BoxMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (m *BoxMutation) SetNoReceiptReason(s string) {
	m.no_receipt_reason = &s
}

// NoReceiptReason returns the value of the "no_receipt_reason" field in the mutation.
func (m *BoxMutation) NoReceiptReason() (r string, exists bool) {
	v := m.no_receipt_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldNoReceiptReason returns the old "no_receipt_reason" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldNoReceiptReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoReceiptReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoReceiptReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoReceiptReason: %w", err)
	}
	return oldValue.NoReceiptReason, nil
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (m *BoxMutation) ClearNoReceiptReason() {
	m.no_receipt_reason = nil
	m.clearedFields[box.FieldNoReceiptReason] = struct{}{}
}

// NoReceiptReasonCleared returns if the "no_receipt_reason" field was cleared in this mutation.
func (m *BoxMutation) NoReceiptReasonCleared() bool {
	_, ok := m.clearedFields[box.FieldNoReceiptReason]
	return ok
}

// ResetNoReceiptReason resets all changes to the "no_receipt_reason" field.
func (m *BoxMutation) ResetNoReceiptReason() {
	m.no_receipt_reason = nil
	delete(m.clearedFields, box.FieldNoReceiptReason)
}

// SetIsPaid sets the "is_paid" field.
func (m *BoxMutation) SetIsPaid(b bool) {
	m.is_paid = &b
}

// IsPaid returns the value of the "is_paid" field in the mutation.
func (m *BoxMutation) IsPaid() (r bool, exists bool) {
	v := m.is_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPaid returns the old "is_paid" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldIsPaid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPaid: %w", err)
	}
	return oldValue.IsPaid, nil
}

// ResetIsPaid resets all changes to the "is_paid" field.
func (m *BoxMutation) ResetIsPaid() {
	m.is_paid = nil
}

// SetWhtSent sets the "wht_sent" field.
func (m *BoxMutation) SetWhtSent(b bool) {
	m.wht_sent = &b
}

// WhtSent returns the value of the "wht_sent" field in the mutation.
func (m *BoxMutation) WhtSent() (r bool, exists bool) {
	v := m.wht_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldWhtSent returns the old "wht_sent" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldWhtSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhtSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhtSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhtSent: %w", err)
	}
	return oldValue.WhtSent, nil
}

// ResetWhtSent resets all changes to the "wht_sent" field.
func (m *BoxMutation) ResetWhtSent() {
	m.wht_sent = nil
}

// SetDocStatus sets the "doc_status" field.
func (m *BoxMutation) SetDocStatus(s string) {
	m.doc_status = &s
}

// DocStatus returns the value of the "doc_status" field in the mutation.
func (m *BoxMutation) DocStatus() (r string, exists bool) {
	v := m.doc_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDocStatus returns the old "doc_status" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldDocStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocStatus: %w", err)
	}
	return oldValue.DocStatus, nil
}

// ResetDocStatus resets all changes to the "doc_status" field.
func (m *BoxMutation) ResetDocStatus() {
	m.doc_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BoxMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoxMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoxMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BoxMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BoxMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Box entity.
// If the Box object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoxMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BoxMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *BoxMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[box.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *BoxMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *BoxMutation) BusinessIDs() (ids []uuid.UUID) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *BoxMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// AddDocumentIDs adds the "documents" edge to the AttachedDocument entity by ids.
func (m *BoxMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the AttachedDocument entity.
func (m *BoxMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the AttachedDocument entity was cleared.
func (m *BoxMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the AttachedDocument entity by IDs.
func (m *BoxMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the AttachedDocument entity.
func (m *BoxMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *BoxMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *BoxMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the BoxMutation builder.
func (m *BoxMutation) Where(ps ...predicate.Box) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Box, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Box).
func (m *BoxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoxMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.business != nil {
		fields = append(fields, box.FieldBusinessID)
	}
	if m.box_type != nil {
		fields = append(fields, box.FieldBoxType)
	}
	if m.expense_type != nil {
		fields = append(fields, box.FieldExpenseType)
	}
	if m.contact_name != nil {
		fields = append(fields, box.FieldContactName)
	}
	if m.contact_tax_id != nil {
		fields = append(fields, box.FieldContactTaxID)
	}
	if m.box_date != nil {
		fields = append(fields, box.FieldBoxDate)
	}
	if m.has_vat != nil {
		fields = append(fields, box.FieldHasVat)
	}
	if m.has_wht != nil {
		fields = append(fields, box.FieldHasWht)
	}
	if m.wht_rate != nil {
		fields = append(fields, box.FieldWhtRate)
	}
	if m.total_amount != nil {
		fields = append(fields, box.FieldTotalAmount)
	}
	if m.vat_amount != nil {
		fields = append(fields, box.FieldVatAmount)
	}
	if m.wht_amount != nil {
		fields = append(fields, box.FieldWhtAmount)
	}
	if m.payment_status != nil {
		fields = append(fields, box.FieldPaymentStatus)
	}
	if m.no_receipt_reason != nil {
		fields = append(fields, box.FieldNoReceiptReason)
	}
	if m.is_paid != nil {
		fields = append(fields, box.FieldIsPaid)
	}
	if m.wht_sent != nil {
		fields = append(fields, box.FieldWhtSent)
	}
	if m.doc_status != nil {
		fields = append(fields, box.FieldDocStatus)
	}
	if m.created_at != nil {
		fields = append(fields, box.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, box.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case box.FieldBusinessID:
		return m.BusinessID()
	case box.FieldBoxType:
		return m.BoxType()
	case box.FieldExpenseType:
		return m.ExpenseType()
	case box.FieldContactName:
		return m.ContactName()
	case box.FieldContactTaxID:
		return m.ContactTaxID()
	case box.FieldBoxDate:
		return m.BoxDate()
	case box.FieldHasVat:
		return m.HasVat()
	case box.FieldHasWht:
		return m.HasWht()
	case box.FieldWhtRate:
		return m.WhtRate()
	case box.FieldTotalAmount:
		return m.TotalAmount()
	case box.FieldVatAmount:
		return m.VatAmount()
	case box.FieldWhtAmount:
		return m.WhtAmount()
	case box.FieldPaymentStatus:
		return m.PaymentStatus()
	case box.FieldNoReceiptReason:
		return m.NoReceiptReason()
	case box.FieldIsPaid:
		return m.IsPaid()
	case box.FieldWhtSent:
		return m.WhtSent()
	case box.FieldDocStatus:
		return m.DocStatus()
	case box.FieldCreatedAt:
		return m.CreatedAt()
	case box.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case box.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case box.FieldBoxType:
		return m.OldBoxType(ctx)
	case box.FieldExpenseType:
		return m.OldExpenseType(ctx)
	case box.FieldContactName:
		return m.OldContactName(ctx)
	case box.FieldContactTaxID:
		return m.OldContactTaxID(ctx)
	case box.FieldBoxDate:
		return m.OldBoxDate(ctx)
	case box.FieldHasVat:
		return m.OldHasVat(ctx)
	case box.FieldHasWht:
		return m.OldHasWht(ctx)
	case box.FieldWhtRate:
		return m.OldWhtRate(ctx)
	case box.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case box.FieldVatAmount:
		return m.OldVatAmount(ctx)
	case box.FieldWhtAmount:
		return m.OldWhtAmount(ctx)
	case box.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case box.FieldNoReceiptReason:
		return m.OldNoReceiptReason(ctx)
	case box.FieldIsPaid:
		return m.OldIsPaid(ctx)
	case box.FieldWhtSent:
		return m.OldWhtSent(ctx)
	case box.FieldDocStatus:
		return m.OldDocStatus(ctx)
	case box.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case box.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Box field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case box.FieldBusinessID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case box.FieldBoxType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxType(v)
		return nil
	case box.FieldExpenseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpenseType(v)
		return nil
	case box.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case box.FieldContactTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactTaxID(v)
		return nil
	case box.FieldBoxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxDate(v)
		return nil
	case box.FieldHasVat:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasVat(v)
		return nil
	case box.FieldHasWht:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasWht(v)
		return nil
	case box.FieldWhtRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhtRate(v)
		return nil
	case box.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case box.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmount(v)
		return nil
	case box.FieldWhtAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhtAmount(v)
		return nil
	case box.FieldPaymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case box.FieldNoReceiptReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoReceiptReason(v)
		return nil
	case box.FieldIsPaid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPaid(v)
		return nil
	case box.FieldWhtSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhtSent(v)
		return nil
	case box.FieldDocStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocStatus(v)
		return nil
	case box.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case box.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Box field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoxMutation) AddedFields() []string {
	var fields []string
	if m.addwht_rate != nil {
		fields = append(fields, box.FieldWhtRate)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, box.FieldTotalAmount)
	}
	if m.addvat_amount != nil {
		fields = append(fields, box.FieldVatAmount)
	}
	if m.addwht_amount != nil {
		fields = append(fields, box.FieldWhtAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoxMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case box.FieldWhtRate:
		return m.AddedWhtRate()
	case box.FieldTotalAmount:
		return m.AddedTotalAmount()
	case box.FieldVatAmount:
		return m.AddedVatAmount()
	case box.FieldWhtAmount:
		return m.AddedWhtAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoxMutation) AddField(name string, value ent.Value) error {
	switch name {
	case box.FieldWhtRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWhtRate(v)
		return nil
	case box.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case box.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmount(v)
		return nil
	case box.FieldWhtAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWhtAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Box numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(box.FieldExpenseType) {
		fields = append(fields, box.FieldExpenseType)
	}
	if m.FieldCleared(box.FieldContactName) {
		fields = append(fields, box.FieldContactName)
	}
	if m.FieldCleared(box.FieldContactTaxID) {
		fields = append(fields, box.FieldContactTaxID)
	}
	if m.FieldCleared(box.FieldWhtRate) {
		fields = append(fields, box.FieldWhtRate)
	}
	if m.FieldCleared(box.FieldNoReceiptReason) {
		fields = append(fields, box.FieldNoReceiptReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoxMutation) ClearField(name string) error {
	switch name {
	case box.FieldExpenseType:
		m.ClearExpenseType()
		return nil
	case box.FieldContactName:
		m.ClearContactName()
		return nil
	case box.FieldContactTaxID:
		m.ClearContactTaxID()
		return nil
	case box.FieldWhtRate:
		m.ClearWhtRate()
		return nil
	case box.FieldNoReceiptReason:
		m.ClearNoReceiptReason()
		return nil
	}
	return fmt.Errorf("unknown Box nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoxMutation) ResetField(name string) error {
	switch name {
	case box.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case box.FieldBoxType:
		m.ResetBoxType()
		return nil
	case box.FieldExpenseType:
		m.ResetExpenseType()
		return nil
	case box.FieldContactName:
		m.ResetContactName()
		return nil
	case box.FieldContactTaxID:
		m.ResetContactTaxID()
		return nil
	case box.FieldBoxDate:
		m.ResetBoxDate()
		return nil
	case box.FieldHasVat:
		m.ResetHasVat()
		return nil
	case box.FieldHasWht:
		m.ResetHasWht()
		return nil
	case box.FieldWhtRate:
		m.ResetWhtRate()
		return nil
	case box.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case box.FieldVatAmount:
		m.ResetVatAmount()
		return nil
	case box.FieldWhtAmount:
		m.ResetWhtAmount()
		return nil
	case box.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case box.FieldNoReceiptReason:
		m.ResetNoReceiptReason()
		return nil
	case box.FieldIsPaid:
		m.ResetIsPaid()
		return nil
	case box.FieldWhtSent:
		m.ResetWhtSent()
		return nil
	case box.FieldDocStatus:
		m.ResetDocStatus()
		return nil
	case box.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case box.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Box field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoxMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.business != nil {
		edges = append(edges, box.EdgeBusiness)
	}
	if m.documents != nil {
		edges = append(edges, box.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoxMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case box.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case box.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, box.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoxMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case box.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbusiness {
		edges = append(edges, box.EdgeBusiness)
	}
	if m.cleareddocuments {
		edges = append(edges, box.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoxMutation) EdgeCleared(name string) bool {
	switch name {
	case box.EdgeBusiness:
		return m.clearedbusiness
	case box.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoxMutation) ClearEdge(name string) error {
	switch name {
	case box.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown Box unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoxMutation) ResetEdge(name string) error {
	switch name {
	case box.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case box.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Box edge %s", name)
}

// BusinessMutation represents an operation that mutates the Business nodes in the graph.
type BusinessMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	tax_id           *string
	default_currency *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	boxes            map[uuid.UUID]struct{}
	removedboxes     map[uuid.UUID]struct{}
	clearedboxes     bool
	done             bool
	oldValue         func(context.Context) (*Business, error)
	predicates       []predicate.Business
}

var _ ent.Mutation = (*BusinessMutation)(nil)

// businessOption allows management of the mutation configuration using functional options.
type businessOption func(*BusinessMutation)

// newBusinessMutation creates new mutation for the Business entity.
func newBusinessMutation(c config, op Op, opts ...businessOption) *BusinessMutation {
	m := &BusinessMutation{
		config:        c,
		op:            op,
		typ:           TypeBusiness,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessID sets the ID field of the mutation.
func withBusinessID(id uuid.UUID) businessOption {
	return func(m *BusinessMutation) {
		var (
			err   error
			once  sync.Once
			value *Business
		)
		m.oldValue = func(ctx context.Context) (*Business, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Business.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusiness sets the old Business of the mutation.
func withBusiness(node *Business) businessOption {
	return func(m *BusinessMutation) {
		m.oldValue = func(context.Context) (*Business, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Business entities.
func (m *BusinessMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Business.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BusinessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessMutation) ResetName() {
	m.name = nil
}

// SetTaxID sets the "tax_id" field.
func (m *BusinessMutation) SetTaxID(s string) {
	m.tax_id = &s
}

// TaxID returns the value of the "tax_id" field in the mutation.
func (m *BusinessMutation) TaxID() (r string, exists bool) {
	v := m.tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxID returns the old "tax_id" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldTaxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxID: %w", err)
	}
	return oldValue.TaxID, nil
}

// ClearTaxID clears the value of the "tax_id" field.
func (m *BusinessMutation) ClearTaxID() {
	m.tax_id = nil
	m.clearedFields[business.FieldTaxID] = struct{}{}
}

// TaxIDCleared returns if the "tax_id" field was cleared in this mutation.
func (m *BusinessMutation) TaxIDCleared() bool {
	_, ok := m.clearedFields[business.FieldTaxID]
	return ok
}

// ResetTaxID resets all changes to the "tax_id" field.
func (m *BusinessMutation) ResetTaxID() {
	m.tax_id = nil
	delete(m.clearedFields, business.FieldTaxID)
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *BusinessMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *BusinessMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *BusinessMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBoxIDs adds the "boxes" edge to the Box entity by ids.
func (m *BusinessMutation) AddBoxIDs(ids ...uuid.UUID) {
	if m.boxes == nil {
		m.boxes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.boxes[ids[i]] = struct{}{}
	}
}

// ClearBoxes clears the "boxes" edge to the Box entity.
func (m *BusinessMutation) ClearBoxes() {
	m.clearedboxes = true
}

// BoxesCleared reports if the "boxes" edge to the Box entity was cleared.
func (m *BusinessMutation) BoxesCleared() bool {
	return m.clearedboxes
}

// RemoveBoxIDs removes the "boxes" edge to the Box entity by IDs.
func (m *BusinessMutation) RemoveBoxIDs(ids ...uuid.UUID) {
	if m.removedboxes == nil {
		m.removedboxes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.boxes, ids[i])
		m.removedboxes[ids[i]] = struct{}{}
	}
}

// RemovedBoxes returns the removed IDs of the "boxes" edge to the Box entity.
func (m *BusinessMutation) RemovedBoxesIDs() (ids []uuid.UUID) {
	for id := range m.removedboxes {
		ids = append(ids, id)
	}
	return
}

// BoxesIDs returns the "boxes" edge IDs in the mutation.
func (m *BusinessMutation) BoxesIDs() (ids []uuid.UUID) {
	for id := range m.boxes {
		ids = append(ids, id)
	}
	return
}

// ResetBoxes resets all changes to the "boxes" edge.
func (m *BusinessMutation) ResetBoxes() {
	m.boxes = nil
	m.clearedboxes = false
	m.removedboxes = nil
}

// Where appends a list predicates to the BusinessMutation builder.
func (m *BusinessMutation) Where(ps ...predicate.Business) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Business, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Business).
func (m *BusinessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, business.FieldName)
	}
	if m.tax_id != nil {
		fields = append(fields, business.FieldTaxID)
	}
	if m.default_currency != nil {
		fields = append(fields, business.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, business.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, business.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case business.FieldName:
		return m.Name()
	case business.FieldTaxID:
		return m.TaxID()
	case business.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case business.FieldCreatedAt:
		return m.CreatedAt()
	case business.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case business.FieldName:
		return m.OldName(ctx)
	case business.FieldTaxID:
		return m.OldTaxID(ctx)
	case business.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case business.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case business.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Business field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case business.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case business.FieldTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxID(v)
		return nil
	case business.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case business.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case business.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Business numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(business.FieldTaxID) {
		fields = append(fields, business.FieldTaxID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessMutation) ClearField(name string) error {
	switch name {
	case business.FieldTaxID:
		m.ClearTaxID()
		return nil
	}
	return fmt.Errorf("unknown Business nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessMutation) ResetField(name string) error {
	switch name {
	case business.FieldName:
		m.ResetName()
		return nil
	case business.FieldTaxID:
		m.ResetTaxID()
		return nil
	case business.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case business.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case business.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.boxes != nil {
		edges = append(edges, business.EdgeBoxes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeBoxes:
		ids := make([]ent.Value, 0, len(m.boxes))
		for id := range m.boxes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedboxes != nil {
		edges = append(edges, business.EdgeBoxes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeBoxes:
		ids := make([]ent.Value, 0, len(m.removedboxes))
		for id := range m.removedboxes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedboxes {
		edges = append(edges, business.EdgeBoxes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessMutation) EdgeCleared(name string) bool {
	switch name {
	case business.EdgeBoxes:
		return m.clearedboxes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Business unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessMutation) ResetEdge(name string) error {
	switch name {
	case business.EdgeBoxes:
		m.ResetBoxes()
		return nil
	}
	return fmt.Errorf("unknown Business edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	doc_type        *string
	confidence      *float32
	addconfidence   *float32
	amount          *float64
	addamount       *float64
	vat_amount      *float64
	addvat_amount   *float64
	contact_name    *string
	document_date   *time.Time
	document_number *string
	tax_id          *string
	description     *string
	status          *string
	error_message   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Extraction, error)
	predicates      []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id uuid.UUID) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionMutation) ResetDocumentID() {
	m.document = nil
}

// SetDocType sets the "doc_type" field.
func (m *ExtractionMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *ExtractionMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *ExtractionMutation) ResetDocType() {
	m.doc_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetAmount sets the "amount" field.
func (m *ExtractionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ExtractionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ExtractionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ExtractionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *ExtractionMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[extraction.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *ExtractionMutation) AmountCleared() bool {
	_, ok := m.clearedFields[extraction.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *ExtractionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, extraction.FieldAmount)
}

// SetVatAmount sets the "vat_amount" field.
func (m *ExtractionMutation) SetVatAmount(f float64) {
	m.vat_amount = &f
	m.addvat_amount = nil
}

// VatAmount returns the value of the "vat_amount" field in the mutation.
func (m *ExtractionMutation) VatAmount() (r float64, exists bool) {
	v := m.vat_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmount returns the old "vat_amount" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldVatAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmount: %w", err)
	}
	return oldValue.VatAmount, nil
}

// AddVatAmount adds f to the "vat_amount" field.
func (m *ExtractionMutation) AddVatAmount(f float64) {
	if m.addvat_amount != nil {
		*m.addvat_amount += f
	} else {
		m.addvat_amount = &f
	}
}

// AddedVatAmount returns the value that was added to the "vat_amount" field in this mutation.
func (m *ExtractionMutation) AddedVatAmount() (r float64, exists bool) {
	v := m.addvat_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (m *ExtractionMutation) ClearVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	m.clearedFields[extraction.FieldVatAmount] = struct{}{}
}

// VatAmountCleared returns if the "vat_amount" field was cleared in this mutation.
func (m *ExtractionMutation) VatAmountCleared() bool {
	_, ok := m.clearedFields[extraction.FieldVatAmount]
	return ok
}

// ResetVatAmount resets all changes to the "vat_amount" field.
func (m *ExtractionMutation) ResetVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	delete(m.clearedFields, extraction.FieldVatAmount)
}

// SetContactName sets the "contact_name" field.
func (m *ExtractionMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *ExtractionMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *ExtractionMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[extraction.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *ExtractionMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[extraction.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *ExtractionMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, extraction.FieldContactName)
}

// SetDocumentDate sets the "document_date" field.
func (m *ExtractionMutation) SetDocumentDate(t time.Time) {
	m.document_date = &t
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *ExtractionMutation) DocumentDate() (r time.Time, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ClearDocumentDate clears the value of the "document_date" field.
func (m *ExtractionMutation) ClearDocumentDate() {
	m.document_date = nil
	m.clearedFields[extraction.FieldDocumentDate] = struct{}{}
}

// DocumentDateCleared returns if the "document_date" field was cleared in this mutation.
func (m *ExtractionMutation) DocumentDateCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDocumentDate]
	return ok
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *ExtractionMutation) ResetDocumentDate() {
	m.document_date = nil
	delete(m.clearedFields, extraction.FieldDocumentDate)
}

// SetDocumentNumber sets the "document_number" field.
func (m *ExtractionMutation) SetDocumentNumber(s string) {
	m.document_number = &s
}

// DocumentNumber returns the value of the "document_number" field in the mutation.
func (m *ExtractionMutation) DocumentNumber() (r string, exists bool) {
	v := m.document_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentNumber returns the old "document_number" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentNumber: %w", err)
	}
	return oldValue.DocumentNumber, nil
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (m *ExtractionMutation) ClearDocumentNumber() {
	m.document_number = nil
	m.clearedFields[extraction.FieldDocumentNumber] = struct{}{}
}

// DocumentNumberCleared returns if the "document_number" field was cleared in this mutation.
func (m *ExtractionMutation) DocumentNumberCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDocumentNumber]
	return ok
}

// ResetDocumentNumber resets all changes to the "document_number" field.
func (m *ExtractionMutation) ResetDocumentNumber() {
	m.document_number = nil
	delete(m.clearedFields, extraction.FieldDocumentNumber)
}

// SetTaxID sets the "tax_id" field.
func (m *ExtractionMutation) SetTaxID(s string) {
	m.tax_id = &s
}

// TaxID returns the value of the "tax_id" field in the mutation.
func (m *ExtractionMutation) TaxID() (r string, exists bool) {
	v := m.tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxID returns the old "tax_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTaxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxID: %w", err)
	}
	return oldValue.TaxID, nil
}

// ClearTaxID clears the value of the "tax_id" field.
func (m *ExtractionMutation) ClearTaxID() {
	m.tax_id = nil
	m.clearedFields[extraction.FieldTaxID] = struct{}{}
}

// TaxIDCleared returns if the "tax_id" field was cleared in this mutation.
func (m *ExtractionMutation) TaxIDCleared() bool {
	_, ok := m.clearedFields[extraction.FieldTaxID]
	return ok
}

// ResetTaxID resets all changes to the "tax_id" field.
func (m *ExtractionMutation) ResetTaxID() {
	m.tax_id = nil
	delete(m.clearedFields, extraction.FieldTaxID)
}

// SetDescription sets the "description" field.
func (m *ExtractionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extraction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extraction.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ExtractionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extraction.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the AttachedDocument entity.
func (m *ExtractionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extraction.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the AttachedDocument entity was cleared.
func (m *ExtractionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.document != nil {
		fields = append(fields, extraction.FieldDocumentID)
	}
	if m.doc_type != nil {
		fields = append(fields, extraction.FieldDocType)
	}
	if m.confidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.amount != nil {
		fields = append(fields, extraction.FieldAmount)
	}
	if m.vat_amount != nil {
		fields = append(fields, extraction.FieldVatAmount)
	}
	if m.contact_name != nil {
		fields = append(fields, extraction.FieldContactName)
	}
	if m.document_date != nil {
		fields = append(fields, extraction.FieldDocumentDate)
	}
	if m.document_number != nil {
		fields = append(fields, extraction.FieldDocumentNumber)
	}
	if m.tax_id != nil {
		fields = append(fields, extraction.FieldTaxID)
	}
	if m.description != nil {
		fields = append(fields, extraction.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, extraction.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldDocumentID:
		return m.DocumentID()
	case extraction.FieldDocType:
		return m.DocType()
	case extraction.FieldConfidence:
		return m.Confidence()
	case extraction.FieldAmount:
		return m.Amount()
	case extraction.FieldVatAmount:
		return m.VatAmount()
	case extraction.FieldContactName:
		return m.ContactName()
	case extraction.FieldDocumentDate:
		return m.DocumentDate()
	case extraction.FieldDocumentNumber:
		return m.DocumentNumber()
	case extraction.FieldTaxID:
		return m.TaxID()
	case extraction.FieldDescription:
		return m.Description()
	case extraction.FieldStatus:
		return m.Status()
	case extraction.FieldErrorMessage:
		return m.ErrorMessage()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extraction.FieldDocType:
		return m.OldDocType(ctx)
	case extraction.FieldConfidence:
		return m.OldConfidence(ctx)
	case extraction.FieldAmount:
		return m.OldAmount(ctx)
	case extraction.FieldVatAmount:
		return m.OldVatAmount(ctx)
	case extraction.FieldContactName:
		return m.OldContactName(ctx)
	case extraction.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	case extraction.FieldDocumentNumber:
		return m.OldDocumentNumber(ctx)
	case extraction.FieldTaxID:
		return m.OldTaxID(ctx)
	case extraction.FieldDescription:
		return m.OldDescription(ctx)
	case extraction.FieldStatus:
		return m.OldStatus(ctx)
	case extraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extraction.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case extraction.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extraction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case extraction.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmount(v)
		return nil
	case extraction.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case extraction.FieldDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	case extraction.FieldDocumentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentNumber(v)
		return nil
	case extraction.FieldTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxID(v)
		return nil
	case extraction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extraction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.addamount != nil {
		fields = append(fields, extraction.FieldAmount)
	}
	if m.addvat_amount != nil {
		fields = append(fields, extraction.FieldVatAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldConfidence:
		return m.AddedConfidence()
	case extraction.FieldAmount:
		return m.AddedAmount()
	case extraction.FieldVatAmount:
		return m.AddedVatAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extraction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case extraction.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldAmount) {
		fields = append(fields, extraction.FieldAmount)
	}
	if m.FieldCleared(extraction.FieldVatAmount) {
		fields = append(fields, extraction.FieldVatAmount)
	}
	if m.FieldCleared(extraction.FieldContactName) {
		fields = append(fields, extraction.FieldContactName)
	}
	if m.FieldCleared(extraction.FieldDocumentDate) {
		fields = append(fields, extraction.FieldDocumentDate)
	}
	if m.FieldCleared(extraction.FieldDocumentNumber) {
		fields = append(fields, extraction.FieldDocumentNumber)
	}
	if m.FieldCleared(extraction.FieldTaxID) {
		fields = append(fields, extraction.FieldTaxID)
	}
	if m.FieldCleared(extraction.FieldDescription) {
		fields = append(fields, extraction.FieldDescription)
	}
	if m.FieldCleared(extraction.FieldErrorMessage) {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldAmount:
		m.ClearAmount()
		return nil
	case extraction.FieldVatAmount:
		m.ClearVatAmount()
		return nil
	case extraction.FieldContactName:
		m.ClearContactName()
		return nil
	case extraction.FieldDocumentDate:
		m.ClearDocumentDate()
		return nil
	case extraction.FieldDocumentNumber:
		m.ClearDocumentNumber()
		return nil
	case extraction.FieldTaxID:
		m.ClearTaxID()
		return nil
	case extraction.FieldDescription:
		m.ClearDescription()
		return nil
	case extraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extraction.FieldDocType:
		m.ResetDocType()
		return nil
	case extraction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extraction.FieldAmount:
		m.ResetAmount()
		return nil
	case extraction.FieldVatAmount:
		m.ResetVatAmount()
		return nil
	case extraction.FieldContactName:
		m.ResetContactName()
		return nil
	case extraction.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	case extraction.FieldDocumentNumber:
		m.ResetDocumentNumber()
		return nil
	case extraction.FieldTaxID:
		m.ResetTaxID()
		return nil
	case extraction.FieldDescription:
		m.ResetDescription()
		return nil
	case extraction.FieldStatus:
		m.ResetStatus()
		return nil
	case extraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extraction.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extraction.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// FieldOverrideMutation represents an operation that mutates the FieldOverride nodes in the graph.
type FieldOverrideMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	box_id        *uuid.UUID
	field_name    *string
	value         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FieldOverride, error)
	predicates    []predicate.FieldOverride
}

var _ ent.Mutation = (*FieldOverrideMutation)(nil)

// fieldoverrideOption allows management of the mutation configuration using functional options.
type fieldoverrideOption func(*FieldOverrideMutation)

// newFieldOverrideMutation creates new mutation for the FieldOverride entity.
func newFieldOverrideMutation(c config, op Op, opts ...fieldoverrideOption) *FieldOverrideMutation {
	m := &FieldOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldOverrideID sets the ID field of the mutation.
func withFieldOverrideID(id uuid.UUID) fieldoverrideOption {
	return func(m *FieldOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldOverride
		)
		m.oldValue = func(ctx context.Context) (*FieldOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldOverride sets the old FieldOverride of the mutation.
func withFieldOverride(node *FieldOverride) fieldoverrideOption {
	return func(m *FieldOverrideMutation) {
		m.oldValue = func(context.Context) (*FieldOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldOverride entities.
func (m *FieldOverrideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldOverrideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldOverrideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBoxID sets the "box_id" field.
func (m *FieldOverrideMutation) SetBoxID(u uuid.UUID) {
	m.box_id = &u
}

// BoxID returns the value of the "box_id" field in the mutation.
func (m *FieldOverrideMutation) BoxID() (r uuid.UUID, exists bool) {
	v := m.box_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxID returns the old "box_id" field's value of the FieldOverride entity.
// If the FieldOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldOverrideMutation) OldBoxID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxID: %w", err)
	}
	return oldValue.BoxID, nil
}

// ResetBoxID resets all changes to the "box_id" field.
func (m *FieldOverrideMutation) ResetBoxID() {
	m.box_id = nil
}

// SetFieldName sets the "field_name" field.
func (m *FieldOverrideMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *FieldOverrideMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the FieldOverride entity.
// If the FieldOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldOverrideMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *FieldOverrideMutation) ResetFieldName() {
	m.field_name = nil
}

// SetValue sets the "value" field.
func (m *FieldOverrideMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *FieldOverrideMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the FieldOverride entity.
// If the FieldOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldOverrideMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *FieldOverrideMutation) ResetValue() {
	m.value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldOverride entity.
// If the FieldOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FieldOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FieldOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FieldOverride entity.
// If the FieldOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FieldOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FieldOverrideMutation builder.
func (m *FieldOverrideMutation) Where(ps ...predicate.FieldOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldOverride).
func (m *FieldOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldOverrideMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.box_id != nil {
		fields = append(fields, fieldoverride.FieldBoxID)
	}
	if m.field_name != nil {
		fields = append(fields, fieldoverride.FieldFieldName)
	}
	if m.value != nil {
		fields = append(fields, fieldoverride.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, fieldoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fieldoverride.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldoverride.FieldBoxID:
		return m.BoxID()
	case fieldoverride.FieldFieldName:
		return m.FieldName()
	case fieldoverride.FieldValue:
		return m.Value()
	case fieldoverride.FieldCreatedAt:
		return m.CreatedAt()
	case fieldoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldoverride.FieldBoxID:
		return m.OldBoxID(ctx)
	case fieldoverride.FieldFieldName:
		return m.OldFieldName(ctx)
	case fieldoverride.FieldValue:
		return m.OldValue(ctx)
	case fieldoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fieldoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldoverride.FieldBoxID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxID(v)
		return nil
	case fieldoverride.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case fieldoverride.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case fieldoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fieldoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldOverrideMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldOverrideMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldOverrideMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldOverrideMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FieldOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldOverrideMutation) ResetField(name string) error {
	switch name {
	case fieldoverride.FieldBoxID:
		m.ResetBoxID()
		return nil
	case fieldoverride.FieldFieldName:
		m.ResetFieldName()
		return nil
	case fieldoverride.FieldValue:
		m.ResetValue()
		return nil
	case fieldoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fieldoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldOverrideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldOverrideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldOverrideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FieldOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldOverrideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FieldOverride edge %s", name)
}
