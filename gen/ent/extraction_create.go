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
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionCreate) SetDocumentID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *ExtractionCreate) SetDocType(v string) *ExtractionCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionCreate) SetConfidence(v float32) *ExtractionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableConfidence(v *float32) *ExtractionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExtractionCreate) SetAmount(v float64) *ExtractionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableAmount(v *float64) *ExtractionCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetVatAmount sets the "vat_amount" field.
func (_c *ExtractionCreate) SetVatAmount(v float64) *ExtractionCreate {
	_c.mutation.SetVatAmount(v)
	return _c
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableVatAmount(v *float64) *ExtractionCreate {
	if v != nil {
		_c.SetVatAmount(*v)
	}
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *ExtractionCreate) SetContactName(v string) *ExtractionCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableContactName(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetDocumentDate sets the "document_date" field.
func (_c *ExtractionCreate) SetDocumentDate(v time.Time) *ExtractionCreate {
	_c.mutation.SetDocumentDate(v)
	return _c
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDocumentDate(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetDocumentDate(*v)
	}
	return _c
}

// SetDocumentNumber sets the "document_number" field.
func (_c *ExtractionCreate) SetDocumentNumber(v string) *ExtractionCreate {
	_c.mutation.SetDocumentNumber(v)
	return _c
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDocumentNumber(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetDocumentNumber(*v)
	}
	return _c
}

// SetTaxID sets the "tax_id" field.
func (_c *ExtractionCreate) SetTaxID(v string) *ExtractionCreate {
	_c.mutation.SetTaxID(v)
	return _c
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableTaxID(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetTaxID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractionCreate) SetDescription(v string) *ExtractionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDescription(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionCreate) SetStatus(v string) *ExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableStatus(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionCreate) SetErrorMessage(v string) *ExtractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableErrorMessage(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCreate) SetID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableID(v *uuid.UUID) *ExtractionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the AttachedDocument entity.
func (_c *ExtractionCreate) SetDocument(v *AttachedDocument) *ExtractionCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extraction.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extraction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extraction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Extraction.document_id"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Extraction.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := extraction.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Extraction.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := extraction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Extraction.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Extraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Extraction.document"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(extraction.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(extraction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.VatAmount(); ok {
		_spec.SetField(extraction.FieldVatAmount, field.TypeFloat64, value)
		_node.VatAmount = &value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(extraction.FieldContactName, field.TypeString, value)
		_node.ContactName = &value
	}
	if value, ok := _c.mutation.DocumentDate(); ok {
		_spec.SetField(extraction.FieldDocumentDate, field.TypeTime, value)
		_node.DocumentDate = &value
	}
	if value, ok := _c.mutation.DocumentNumber(); ok {
		_spec.SetField(extraction.FieldDocumentNumber, field.TypeString, value)
		_node.DocumentNumber = &value
	}
	if value, ok := _c.mutation.TaxID(); ok {
		_spec.SetField(extraction.FieldTaxID, field.TypeString, value)
		_node.TaxID = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extraction.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.DocumentTable,
			Columns: []string{extraction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertOne {
	_c.conflict = opts
	return &ExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflictColumns(columns ...string) *ExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionUpsertOne is the builder for "upsert"-ing
	//  one Extraction node.
	ExtractionUpsertOne struct {
		create *ExtractionCreate
	}

	// ExtractionUpsert is the "OnConflict" setter.
	ExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsert) SetDocumentID(v uuid.UUID) *ExtractionUpsert {
	u.Set(extraction.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDocumentID() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDocumentID)
	return u
}

// SetDocType sets the "doc_type" field.
func (u *ExtractionUpsert) SetDocType(v string) *ExtractionUpsert {
	u.Set(extraction.FieldDocType, v)
	return u
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDocType() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDocType)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ExtractionUpsert) SetConfidence(v float32) *ExtractionUpsert {
	u.Set(extraction.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateConfidence() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ExtractionUpsert) AddConfidence(v float32) *ExtractionUpsert {
	u.Add(extraction.FieldConfidence, v)
	return u
}

// SetAmount sets the "amount" field.
func (u *ExtractionUpsert) SetAmount(v float64) *ExtractionUpsert {
	u.Set(extraction.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateAmount() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *ExtractionUpsert) AddAmount(v float64) *ExtractionUpsert {
	u.Add(extraction.FieldAmount, v)
	return u
}

// ClearAmount clears the value of the "amount" field.
func (u *ExtractionUpsert) ClearAmount() *ExtractionUpsert {
	u.SetNull(extraction.FieldAmount)
	return u
}

// SetVatAmount sets the "vat_amount" field.
func (u *ExtractionUpsert) SetVatAmount(v float64) *ExtractionUpsert {
	u.Set(extraction.FieldVatAmount, v)
	return u
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateVatAmount() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldVatAmount)
	return u
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *ExtractionUpsert) AddVatAmount(v float64) *ExtractionUpsert {
	u.Add(extraction.FieldVatAmount, v)
	return u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (u *ExtractionUpsert) ClearVatAmount() *ExtractionUpsert {
	u.SetNull(extraction.FieldVatAmount)
	return u
}

// SetContactName sets the "contact_name" field.
func (u *ExtractionUpsert) SetContactName(v string) *ExtractionUpsert {
	u.Set(extraction.FieldContactName, v)
	return u
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateContactName() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldContactName)
	return u
}

// ClearContactName clears the value of the "contact_name" field.
func (u *ExtractionUpsert) ClearContactName() *ExtractionUpsert {
	u.SetNull(extraction.FieldContactName)
	return u
}

// SetDocumentDate sets the "document_date" field.
func (u *ExtractionUpsert) SetDocumentDate(v time.Time) *ExtractionUpsert {
	u.Set(extraction.FieldDocumentDate, v)
	return u
}

// UpdateDocumentDate sets the "document_date" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDocumentDate() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDocumentDate)
	return u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (u *ExtractionUpsert) ClearDocumentDate() *ExtractionUpsert {
	u.SetNull(extraction.FieldDocumentDate)
	return u
}

// SetDocumentNumber sets the "document_number" field.
func (u *ExtractionUpsert) SetDocumentNumber(v string) *ExtractionUpsert {
	u.Set(extraction.FieldDocumentNumber, v)
	return u
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDocumentNumber() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDocumentNumber)
	return u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *ExtractionUpsert) ClearDocumentNumber() *ExtractionUpsert {
	u.SetNull(extraction.FieldDocumentNumber)
	return u
}

// SetTaxID sets the "tax_id" field.
func (u *ExtractionUpsert) SetTaxID(v string) *ExtractionUpsert {
	u.Set(extraction.FieldTaxID, v)
	return u
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateTaxID() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldTaxID)
	return u
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *ExtractionUpsert) ClearTaxID() *ExtractionUpsert {
	u.SetNull(extraction.FieldTaxID)
	return u
}

// SetDescription sets the "description" field.
func (u *ExtractionUpsert) SetDescription(v string) *ExtractionUpsert {
	u.Set(extraction.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDescription() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionUpsert) ClearDescription() *ExtractionUpsert {
	u.SetNull(extraction.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsert) SetStatus(v string) *ExtractionUpsert {
	u.Set(extraction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateStatus() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionUpsert) SetErrorMessage(v string) *ExtractionUpsert {
	u.Set(extraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateErrorMessage() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionUpsert) ClearErrorMessage() *ExtractionUpsert {
	u.SetNull(extraction.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertOne) UpdateNewValues() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extraction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionUpsertOne) Ignore() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertOne) DoNothing() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreate.OnConflict
// documentation for more info.
func (u *ExtractionUpsertOne) Update(set func(*ExtractionUpsert)) *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsertOne) SetDocumentID(v uuid.UUID) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDocumentID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentID()
	})
}

// SetDocType sets the "doc_type" field.
func (u *ExtractionUpsertOne) SetDocType(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDocType() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ExtractionUpsertOne) SetConfidence(v float32) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ExtractionUpsertOne) AddConfidence(v float32) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateConfidence() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateConfidence()
	})
}

// SetAmount sets the "amount" field.
func (u *ExtractionUpsertOne) SetAmount(v float64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExtractionUpsertOne) AddAmount(v float64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateAmount() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateAmount()
	})
}

// ClearAmount clears the value of the "amount" field.
func (u *ExtractionUpsertOne) ClearAmount() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearAmount()
	})
}

// SetVatAmount sets the "vat_amount" field.
func (u *ExtractionUpsertOne) SetVatAmount(v float64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetVatAmount(v)
	})
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *ExtractionUpsertOne) AddVatAmount(v float64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddVatAmount(v)
	})
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateVatAmount() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateVatAmount()
	})
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (u *ExtractionUpsertOne) ClearVatAmount() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearVatAmount()
	})
}

// SetContactName sets the "contact_name" field.
func (u *ExtractionUpsertOne) SetContactName(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateContactName() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *ExtractionUpsertOne) ClearContactName() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearContactName()
	})
}

// SetDocumentDate sets the "document_date" field.
func (u *ExtractionUpsertOne) SetDocumentDate(v time.Time) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentDate(v)
	})
}

// UpdateDocumentDate sets the "document_date" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDocumentDate() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentDate()
	})
}

// ClearDocumentDate clears the value of the "document_date" field.
func (u *ExtractionUpsertOne) ClearDocumentDate() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDocumentDate()
	})
}

// SetDocumentNumber sets the "document_number" field.
func (u *ExtractionUpsertOne) SetDocumentNumber(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentNumber(v)
	})
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDocumentNumber() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentNumber()
	})
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *ExtractionUpsertOne) ClearDocumentNumber() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDocumentNumber()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *ExtractionUpsertOne) SetTaxID(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateTaxID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTaxID()
	})
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *ExtractionUpsertOne) ClearTaxID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearTaxID()
	})
}

// SetDescription sets the "description" field.
func (u *ExtractionUpsertOne) SetDescription(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDescription() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionUpsertOne) ClearDescription() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertOne) SetStatus(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateStatus() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionUpsertOne) SetErrorMessage(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateErrorMessage() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionUpsertOne) ClearErrorMessage() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionUpsertOne.ID is not supported by MySQL driver. Use ExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertBulk {
	_c.conflict = opts
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflictColumns(columns ...string) *ExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// ExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Extraction nodes.
type ExtractionUpsertBulk struct {
	create *ExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) UpdateNewValues() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extraction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) Ignore() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertBulk) DoNothing() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionUpsertBulk) Update(set func(*ExtractionUpsert)) *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsertBulk) SetDocumentID(v uuid.UUID) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDocumentID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentID()
	})
}

// SetDocType sets the "doc_type" field.
func (u *ExtractionUpsertBulk) SetDocType(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDocType() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ExtractionUpsertBulk) SetConfidence(v float32) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ExtractionUpsertBulk) AddConfidence(v float32) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateConfidence() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateConfidence()
	})
}

// SetAmount sets the "amount" field.
func (u *ExtractionUpsertBulk) SetAmount(v float64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExtractionUpsertBulk) AddAmount(v float64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateAmount() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateAmount()
	})
}

// ClearAmount clears the value of the "amount" field.
func (u *ExtractionUpsertBulk) ClearAmount() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearAmount()
	})
}

// SetVatAmount sets the "vat_amount" field.
func (u *ExtractionUpsertBulk) SetVatAmount(v float64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetVatAmount(v)
	})
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *ExtractionUpsertBulk) AddVatAmount(v float64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddVatAmount(v)
	})
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateVatAmount() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateVatAmount()
	})
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (u *ExtractionUpsertBulk) ClearVatAmount() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearVatAmount()
	})
}

// SetContactName sets the "contact_name" field.
func (u *ExtractionUpsertBulk) SetContactName(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateContactName() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *ExtractionUpsertBulk) ClearContactName() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearContactName()
	})
}

// SetDocumentDate sets the "document_date" field.
func (u *ExtractionUpsertBulk) SetDocumentDate(v time.Time) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentDate(v)
	})
}

// UpdateDocumentDate sets the "document_date" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDocumentDate() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentDate()
	})
}

// ClearDocumentDate clears the value of the "document_date" field.
func (u *ExtractionUpsertBulk) ClearDocumentDate() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDocumentDate()
	})
}

// SetDocumentNumber sets the "document_number" field.
func (u *ExtractionUpsertBulk) SetDocumentNumber(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentNumber(v)
	})
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDocumentNumber() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentNumber()
	})
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *ExtractionUpsertBulk) ClearDocumentNumber() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDocumentNumber()
	})
}

// SetTaxID sets the "tax_id" field.
func (u *ExtractionUpsertBulk) SetTaxID(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTaxID(v)
	})
}

// UpdateTaxID sets the "tax_id" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateTaxID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTaxID()
	})
}

// ClearTaxID clears the value of the "tax_id" field.
func (u *ExtractionUpsertBulk) ClearTaxID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearTaxID()
	})
}

// SetDescription sets the "description" field.
func (u *ExtractionUpsertBulk) SetDescription(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDescription() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExtractionUpsertBulk) ClearDescription() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertBulk) SetStatus(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateStatus() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionUpsertBulk) SetErrorMessage(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateErrorMessage() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionUpsertBulk) ClearErrorMessage() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
