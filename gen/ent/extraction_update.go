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
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionUpdate) SetDocumentID(v uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ExtractionUpdate) SetDocType(v string) *ExtractionUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDocType(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdate) SetConfidence(v float32) *ExtractionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableConfidence(v *float32) *ExtractionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdate) AddConfidence(v float32) *ExtractionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExtractionUpdate) SetAmount(v float64) *ExtractionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableAmount(v *float64) *ExtractionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExtractionUpdate) AddAmount(v float64) *ExtractionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ExtractionUpdate) ClearAmount() *ExtractionUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *ExtractionUpdate) SetVatAmount(v float64) *ExtractionUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableVatAmount(v *float64) *ExtractionUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *ExtractionUpdate) AddVatAmount(v float64) *ExtractionUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *ExtractionUpdate) ClearVatAmount() *ExtractionUpdate {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *ExtractionUpdate) SetContactName(v string) *ExtractionUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableContactName(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *ExtractionUpdate) ClearContactName() *ExtractionUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *ExtractionUpdate) SetDocumentDate(v time.Time) *ExtractionUpdate {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDocumentDate(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *ExtractionUpdate) ClearDocumentDate() *ExtractionUpdate {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *ExtractionUpdate) SetDocumentNumber(v string) *ExtractionUpdate {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDocumentNumber(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *ExtractionUpdate) ClearDocumentNumber() *ExtractionUpdate {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *ExtractionUpdate) SetTaxID(v string) *ExtractionUpdate {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTaxID(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *ExtractionUpdate) ClearTaxID() *ExtractionUpdate {
	_u.mutation.ClearTaxID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionUpdate) SetDescription(v string) *ExtractionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDescription(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionUpdate) ClearDescription() *ExtractionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdate) SetStatus(v string) *ExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStatus(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdate) SetErrorMessage(v string) *ExtractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableErrorMessage(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdate) ClearErrorMessage() *ExtractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocument sets the "document" edge to the AttachedDocument entity.
func (_u *ExtractionUpdate) SetDocument(v *AttachedDocument) *ExtractionUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the AttachedDocument entity.
func (_u *ExtractionUpdate) ClearDocument() *ExtractionUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := extraction.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := extraction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Extraction.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.document"`)
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(extraction.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(extraction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(extraction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(extraction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(extraction.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(extraction.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(extraction.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(extraction.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(extraction.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(extraction.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(extraction.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(extraction.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(extraction.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(extraction.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(extraction.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extraction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extraction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ExtractionUpdateOne) SetDocType(v string) *ExtractionUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDocType(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdateOne) SetConfidence(v float32) *ExtractionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableConfidence(v *float32) *ExtractionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdateOne) AddConfidence(v float32) *ExtractionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExtractionUpdateOne) SetAmount(v float64) *ExtractionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableAmount(v *float64) *ExtractionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExtractionUpdateOne) AddAmount(v float64) *ExtractionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ExtractionUpdateOne) ClearAmount() *ExtractionUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *ExtractionUpdateOne) SetVatAmount(v float64) *ExtractionUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableVatAmount(v *float64) *ExtractionUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *ExtractionUpdateOne) AddVatAmount(v float64) *ExtractionUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *ExtractionUpdateOne) ClearVatAmount() *ExtractionUpdateOne {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *ExtractionUpdateOne) SetContactName(v string) *ExtractionUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableContactName(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *ExtractionUpdateOne) ClearContactName() *ExtractionUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *ExtractionUpdateOne) SetDocumentDate(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDocumentDate(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *ExtractionUpdateOne) ClearDocumentDate() *ExtractionUpdateOne {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *ExtractionUpdateOne) SetDocumentNumber(v string) *ExtractionUpdateOne {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDocumentNumber(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *ExtractionUpdateOne) ClearDocumentNumber() *ExtractionUpdateOne {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *ExtractionUpdateOne) SetTaxID(v string) *ExtractionUpdateOne {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTaxID(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *ExtractionUpdateOne) ClearTaxID() *ExtractionUpdateOne {
	_u.mutation.ClearTaxID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionUpdateOne) SetDescription(v string) *ExtractionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDescription(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionUpdateOne) ClearDescription() *ExtractionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdateOne) SetStatus(v string) *ExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStatus(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdateOne) SetErrorMessage(v string) *ExtractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableErrorMessage(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdateOne) ClearErrorMessage() *ExtractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocument sets the "document" edge to the AttachedDocument entity.
func (_u *ExtractionUpdateOne) SetDocument(v *AttachedDocument) *ExtractionUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the AttachedDocument entity.
func (_u *ExtractionUpdateOne) ClearDocument() *ExtractionUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := extraction.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := extraction.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Extraction.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.document"`)
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(extraction.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(extraction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(extraction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(extraction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(extraction.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(extraction.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(extraction.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(extraction.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(extraction.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(extraction.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(extraction.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(extraction.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(extraction.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(extraction.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(extraction.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extraction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extraction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
