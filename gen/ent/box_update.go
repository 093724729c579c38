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
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// BoxUpdate is the builder for updating Box entities.
type BoxUpdate struct {
	config
	hooks    []Hook
	mutation *BoxMutation
}

// Where appends a list predicates to the BoxUpdate builder.
func (_u *BoxUpdate) Where(ps ...predicate.Box) *BoxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BoxUpdate) SetBusinessID(v uuid.UUID) *BoxUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableBusinessID(v *uuid.UUID) *BoxUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBoxType sets the "box_type" field.
func (_u *BoxUpdate) SetBoxType(v string) *BoxUpdate {
	_u.mutation.SetBoxType(v)
	return _u
}

// SetNillableBoxType sets the "box_type" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableBoxType(v *string) *BoxUpdate {
	if v != nil {
		_u.SetBoxType(*v)
	}
	return _u
}

// SetExpenseType sets the "expense_type" field.
func (_u *BoxUpdate) SetExpenseType(v string) *BoxUpdate {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableExpenseType(v *string) *BoxUpdate {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// ClearExpenseType clears the value of the "expense_type" field.
func (_u *BoxUpdate) ClearExpenseType() *BoxUpdate {
	_u.mutation.ClearExpenseType()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *BoxUpdate) SetContactName(v string) *BoxUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableContactName(v *string) *BoxUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *BoxUpdate) ClearContactName() *BoxUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactTaxID sets the "contact_tax_id" field.
func (_u *BoxUpdate) SetContactTaxID(v string) *BoxUpdate {
	_u.mutation.SetContactTaxID(v)
	return _u
}

// SetNillableContactTaxID sets the "contact_tax_id" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableContactTaxID(v *string) *BoxUpdate {
	if v != nil {
		_u.SetContactTaxID(*v)
	}
	return _u
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (_u *BoxUpdate) ClearContactTaxID() *BoxUpdate {
	_u.mutation.ClearContactTaxID()
	return _u
}

// SetBoxDate sets the "box_date" field.
func (_u *BoxUpdate) SetBoxDate(v time.Time) *BoxUpdate {
	_u.mutation.SetBoxDate(v)
	return _u
}

// SetNillableBoxDate sets the "box_date" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableBoxDate(v *time.Time) *BoxUpdate {
	if v != nil {
		_u.SetBoxDate(*v)
	}
	return _u
}

// SetHasVat sets the "has_vat" field.
func (_u *BoxUpdate) SetHasVat(v bool) *BoxUpdate {
	_u.mutation.SetHasVat(v)
	return _u
}

// SetNillableHasVat sets the "has_vat" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableHasVat(v *bool) *BoxUpdate {
	if v != nil {
		_u.SetHasVat(*v)
	}
	return _u
}

// SetHasWht sets the "has_wht" field.
func (_u *BoxUpdate) SetHasWht(v bool) *BoxUpdate {
	_u.mutation.SetHasWht(v)
	return _u
}

// SetNillableHasWht sets the "has_wht" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableHasWht(v *bool) *BoxUpdate {
	if v != nil {
		_u.SetHasWht(*v)
	}
	return _u
}

// SetWhtRate sets the "wht_rate" field.
func (_u *BoxUpdate) SetWhtRate(v float64) *BoxUpdate {
	_u.mutation.ResetWhtRate()
	_u.mutation.SetWhtRate(v)
	return _u
}

// SetNillableWhtRate sets the "wht_rate" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableWhtRate(v *float64) *BoxUpdate {
	if v != nil {
		_u.SetWhtRate(*v)
	}
	return _u
}

// AddWhtRate adds value to the "wht_rate" field.
func (_u *BoxUpdate) AddWhtRate(v float64) *BoxUpdate {
	_u.mutation.AddWhtRate(v)
	return _u
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (_u *BoxUpdate) ClearWhtRate() *BoxUpdate {
	_u.mutation.ClearWhtRate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *BoxUpdate) SetTotalAmount(v float64) *BoxUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableTotalAmount(v *float64) *BoxUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *BoxUpdate) AddTotalAmount(v float64) *BoxUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *BoxUpdate) SetVatAmount(v float64) *BoxUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableVatAmount(v *float64) *BoxUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *BoxUpdate) AddVatAmount(v float64) *BoxUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// SetWhtAmount sets the "wht_amount" field.
func (_u *BoxUpdate) SetWhtAmount(v float64) *BoxUpdate {
	_u.mutation.ResetWhtAmount()
	_u.mutation.SetWhtAmount(v)
	return _u
}

// SetNillableWhtAmount sets the "wht_amount" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableWhtAmount(v *float64) *BoxUpdate {
	if v != nil {
		_u.SetWhtAmount(*v)
	}
	return _u
}

// AddWhtAmount adds value to the "wht_amount" field.
func (_u *BoxUpdate) AddWhtAmount(v float64) *BoxUpdate {
	_u.mutation.AddWhtAmount(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BoxUpdate) SetPaymentStatus(v string) *BoxUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BoxUpdate) SetNillablePaymentStatus(v *string) *BoxUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (_u *BoxUpdate) SetNoReceiptReason(v string) *BoxUpdate {
	_u.mutation.SetNoReceiptReason(v)
	return _u
}

// SetNillableNoReceiptReason sets the "no_receipt_reason" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableNoReceiptReason(v *string) *BoxUpdate {
	if v != nil {
		_u.SetNoReceiptReason(*v)
	}
	return _u
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (_u *BoxUpdate) ClearNoReceiptReason() *BoxUpdate {
	_u.mutation.ClearNoReceiptReason()
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *BoxUpdate) SetIsPaid(v bool) *BoxUpdate {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableIsPaid(v *bool) *BoxUpdate {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetWhtSent sets the "wht_sent" field.
func (_u *BoxUpdate) SetWhtSent(v bool) *BoxUpdate {
	_u.mutation.SetWhtSent(v)
	return _u
}

// SetNillableWhtSent sets the "wht_sent" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableWhtSent(v *bool) *BoxUpdate {
	if v != nil {
		_u.SetWhtSent(*v)
	}
	return _u
}

// SetDocStatus sets the "doc_status" field.
func (_u *BoxUpdate) SetDocStatus(v string) *BoxUpdate {
	_u.mutation.SetDocStatus(v)
	return _u
}

// SetNillableDocStatus sets the "doc_status" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableDocStatus(v *string) *BoxUpdate {
	if v != nil {
		_u.SetDocStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BoxUpdate) SetCreatedAt(v time.Time) *BoxUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BoxUpdate) SetNillableCreatedAt(v *time.Time) *BoxUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BoxUpdate) SetUpdatedAt(v time.Time) *BoxUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BoxUpdate) SetBusiness(v *Business) *BoxUpdate {
	return _u.SetBusinessID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the AttachedDocument entity by IDs.
func (_u *BoxUpdate) AddDocumentIDs(ids ...uuid.UUID) *BoxUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the AttachedDocument entity.
func (_u *BoxUpdate) AddDocuments(v ...*AttachedDocument) *BoxUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the BoxMutation object of the builder.
func (_u *BoxUpdate) Mutation() *BoxMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BoxUpdate) ClearBusiness() *BoxUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearDocuments clears all "documents" edges to the AttachedDocument entity.
func (_u *BoxUpdate) ClearDocuments() *BoxUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to AttachedDocument entities by IDs.
func (_u *BoxUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *BoxUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to AttachedDocument entities.
func (_u *BoxUpdate) RemoveDocuments(v ...*AttachedDocument) *BoxUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BoxUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BoxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoxUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := box.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoxUpdate) check() error {
	if v, ok := _u.mutation.BoxType(); ok {
		if err := box.BoxTypeValidator(v); err != nil {
			return &ValidationError{Name: "box_type", err: fmt.Errorf(`ent: validator failed for field "Box.box_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpenseType(); ok {
		if err := box.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`ent: validator failed for field "Box.expense_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := box.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Box.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NoReceiptReason(); ok {
		if err := box.NoReceiptReasonValidator(v); err != nil {
			return &ValidationError{Name: "no_receipt_reason", err: fmt.Errorf(`ent: validator failed for field "Box.no_receipt_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocStatus(); ok {
		if err := box.DocStatusValidator(v); err != nil {
			return &ValidationError{Name: "doc_status", err: fmt.Errorf(`ent: validator failed for field "Box.doc_status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Box.business"`)
	}
	return nil
}

func (_u *BoxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(box.Table, box.Columns, sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BoxType(); ok {
		_spec.SetField(box.FieldBoxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(box.FieldExpenseType, field.TypeString, value)
	}
	if _u.mutation.ExpenseTypeCleared() {
		_spec.ClearField(box.FieldExpenseType, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(box.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(box.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactTaxID(); ok {
		_spec.SetField(box.FieldContactTaxID, field.TypeString, value)
	}
	if _u.mutation.ContactTaxIDCleared() {
		_spec.ClearField(box.FieldContactTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BoxDate(); ok {
		_spec.SetField(box.FieldBoxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HasVat(); ok {
		_spec.SetField(box.FieldHasVat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWht(); ok {
		_spec.SetField(box.FieldHasWht, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WhtRate(); ok {
		_spec.SetField(box.FieldWhtRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWhtRate(); ok {
		_spec.AddField(box.FieldWhtRate, field.TypeFloat64, value)
	}
	if _u.mutation.WhtRateCleared() {
		_spec.ClearField(box.FieldWhtRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(box.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(box.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(box.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(box.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WhtAmount(); ok {
		_spec.SetField(box.FieldWhtAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWhtAmount(); ok {
		_spec.AddField(box.FieldWhtAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(box.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NoReceiptReason(); ok {
		_spec.SetField(box.FieldNoReceiptReason, field.TypeString, value)
	}
	if _u.mutation.NoReceiptReasonCleared() {
		_spec.ClearField(box.FieldNoReceiptReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(box.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WhtSent(); ok {
		_spec.SetField(box.FieldWhtSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocStatus(); ok {
		_spec.SetField(box.FieldDocStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(box.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(box.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   box.BusinessTable,
			Columns: []string{box.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   box.BusinessTable,
			Columns: []string{box.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
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
			err = &NotFoundError{box.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BoxUpdateOne is the builder for updating a single Box entity.
type BoxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BoxMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *BoxUpdateOne) SetBusinessID(v uuid.UUID) *BoxUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableBusinessID(v *uuid.UUID) *BoxUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBoxType sets the "box_type" field.
func (_u *BoxUpdateOne) SetBoxType(v string) *BoxUpdateOne {
	_u.mutation.SetBoxType(v)
	return _u
}

// SetNillableBoxType sets the "box_type" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableBoxType(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetBoxType(*v)
	}
	return _u
}

// SetExpenseType sets the "expense_type" field.
func (_u *BoxUpdateOne) SetExpenseType(v string) *BoxUpdateOne {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableExpenseType(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// ClearExpenseType clears the value of the "expense_type" field.
func (_u *BoxUpdateOne) ClearExpenseType() *BoxUpdateOne {
	_u.mutation.ClearExpenseType()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *BoxUpdateOne) SetContactName(v string) *BoxUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableContactName(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *BoxUpdateOne) ClearContactName() *BoxUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactTaxID sets the "contact_tax_id" field.
func (_u *BoxUpdateOne) SetContactTaxID(v string) *BoxUpdateOne {
	_u.mutation.SetContactTaxID(v)
	return _u
}

// SetNillableContactTaxID sets the "contact_tax_id" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableContactTaxID(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetContactTaxID(*v)
	}
	return _u
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (_u *BoxUpdateOne) ClearContactTaxID() *BoxUpdateOne {
	_u.mutation.ClearContactTaxID()
	return _u
}

// SetBoxDate sets the "box_date" field.
func (_u *BoxUpdateOne) SetBoxDate(v time.Time) *BoxUpdateOne {
	_u.mutation.SetBoxDate(v)
	return _u
}

// SetNillableBoxDate sets the "box_date" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableBoxDate(v *time.Time) *BoxUpdateOne {
	if v != nil {
		_u.SetBoxDate(*v)
	}
	return _u
}

// SetHasVat sets the "has_vat" field.
func (_u *BoxUpdateOne) SetHasVat(v bool) *BoxUpdateOne {
	_u.mutation.SetHasVat(v)
	return _u
}

// SetNillableHasVat sets the "has_vat" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableHasVat(v *bool) *BoxUpdateOne {
	if v != nil {
		_u.SetHasVat(*v)
	}
	return _u
}

// SetHasWht sets the "has_wht" field.
func (_u *BoxUpdateOne) SetHasWht(v bool) *BoxUpdateOne {
	_u.mutation.SetHasWht(v)
	return _u
}

// SetNillableHasWht sets the "has_wht" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableHasWht(v *bool) *BoxUpdateOne {
	if v != nil {
		_u.SetHasWht(*v)
	}
	return _u
}

// SetWhtRate sets the "wht_rate" field.
func (_u *BoxUpdateOne) SetWhtRate(v float64) *BoxUpdateOne {
	_u.mutation.ResetWhtRate()
	_u.mutation.SetWhtRate(v)
	return _u
}

// SetNillableWhtRate sets the "wht_rate" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableWhtRate(v *float64) *BoxUpdateOne {
	if v != nil {
		_u.SetWhtRate(*v)
	}
	return _u
}

// AddWhtRate adds value to the "wht_rate" field.
func (_u *BoxUpdateOne) AddWhtRate(v float64) *BoxUpdateOne {
	_u.mutation.AddWhtRate(v)
	return _u
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (_u *BoxUpdateOne) ClearWhtRate() *BoxUpdateOne {
	_u.mutation.ClearWhtRate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *BoxUpdateOne) SetTotalAmount(v float64) *BoxUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableTotalAmount(v *float64) *BoxUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *BoxUpdateOne) AddTotalAmount(v float64) *BoxUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *BoxUpdateOne) SetVatAmount(v float64) *BoxUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableVatAmount(v *float64) *BoxUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *BoxUpdateOne) AddVatAmount(v float64) *BoxUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// SetWhtAmount sets the "wht_amount" field.
func (_u *BoxUpdateOne) SetWhtAmount(v float64) *BoxUpdateOne {
	_u.mutation.ResetWhtAmount()
	_u.mutation.SetWhtAmount(v)
	return _u
}

// SetNillableWhtAmount sets the "wht_amount" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableWhtAmount(v *float64) *BoxUpdateOne {
	if v != nil {
		_u.SetWhtAmount(*v)
	}
	return _u
}

// AddWhtAmount adds value to the "wht_amount" field.
func (_u *BoxUpdateOne) AddWhtAmount(v float64) *BoxUpdateOne {
	_u.mutation.AddWhtAmount(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BoxUpdateOne) SetPaymentStatus(v string) *BoxUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillablePaymentStatus(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (_u *BoxUpdateOne) SetNoReceiptReason(v string) *BoxUpdateOne {
	_u.mutation.SetNoReceiptReason(v)
	return _u
}

// SetNillableNoReceiptReason sets the "no_receipt_reason" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableNoReceiptReason(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetNoReceiptReason(*v)
	}
	return _u
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (_u *BoxUpdateOne) ClearNoReceiptReason() *BoxUpdateOne {
	_u.mutation.ClearNoReceiptReason()
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *BoxUpdateOne) SetIsPaid(v bool) *BoxUpdateOne {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableIsPaid(v *bool) *BoxUpdateOne {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetWhtSent sets the "wht_sent" field.
func (_u *BoxUpdateOne) SetWhtSent(v bool) *BoxUpdateOne {
	_u.mutation.SetWhtSent(v)
	return _u
}

// SetNillableWhtSent sets the "wht_sent" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableWhtSent(v *bool) *BoxUpdateOne {
	if v != nil {
		_u.SetWhtSent(*v)
	}
	return _u
}

// SetDocStatus sets the "doc_status" field.
func (_u *BoxUpdateOne) SetDocStatus(v string) *BoxUpdateOne {
	_u.mutation.SetDocStatus(v)
	return _u
}

// SetNillableDocStatus sets the "doc_status" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableDocStatus(v *string) *BoxUpdateOne {
	if v != nil {
		_u.SetDocStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BoxUpdateOne) SetCreatedAt(v time.Time) *BoxUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BoxUpdateOne) SetNillableCreatedAt(v *time.Time) *BoxUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BoxUpdateOne) SetUpdatedAt(v time.Time) *BoxUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BoxUpdateOne) SetBusiness(v *Business) *BoxUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the AttachedDocument entity by IDs.
func (_u *BoxUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *BoxUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the AttachedDocument entity.
func (_u *BoxUpdateOne) AddDocuments(v ...*AttachedDocument) *BoxUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the BoxMutation object of the builder.
func (_u *BoxUpdateOne) Mutation() *BoxMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BoxUpdateOne) ClearBusiness() *BoxUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearDocuments clears all "documents" edges to the AttachedDocument entity.
func (_u *BoxUpdateOne) ClearDocuments() *BoxUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to AttachedDocument entities by IDs.
func (_u *BoxUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *BoxUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to AttachedDocument entities.
func (_u *BoxUpdateOne) RemoveDocuments(v ...*AttachedDocument) *BoxUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the BoxUpdate builder.
func (_u *BoxUpdateOne) Where(ps ...predicate.Box) *BoxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BoxUpdateOne) Select(field string, fields ...string) *BoxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Box entity.
func (_u *BoxUpdateOne) Save(ctx context.Context) (*Box, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoxUpdateOne) SaveX(ctx context.Context) *Box {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BoxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoxUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := box.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoxUpdateOne) check() error {
	if v, ok := _u.mutation.BoxType(); ok {
		if err := box.BoxTypeValidator(v); err != nil {
			return &ValidationError{Name: "box_type", err: fmt.Errorf(`ent: validator failed for field "Box.box_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpenseType(); ok {
		if err := box.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`ent: validator failed for field "Box.expense_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := box.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Box.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NoReceiptReason(); ok {
		if err := box.NoReceiptReasonValidator(v); err != nil {
			return &ValidationError{Name: "no_receipt_reason", err: fmt.Errorf(`ent: validator failed for field "Box.no_receipt_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocStatus(); ok {
		if err := box.DocStatusValidator(v); err != nil {
			return &ValidationError{Name: "doc_status", err: fmt.Errorf(`ent: validator failed for field "Box.doc_status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Box.business"`)
	}
	return nil
}

func (_u *BoxUpdateOne) sqlSave(ctx context.Context) (_node *Box, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(box.Table, box.Columns, sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Box.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, box.FieldID)
		for _, f := range fields {
			if !box.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != box.FieldID {
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
	if value, ok := _u.mutation.BoxType(); ok {
		_spec.SetField(box.FieldBoxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(box.FieldExpenseType, field.TypeString, value)
	}
	if _u.mutation.ExpenseTypeCleared() {
		_spec.ClearField(box.FieldExpenseType, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(box.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(box.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactTaxID(); ok {
		_spec.SetField(box.FieldContactTaxID, field.TypeString, value)
	}
	if _u.mutation.ContactTaxIDCleared() {
		_spec.ClearField(box.FieldContactTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BoxDate(); ok {
		_spec.SetField(box.FieldBoxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HasVat(); ok {
		_spec.SetField(box.FieldHasVat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWht(); ok {
		_spec.SetField(box.FieldHasWht, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WhtRate(); ok {
		_spec.SetField(box.FieldWhtRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWhtRate(); ok {
		_spec.AddField(box.FieldWhtRate, field.TypeFloat64, value)
	}
	if _u.mutation.WhtRateCleared() {
		_spec.ClearField(box.FieldWhtRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(box.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(box.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(box.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(box.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WhtAmount(); ok {
		_spec.SetField(box.FieldWhtAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWhtAmount(); ok {
		_spec.AddField(box.FieldWhtAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(box.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NoReceiptReason(); ok {
		_spec.SetField(box.FieldNoReceiptReason, field.TypeString, value)
	}
	if _u.mutation.NoReceiptReasonCleared() {
		_spec.ClearField(box.FieldNoReceiptReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(box.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WhtSent(); ok {
		_spec.SetField(box.FieldWhtSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DocStatus(); ok {
		_spec.SetField(box.FieldDocStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(box.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(box.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   box.BusinessTable,
			Columns: []string{box.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   box.BusinessTable,
			Columns: []string{box.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attacheddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   box.DocumentsTable,
			Columns: []string{box.DocumentsColumn},
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
	_node = &Box{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{box.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
