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
	"github.com/teerapat-ng/docbox/gen/ent/business"
)

// BoxCreate is the builder for creating a Box entity.
type BoxCreate struct {
	config
	mutation *BoxMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *BoxCreate) SetBusinessID(v uuid.UUID) *BoxCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetBoxType sets the "box_type" field.
func (_c *BoxCreate) SetBoxType(v string) *BoxCreate {
	_c.mutation.SetBoxType(v)
	return _c
}

// SetExpenseType sets the "expense_type" field.
func (_c *BoxCreate) SetExpenseType(v string) *BoxCreate {
	_c.mutation.SetExpenseType(v)
	return _c
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_c *BoxCreate) SetNillableExpenseType(v *string) *BoxCreate {
	if v != nil {
		_c.SetExpenseType(*v)
	}
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *BoxCreate) SetContactName(v string) *BoxCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *BoxCreate) SetNillableContactName(v *string) *BoxCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetContactTaxID sets the "contact_tax_id" field.
func (_c *BoxCreate) SetContactTaxID(v string) *BoxCreate {
	_c.mutation.SetContactTaxID(v)
	return _c
}

// SetNillableContactTaxID sets the "contact_tax_id" field if the given value is not nil.
func (_c *BoxCreate) SetNillableContactTaxID(v *string) *BoxCreate {
	if v != nil {
		_c.SetContactTaxID(*v)
	}
	return _c
}

// SetBoxDate sets the "box_date" field.
func (_c *BoxCreate) SetBoxDate(v time.Time) *BoxCreate {
	_c.mutation.SetBoxDate(v)
	return _c
}

// SetHasVat sets the "has_vat" field.
func (_c *BoxCreate) SetHasVat(v bool) *BoxCreate {
	_c.mutation.SetHasVat(v)
	return _c
}

// SetNillableHasVat sets the "has_vat" field if the given value is not nil.
func (_c *BoxCreate) SetNillableHasVat(v *bool) *BoxCreate {
	if v != nil {
		_c.SetHasVat(*v)
	}
	return _c
}

// SetHasWht sets the "has_wht" field.
func (_c *BoxCreate) SetHasWht(v bool) *BoxCreate {
	_c.mutation.SetHasWht(v)
	return _c
}

// SetNillableHasWht sets the "has_wht" field if the given value is not nil.
func (_c *BoxCreate) SetNillableHasWht(v *bool) *BoxCreate {
	if v != nil {
		_c.SetHasWht(*v)
	}
	return _c
}

// SetWhtRate sets the "wht_rate" field.
func (_c *BoxCreate) SetWhtRate(v float64) *BoxCreate {
	_c.mutation.SetWhtRate(v)
	return _c
}

// SetNillableWhtRate sets the "wht_rate" field if the given value is not nil.
func (_c *BoxCreate) SetNillableWhtRate(v *float64) *BoxCreate {
	if v != nil {
		_c.SetWhtRate(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *BoxCreate) SetTotalAmount(v float64) *BoxCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *BoxCreate) SetNillableTotalAmount(v *float64) *BoxCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetVatAmount sets the "vat_amount" field.
func (_c *BoxCreate) SetVatAmount(v float64) *BoxCreate {
	_c.mutation.SetVatAmount(v)
	return _c
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_c *BoxCreate) SetNillableVatAmount(v *float64) *BoxCreate {
	if v != nil {
		_c.SetVatAmount(*v)
	}
	return _c
}

// SetWhtAmount sets the "wht_amount" field.
func (_c *BoxCreate) SetWhtAmount(v float64) *BoxCreate {
	_c.mutation.SetWhtAmount(v)
	return _c
}

// SetNillableWhtAmount sets the "wht_amount" field if the given value is not nil.
func (_c *BoxCreate) SetNillableWhtAmount(v *float64) *BoxCreate {
	if v != nil {
		_c.SetWhtAmount(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *BoxCreate) SetPaymentStatus(v string) *BoxCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *BoxCreate) SetNillablePaymentStatus(v *string) *BoxCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (_c *BoxCreate) SetNoReceiptReason(v string) *BoxCreate {
	_c.mutation.SetNoReceiptReason(v)
	return _c
}

// SetNillableNoReceiptReason sets the "no_receipt_reason" field if the given value is not nil.
func (_c *BoxCreate) SetNillableNoReceiptReason(v *string) *BoxCreate {
	if v != nil {
		_c.SetNoReceiptReason(*v)
	}
	return _c
}

// SetIsPaid sets the "is_paid" field.
func (_c *BoxCreate) SetIsPaid(v bool) *BoxCreate {
	_c.mutation.SetIsPaid(v)
	return _c
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_c *BoxCreate) SetNillableIsPaid(v *bool) *BoxCreate {
	if v != nil {
		_c.SetIsPaid(*v)
	}
	return _c
}

// SetWhtSent sets the "wht_sent" field.
func (_c *BoxCreate) SetWhtSent(v bool) *BoxCreate {
	_c.mutation.SetWhtSent(v)
	return _c
}

// SetNillableWhtSent sets the "wht_sent" field if the given value is not nil.
func (_c *BoxCreate) SetNillableWhtSent(v *bool) *BoxCreate {
	if v != nil {
		_c.SetWhtSent(*v)
	}
	return _c
}

// SetDocStatus sets the "doc_status" field.
func (_c *BoxCreate) SetDocStatus(v string) *BoxCreate {
	_c.mutation.SetDocStatus(v)
	return _c
}

// SetNillableDocStatus sets the "doc_status" field if the given value is not nil.
func (_c *BoxCreate) SetNillableDocStatus(v *string) *BoxCreate {
	if v != nil {
		_c.SetDocStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BoxCreate) SetCreatedAt(v time.Time) *BoxCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BoxCreate) SetNillableCreatedAt(v *time.Time) *BoxCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BoxCreate) SetUpdatedAt(v time.Time) *BoxCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BoxCreate) SetNillableUpdatedAt(v *time.Time) *BoxCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoxCreate) SetID(v uuid.UUID) *BoxCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BoxCreate) SetNillableID(v *uuid.UUID) *BoxCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *BoxCreate) SetBusiness(v *Business) *BoxCreate {
	return _c.SetBusinessID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the AttachedDocument entity by IDs.
func (_c *BoxCreate) AddDocumentIDs(ids ...uuid.UUID) *BoxCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the AttachedDocument entity.
func (_c *BoxCreate) AddDocuments(v ...*AttachedDocument) *BoxCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the BoxMutation object of the builder.
func (_c *BoxCreate) Mutation() *BoxMutation {
	return _c.mutation
}

// Save creates the Box in the database.
func (_c *BoxCreate) Save(ctx context.Context) (*Box, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoxCreate) SaveX(ctx context.Context) *Box {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoxCreate) defaults() {
	if _, ok := _c.mutation.ContactName(); !ok {
		v := box.DefaultContactName
		_c.mutation.SetContactName(v)
	}
	if _, ok := _c.mutation.ContactTaxID(); !ok {
		v := box.DefaultContactTaxID
		_c.mutation.SetContactTaxID(v)
	}
	if _, ok := _c.mutation.HasVat(); !ok {
		v := box.DefaultHasVat
		_c.mutation.SetHasVat(v)
	}
	if _, ok := _c.mutation.HasWht(); !ok {
		v := box.DefaultHasWht
		_c.mutation.SetHasWht(v)
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		v := box.DefaultTotalAmount
		_c.mutation.SetTotalAmount(v)
	}
	if _, ok := _c.mutation.VatAmount(); !ok {
		v := box.DefaultVatAmount
		_c.mutation.SetVatAmount(v)
	}
	if _, ok := _c.mutation.WhtAmount(); !ok {
		v := box.DefaultWhtAmount
		_c.mutation.SetWhtAmount(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := box.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		v := box.DefaultIsPaid
		_c.mutation.SetIsPaid(v)
	}
	if _, ok := _c.mutation.WhtSent(); !ok {
		v := box.DefaultWhtSent
		_c.mutation.SetWhtSent(v)
	}
	if _, ok := _c.mutation.DocStatus(); !ok {
		v := box.DefaultDocStatus
		_c.mutation.SetDocStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := box.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := box.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := box.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoxCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Box.business_id"`)}
	}
	if _, ok := _c.mutation.BoxType(); !ok {
		return &ValidationError{Name: "box_type", err: errors.New(`ent: missing required field "Box.box_type"`)}
	}
	if v, ok := _c.mutation.BoxType(); ok {
		if err := box.BoxTypeValidator(v); err != nil {
			return &ValidationError{Name: "box_type", err: fmt.Errorf(`ent: validator failed for field "Box.box_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExpenseType(); ok {
		if err := box.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`ent: validator failed for field "Box.expense_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoxDate(); !ok {
		return &ValidationError{Name: "box_date", err: errors.New(`ent: missing required field "Box.box_date"`)}
	}
	if _, ok := _c.mutation.HasVat(); !ok {
		return &ValidationError{Name: "has_vat", err: errors.New(`ent: missing required field "Box.has_vat"`)}
	}
	if _, ok := _c.mutation.HasWht(); !ok {
		return &ValidationError{Name: "has_wht", err: errors.New(`ent: missing required field "Box.has_wht"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Box.total_amount"`)}
	}
	if _, ok := _c.mutation.VatAmount(); !ok {
		return &ValidationError{Name: "vat_amount", err: errors.New(`ent: missing required field "Box.vat_amount"`)}
	}
	if _, ok := _c.mutation.WhtAmount(); !ok {
		return &ValidationError{Name: "wht_amount", err: errors.New(`ent: missing required field "Box.wht_amount"`)}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Box.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := box.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Box.payment_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NoReceiptReason(); ok {
		if err := box.NoReceiptReasonValidator(v); err != nil {
			return &ValidationError{Name: "no_receipt_reason", err: fmt.Errorf(`ent: validator failed for field "Box.no_receipt_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		return &ValidationError{Name: "is_paid", err: errors.New(`ent: missing required field "Box.is_paid"`)}
	}
	if _, ok := _c.mutation.WhtSent(); !ok {
		return &ValidationError{Name: "wht_sent", err: errors.New(`ent: missing required field "Box.wht_sent"`)}
	}
	if _, ok := _c.mutation.DocStatus(); !ok {
		return &ValidationError{Name: "doc_status", err: errors.New(`ent: missing required field "Box.doc_status"`)}
	}
	if v, ok := _c.mutation.DocStatus(); ok {
		if err := box.DocStatusValidator(v); err != nil {
			return &ValidationError{Name: "doc_status", err: fmt.Errorf(`ent: validator failed for field "Box.doc_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Box.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Box.updated_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "Box.business"`)}
	}
	return nil
}

func (_c *BoxCreate) sqlSave(ctx context.Context) (*Box, error) {
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

func (_c *BoxCreate) createSpec() (*Box, *sqlgraph.CreateSpec) {
	var (
		_node = &Box{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(box.Table, sqlgraph.NewFieldSpec(box.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BoxType(); ok {
		_spec.SetField(box.FieldBoxType, field.TypeString, value)
		_node.BoxType = value
	}
	if value, ok := _c.mutation.ExpenseType(); ok {
		_spec.SetField(box.FieldExpenseType, field.TypeString, value)
		_node.ExpenseType = &value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(box.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := _c.mutation.ContactTaxID(); ok {
		_spec.SetField(box.FieldContactTaxID, field.TypeString, value)
		_node.ContactTaxID = value
	}
	if value, ok := _c.mutation.BoxDate(); ok {
		_spec.SetField(box.FieldBoxDate, field.TypeTime, value)
		_node.BoxDate = value
	}
	if value, ok := _c.mutation.HasVat(); ok {
		_spec.SetField(box.FieldHasVat, field.TypeBool, value)
		_node.HasVat = value
	}
	if value, ok := _c.mutation.HasWht(); ok {
		_spec.SetField(box.FieldHasWht, field.TypeBool, value)
		_node.HasWht = value
	}
	if value, ok := _c.mutation.WhtRate(); ok {
		_spec.SetField(box.FieldWhtRate, field.TypeFloat64, value)
		_node.WhtRate = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(box.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.VatAmount(); ok {
		_spec.SetField(box.FieldVatAmount, field.TypeFloat64, value)
		_node.VatAmount = value
	}
	if value, ok := _c.mutation.WhtAmount(); ok {
		_spec.SetField(box.FieldWhtAmount, field.TypeFloat64, value)
		_node.WhtAmount = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(box.FieldPaymentStatus, field.TypeString, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.NoReceiptReason(); ok {
		_spec.SetField(box.FieldNoReceiptReason, field.TypeString, value)
		_node.NoReceiptReason = &value
	}
	if value, ok := _c.mutation.IsPaid(); ok {
		_spec.SetField(box.FieldIsPaid, field.TypeBool, value)
		_node.IsPaid = value
	}
	if value, ok := _c.mutation.WhtSent(); ok {
		_spec.SetField(box.FieldWhtSent, field.TypeBool, value)
		_node.WhtSent = value
	}
	if value, ok := _c.mutation.DocStatus(); ok {
		_spec.SetField(box.FieldDocStatus, field.TypeString, value)
		_node.DocStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(box.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(box.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Box.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BoxUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *BoxCreate) OnConflict(opts ...sql.ConflictOption) *BoxUpsertOne {
	_c.conflict = opts
	return &BoxUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Box.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BoxCreate) OnConflictColumns(columns ...string) *BoxUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BoxUpsertOne{
		create: _c,
	}
}

type (
	// BoxUpsertOne is the builder for "upsert"-ing
	//  one Box node.
	BoxUpsertOne struct {
		create *BoxCreate
	}

	// BoxUpsert is the "OnConflict" setter.
	BoxUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *BoxUpsert) SetBusinessID(v uuid.UUID) *BoxUpsert {
	u.Set(box.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *BoxUpsert) UpdateBusinessID() *BoxUpsert {
	u.SetExcluded(box.FieldBusinessID)
	return u
}

// SetBoxType sets the "box_type" field.
func (u *BoxUpsert) SetBoxType(v string) *BoxUpsert {
	u.Set(box.FieldBoxType, v)
	return u
}

// UpdateBoxType sets the "box_type" field to the value that was provided on create.
func (u *BoxUpsert) UpdateBoxType() *BoxUpsert {
	u.SetExcluded(box.FieldBoxType)
	return u
}

// SetExpenseType sets the "expense_type" field.
func (u *BoxUpsert) SetExpenseType(v string) *BoxUpsert {
	u.Set(box.FieldExpenseType, v)
	return u
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *BoxUpsert) UpdateExpenseType() *BoxUpsert {
	u.SetExcluded(box.FieldExpenseType)
	return u
}

// ClearExpenseType clears the value of the "expense_type" field.
func (u *BoxUpsert) ClearExpenseType() *BoxUpsert {
	u.SetNull(box.FieldExpenseType)
	return u
}

// SetContactName sets the "contact_name" field.
func (u *BoxUpsert) SetContactName(v string) *BoxUpsert {
	u.Set(box.FieldContactName, v)
	return u
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *BoxUpsert) UpdateContactName() *BoxUpsert {
	u.SetExcluded(box.FieldContactName)
	return u
}

// ClearContactName clears the value of the "contact_name" field.
func (u *BoxUpsert) ClearContactName() *BoxUpsert {
	u.SetNull(box.FieldContactName)
	return u
}

// SetContactTaxID sets the "contact_tax_id" field.
func (u *BoxUpsert) SetContactTaxID(v string) *BoxUpsert {
	u.Set(box.FieldContactTaxID, v)
	return u
}

// UpdateContactTaxID sets the "contact_tax_id" field to the value that was provided on create.
func (u *BoxUpsert) UpdateContactTaxID() *BoxUpsert {
	u.SetExcluded(box.FieldContactTaxID)
	return u
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (u *BoxUpsert) ClearContactTaxID() *BoxUpsert {
	u.SetNull(box.FieldContactTaxID)
	return u
}

// SetBoxDate sets the "box_date" field.
func (u *BoxUpsert) SetBoxDate(v time.Time) *BoxUpsert {
	u.Set(box.FieldBoxDate, v)
	return u
}

// UpdateBoxDate sets the "box_date" field to the value that was provided on create.
func (u *BoxUpsert) UpdateBoxDate() *BoxUpsert {
	u.SetExcluded(box.FieldBoxDate)
	return u
}

// SetHasVat sets the "has_vat" field.
func (u *BoxUpsert) SetHasVat(v bool) *BoxUpsert {
	u.Set(box.FieldHasVat, v)
	return u
}

// UpdateHasVat sets the "has_vat" field to the value that was provided on create.
func (u *BoxUpsert) UpdateHasVat() *BoxUpsert {
	u.SetExcluded(box.FieldHasVat)
	return u
}

// SetHasWht sets the "has_wht" field.
func (u *BoxUpsert) SetHasWht(v bool) *BoxUpsert {
	u.Set(box.FieldHasWht, v)
	return u
}

// UpdateHasWht sets the "has_wht" field to the value that was provided on create.
func (u *BoxUpsert) UpdateHasWht() *BoxUpsert {
	u.SetExcluded(box.FieldHasWht)
	return u
}

// SetWhtRate sets the "wht_rate" field.
func (u *BoxUpsert) SetWhtRate(v float64) *BoxUpsert {
	u.Set(box.FieldWhtRate, v)
	return u
}

// UpdateWhtRate sets the "wht_rate" field to the value that was provided on create.
func (u *BoxUpsert) UpdateWhtRate() *BoxUpsert {
	u.SetExcluded(box.FieldWhtRate)
	return u
}

// AddWhtRate adds v to the "wht_rate" field.
func (u *BoxUpsert) AddWhtRate(v float64) *BoxUpsert {
	u.Add(box.FieldWhtRate, v)
	return u
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (u *BoxUpsert) ClearWhtRate() *BoxUpsert {
	u.SetNull(box.FieldWhtRate)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *BoxUpsert) SetTotalAmount(v float64) *BoxUpsert {
	u.Set(box.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *BoxUpsert) UpdateTotalAmount() *BoxUpsert {
	u.SetExcluded(box.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *BoxUpsert) AddTotalAmount(v float64) *BoxUpsert {
	u.Add(box.FieldTotalAmount, v)
	return u
}

// SetVatAmount sets the "vat_amount" field.
func (u *BoxUpsert) SetVatAmount(v float64) *BoxUpsert {
	u.Set(box.FieldVatAmount, v)
	return u
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *BoxUpsert) UpdateVatAmount() *BoxUpsert {
	u.SetExcluded(box.FieldVatAmount)
	return u
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *BoxUpsert) AddVatAmount(v float64) *BoxUpsert {
	u.Add(box.FieldVatAmount, v)
	return u
}

// SetWhtAmount sets the "wht_amount" field.
func (u *BoxUpsert) SetWhtAmount(v float64) *BoxUpsert {
	u.Set(box.FieldWhtAmount, v)
	return u
}

// UpdateWhtAmount sets the "wht_amount" field to the value that was provided on create.
func (u *BoxUpsert) UpdateWhtAmount() *BoxUpsert {
	u.SetExcluded(box.FieldWhtAmount)
	return u
}

// AddWhtAmount adds v to the "wht_amount" field.
func (u *BoxUpsert) AddWhtAmount(v float64) *BoxUpsert {
	u.Add(box.FieldWhtAmount, v)
	return u
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BoxUpsert) SetPaymentStatus(v string) *BoxUpsert {
	u.Set(box.FieldPaymentStatus, v)
	return u
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BoxUpsert) UpdatePaymentStatus() *BoxUpsert {
	u.SetExcluded(box.FieldPaymentStatus)
	return u
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (u *BoxUpsert) SetNoReceiptReason(v string) *BoxUpsert {
	u.Set(box.FieldNoReceiptReason, v)
	return u
}

// UpdateNoReceiptReason sets the "no_receipt_reason" field to the value that was provided on create.
func (u *BoxUpsert) UpdateNoReceiptReason() *BoxUpsert {
	u.SetExcluded(box.FieldNoReceiptReason)
	return u
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (u *BoxUpsert) ClearNoReceiptReason() *BoxUpsert {
	u.SetNull(box.FieldNoReceiptReason)
	return u
}

// SetIsPaid sets the "is_paid" field.
func (u *BoxUpsert) SetIsPaid(v bool) *BoxUpsert {
	u.Set(box.FieldIsPaid, v)
	return u
}

// UpdateIsPaid sets the "is_paid" field to the value that was provided on create.
func (u *BoxUpsert) UpdateIsPaid() *BoxUpsert {
	u.SetExcluded(box.FieldIsPaid)
	return u
}

// SetWhtSent sets the "wht_sent" field.
func (u *BoxUpsert) SetWhtSent(v bool) *BoxUpsert {
	u.Set(box.FieldWhtSent, v)
	return u
}

// UpdateWhtSent sets the "wht_sent" field to the value that was provided on create.
func (u *BoxUpsert) UpdateWhtSent() *BoxUpsert {
	u.SetExcluded(box.FieldWhtSent)
	return u
}

// SetDocStatus sets the "doc_status" field.
func (u *BoxUpsert) SetDocStatus(v string) *BoxUpsert {
	u.Set(box.FieldDocStatus, v)
	return u
}

// UpdateDocStatus sets the "doc_status" field to the value that was provided on create.
func (u *BoxUpsert) UpdateDocStatus() *BoxUpsert {
	u.SetExcluded(box.FieldDocStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *BoxUpsert) SetCreatedAt(v time.Time) *BoxUpsert {
	u.Set(box.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BoxUpsert) UpdateCreatedAt() *BoxUpsert {
	u.SetExcluded(box.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BoxUpsert) SetUpdatedAt(v time.Time) *BoxUpsert {
	u.Set(box.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoxUpsert) UpdateUpdatedAt() *BoxUpsert {
	u.SetExcluded(box.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Box.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(box.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BoxUpsertOne) UpdateNewValues() *BoxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(box.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Box.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BoxUpsertOne) Ignore() *BoxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BoxUpsertOne) DoNothing() *BoxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BoxCreate.OnConflict
// documentation for more info.
func (u *BoxUpsertOne) Update(set func(*BoxUpsert)) *BoxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BoxUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *BoxUpsertOne) SetBusinessID(v uuid.UUID) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateBusinessID() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBusinessID()
	})
}

// SetBoxType sets the "box_type" field.
func (u *BoxUpsertOne) SetBoxType(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetBoxType(v)
	})
}

// UpdateBoxType sets the "box_type" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateBoxType() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBoxType()
	})
}

// SetExpenseType sets the "expense_type" field.
func (u *BoxUpsertOne) SetExpenseType(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetExpenseType(v)
	})
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateExpenseType() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateExpenseType()
	})
}

// ClearExpenseType clears the value of the "expense_type" field.
func (u *BoxUpsertOne) ClearExpenseType() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.ClearExpenseType()
	})
}

// SetContactName sets the "contact_name" field.
func (u *BoxUpsertOne) SetContactName(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateContactName() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *BoxUpsertOne) ClearContactName() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.ClearContactName()
	})
}

// SetContactTaxID sets the "contact_tax_id" field.
func (u *BoxUpsertOne) SetContactTaxID(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetContactTaxID(v)
	})
}

// UpdateContactTaxID sets the "contact_tax_id" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateContactTaxID() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateContactTaxID()
	})
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (u *BoxUpsertOne) ClearContactTaxID() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.ClearContactTaxID()
	})
}

// SetBoxDate sets the "box_date" field.
func (u *BoxUpsertOne) SetBoxDate(v time.Time) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetBoxDate(v)
	})
}

// UpdateBoxDate sets the "box_date" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateBoxDate() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBoxDate()
	})
}

// SetHasVat sets the "has_vat" field.
func (u *BoxUpsertOne) SetHasVat(v bool) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetHasVat(v)
	})
}

// UpdateHasVat sets the "has_vat" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateHasVat() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateHasVat()
	})
}

// SetHasWht sets the "has_wht" field.
func (u *BoxUpsertOne) SetHasWht(v bool) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetHasWht(v)
	})
}

// UpdateHasWht sets the "has_wht" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateHasWht() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateHasWht()
	})
}

// SetWhtRate sets the "wht_rate" field.
func (u *BoxUpsertOne) SetWhtRate(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtRate(v)
	})
}

// AddWhtRate adds v to the "wht_rate" field.
func (u *BoxUpsertOne) AddWhtRate(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.AddWhtRate(v)
	})
}

// UpdateWhtRate sets the "wht_rate" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateWhtRate() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtRate()
	})
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (u *BoxUpsertOne) ClearWhtRate() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.ClearWhtRate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *BoxUpsertOne) SetTotalAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *BoxUpsertOne) AddTotalAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateTotalAmount() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetVatAmount sets the "vat_amount" field.
func (u *BoxUpsertOne) SetVatAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetVatAmount(v)
	})
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *BoxUpsertOne) AddVatAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.AddVatAmount(v)
	})
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateVatAmount() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateVatAmount()
	})
}

// SetWhtAmount sets the "wht_amount" field.
func (u *BoxUpsertOne) SetWhtAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtAmount(v)
	})
}

// AddWhtAmount adds v to the "wht_amount" field.
func (u *BoxUpsertOne) AddWhtAmount(v float64) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.AddWhtAmount(v)
	})
}

// UpdateWhtAmount sets the "wht_amount" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateWhtAmount() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtAmount()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BoxUpsertOne) SetPaymentStatus(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdatePaymentStatus() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (u *BoxUpsertOne) SetNoReceiptReason(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetNoReceiptReason(v)
	})
}

// UpdateNoReceiptReason sets the "no_receipt_reason" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateNoReceiptReason() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateNoReceiptReason()
	})
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (u *BoxUpsertOne) ClearNoReceiptReason() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.ClearNoReceiptReason()
	})
}

// SetIsPaid sets the "is_paid" field.
func (u *BoxUpsertOne) SetIsPaid(v bool) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetIsPaid(v)
	})
}

// UpdateIsPaid sets the "is_paid" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateIsPaid() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateIsPaid()
	})
}

// SetWhtSent sets the "wht_sent" field.
func (u *BoxUpsertOne) SetWhtSent(v bool) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtSent(v)
	})
}

// UpdateWhtSent sets the "wht_sent" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateWhtSent() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtSent()
	})
}

// SetDocStatus sets the "doc_status" field.
func (u *BoxUpsertOne) SetDocStatus(v string) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetDocStatus(v)
	})
}

// UpdateDocStatus sets the "doc_status" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateDocStatus() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateDocStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *BoxUpsertOne) SetCreatedAt(v time.Time) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateCreatedAt() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BoxUpsertOne) SetUpdatedAt(v time.Time) *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoxUpsertOne) UpdateUpdatedAt() *BoxUpsertOne {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BoxUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BoxCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BoxUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BoxUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BoxUpsertOne.ID is not supported by MySQL driver. Use BoxUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BoxUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BoxCreateBulk is the builder for creating many Box entities in bulk.
type BoxCreateBulk struct {
	config
	err      error
	builders []*BoxCreate
	conflict []sql.ConflictOption
}

// Save creates the Box entities in the database.
func (_c *BoxCreateBulk) Save(ctx context.Context) ([]*Box, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Box, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoxMutation)
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
func (_c *BoxCreateBulk) SaveX(ctx context.Context) []*Box {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Box.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BoxUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *BoxCreateBulk) OnConflict(opts ...sql.ConflictOption) *BoxUpsertBulk {
	_c.conflict = opts
	return &BoxUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Box.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BoxCreateBulk) OnConflictColumns(columns ...string) *BoxUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BoxUpsertBulk{
		create: _c,
	}
}

// BoxUpsertBulk is the builder for "upsert"-ing
// a bulk of Box nodes.
type BoxUpsertBulk struct {
	create *BoxCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Box.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(box.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BoxUpsertBulk) UpdateNewValues() *BoxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(box.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Box.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BoxUpsertBulk) Ignore() *BoxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BoxUpsertBulk) DoNothing() *BoxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BoxCreateBulk.OnConflict
// documentation for more info.
func (u *BoxUpsertBulk) Update(set func(*BoxUpsert)) *BoxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BoxUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *BoxUpsertBulk) SetBusinessID(v uuid.UUID) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateBusinessID() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBusinessID()
	})
}

// SetBoxType sets the "box_type" field.
func (u *BoxUpsertBulk) SetBoxType(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetBoxType(v)
	})
}

// UpdateBoxType sets the "box_type" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateBoxType() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBoxType()
	})
}

// SetExpenseType sets the "expense_type" field.
func (u *BoxUpsertBulk) SetExpenseType(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetExpenseType(v)
	})
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateExpenseType() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateExpenseType()
	})
}

// ClearExpenseType clears the value of the "expense_type" field.
func (u *BoxUpsertBulk) ClearExpenseType() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.ClearExpenseType()
	})
}

// SetContactName sets the "contact_name" field.
func (u *BoxUpsertBulk) SetContactName(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateContactName() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *BoxUpsertBulk) ClearContactName() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.ClearContactName()
	})
}

// SetContactTaxID sets the "contact_tax_id" field.
func (u *BoxUpsertBulk) SetContactTaxID(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetContactTaxID(v)
	})
}

// UpdateContactTaxID sets the "contact_tax_id" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateContactTaxID() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateContactTaxID()
	})
}

// ClearContactTaxID clears the value of the "contact_tax_id" field.
func (u *BoxUpsertBulk) ClearContactTaxID() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.ClearContactTaxID()
	})
}

// SetBoxDate sets the "box_date" field.
func (u *BoxUpsertBulk) SetBoxDate(v time.Time) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetBoxDate(v)
	})
}

// UpdateBoxDate sets the "box_date" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateBoxDate() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateBoxDate()
	})
}

// SetHasVat sets the "has_vat" field.
func (u *BoxUpsertBulk) SetHasVat(v bool) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetHasVat(v)
	})
}

// UpdateHasVat sets the "has_vat" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateHasVat() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateHasVat()
	})
}

// SetHasWht sets the "has_wht" field.
func (u *BoxUpsertBulk) SetHasWht(v bool) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetHasWht(v)
	})
}

// UpdateHasWht sets the "has_wht" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateHasWht() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateHasWht()
	})
}

// SetWhtRate sets the "wht_rate" field.
func (u *BoxUpsertBulk) SetWhtRate(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtRate(v)
	})
}

// AddWhtRate adds v to the "wht_rate" field.
func (u *BoxUpsertBulk) AddWhtRate(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.AddWhtRate(v)
	})
}

// UpdateWhtRate sets the "wht_rate" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateWhtRate() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtRate()
	})
}

// ClearWhtRate clears the value of the "wht_rate" field.
func (u *BoxUpsertBulk) ClearWhtRate() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.ClearWhtRate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *BoxUpsertBulk) SetTotalAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *BoxUpsertBulk) AddTotalAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateTotalAmount() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetVatAmount sets the "vat_amount" field.
func (u *BoxUpsertBulk) SetVatAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetVatAmount(v)
	})
}

// AddVatAmount adds v to the "vat_amount" field.
func (u *BoxUpsertBulk) AddVatAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.AddVatAmount(v)
	})
}

// UpdateVatAmount sets the "vat_amount" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateVatAmount() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateVatAmount()
	})
}

// SetWhtAmount sets the "wht_amount" field.
func (u *BoxUpsertBulk) SetWhtAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtAmount(v)
	})
}

// AddWhtAmount adds v to the "wht_amount" field.
func (u *BoxUpsertBulk) AddWhtAmount(v float64) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.AddWhtAmount(v)
	})
}

// UpdateWhtAmount sets the "wht_amount" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateWhtAmount() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtAmount()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BoxUpsertBulk) SetPaymentStatus(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdatePaymentStatus() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetNoReceiptReason sets the "no_receipt_reason" field.
func (u *BoxUpsertBulk) SetNoReceiptReason(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetNoReceiptReason(v)
	})
}

// UpdateNoReceiptReason sets the "no_receipt_reason" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateNoReceiptReason() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateNoReceiptReason()
	})
}

// ClearNoReceiptReason clears the value of the "no_receipt_reason" field.
func (u *BoxUpsertBulk) ClearNoReceiptReason() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.ClearNoReceiptReason()
	})
}

// SetIsPaid sets the "is_paid" field.
func (u *BoxUpsertBulk) SetIsPaid(v bool) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetIsPaid(v)
	})
}

// UpdateIsPaid sets the "is_paid" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateIsPaid() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateIsPaid()
	})
}

// SetWhtSent sets the "wht_sent" field.
func (u *BoxUpsertBulk) SetWhtSent(v bool) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetWhtSent(v)
	})
}

// UpdateWhtSent sets the "wht_sent" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateWhtSent() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateWhtSent()
	})
}

// SetDocStatus sets the "doc_status" field.
func (u *BoxUpsertBulk) SetDocStatus(v string) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetDocStatus(v)
	})
}

// UpdateDocStatus sets the "doc_status" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateDocStatus() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateDocStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *BoxUpsertBulk) SetCreatedAt(v time.Time) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateCreatedAt() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BoxUpsertBulk) SetUpdatedAt(v time.Time) *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoxUpsertBulk) UpdateUpdatedAt() *BoxUpsertBulk {
	return u.Update(func(s *BoxUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BoxUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BoxCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BoxCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BoxUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
