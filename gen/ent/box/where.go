// Code generated by ent, DO NOT EDIT.

package box

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBusinessID, v))
}

// BoxType applies equality check predicate on the "box_type" field. It's identical to BoxTypeEQ.
func BoxType(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBoxType, v))
}

// ExpenseType applies equality check predicate on the "expense_type" field. It's identical to ExpenseTypeEQ.
func ExpenseType(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldExpenseType, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldContactName, v))
}

// ContactTaxID applies equality check predicate on the "contact_tax_id" field. It's identical to ContactTaxIDEQ.
func ContactTaxID(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldContactTaxID, v))
}

// BoxDate applies equality check predicate on the "box_date" field. It's identical to BoxDateEQ.
func BoxDate(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBoxDate, v))
}

// HasVat applies equality check predicate on the "has_vat" field. It's identical to HasVatEQ.
func HasVat(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldHasVat, v))
}

// HasWht applies equality check predicate on the "has_wht" field. It's identical to HasWhtEQ.
func HasWht(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldHasWht, v))
}

// WhtRate applies equality check predicate on the "wht_rate" field. It's identical to WhtRateEQ.
func WhtRate(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtRate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldTotalAmount, v))
}

// VatAmount applies equality check predicate on the "vat_amount" field. It's identical to VatAmountEQ.
func VatAmount(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldVatAmount, v))
}

// WhtAmount applies equality check predicate on the "wht_amount" field. It's identical to WhtAmountEQ.
func WhtAmount(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtAmount, v))
}

// PaymentStatus applies equality check predicate on the "payment_status" field. It's identical to PaymentStatusEQ.
func PaymentStatus(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldPaymentStatus, v))
}

// NoReceiptReason applies equality check predicate on the "no_receipt_reason" field. It's identical to NoReceiptReasonEQ.
func NoReceiptReason(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldNoReceiptReason, v))
}

// IsPaid applies equality check predicate on the "is_paid" field. It's identical to IsPaidEQ.
func IsPaid(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldIsPaid, v))
}

// WhtSent applies equality check predicate on the "wht_sent" field. It's identical to WhtSentEQ.
func WhtSent(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtSent, v))
}

// DocStatus applies equality check predicate on the "doc_status" field. It's identical to DocStatusEQ.
func DocStatus(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldDocStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BoxTypeEQ applies the EQ predicate on the "box_type" field.
func BoxTypeEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBoxType, v))
}

// BoxTypeNEQ applies the NEQ predicate on the "box_type" field.
func BoxTypeNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldBoxType, v))
}

// BoxTypeIn applies the In predicate on the "box_type" field.
func BoxTypeIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldBoxType, vs...))
}

// BoxTypeNotIn applies the NotIn predicate on the "box_type" field.
func BoxTypeNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldBoxType, vs...))
}

// BoxTypeGT applies the GT predicate on the "box_type" field.
func BoxTypeGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldBoxType, v))
}

// BoxTypeGTE applies the GTE predicate on the "box_type" field.
func BoxTypeGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldBoxType, v))
}

// BoxTypeLT applies the LT predicate on the "box_type" field.
func BoxTypeLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldBoxType, v))
}

// BoxTypeLTE applies the LTE predicate on the "box_type" field.
func BoxTypeLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldBoxType, v))
}

// BoxTypeContains applies the Contains predicate on the "box_type" field.
func BoxTypeContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldBoxType, v))
}

// BoxTypeHasPrefix applies the HasPrefix predicate on the "box_type" field.
func BoxTypeHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldBoxType, v))
}

// BoxTypeHasSuffix applies the HasSuffix predicate on the "box_type" field.
func BoxTypeHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldBoxType, v))
}

// BoxTypeEqualFold applies the EqualFold predicate on the "box_type" field.
func BoxTypeEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldBoxType, v))
}

// BoxTypeContainsFold applies the ContainsFold predicate on the "box_type" field.
func BoxTypeContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldBoxType, v))
}

// ExpenseTypeEQ applies the EQ predicate on the "expense_type" field.
func ExpenseTypeEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldExpenseType, v))
}

// ExpenseTypeNEQ applies the NEQ predicate on the "expense_type" field.
func ExpenseTypeNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldExpenseType, v))
}

// ExpenseTypeIn applies the In predicate on the "expense_type" field.
func ExpenseTypeIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldExpenseType, vs...))
}

// ExpenseTypeNotIn applies the NotIn predicate on the "expense_type" field.
func ExpenseTypeNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldExpenseType, vs...))
}

// ExpenseTypeGT applies the GT predicate on the "expense_type" field.
func ExpenseTypeGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldExpenseType, v))
}

// ExpenseTypeGTE applies the GTE predicate on the "expense_type" field.
func ExpenseTypeGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldExpenseType, v))
}

// ExpenseTypeLT applies the LT predicate on the "expense_type" field.
func ExpenseTypeLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldExpenseType, v))
}

// ExpenseTypeLTE applies the LTE predicate on the "expense_type" field.
func ExpenseTypeLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldExpenseType, v))
}

// ExpenseTypeContains applies the Contains predicate on the "expense_type" field.
func ExpenseTypeContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldExpenseType, v))
}

// ExpenseTypeHasPrefix applies the HasPrefix predicate on the "expense_type" field.
func ExpenseTypeHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldExpenseType, v))
}

// ExpenseTypeHasSuffix applies the HasSuffix predicate on the "expense_type" field.
func ExpenseTypeHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldExpenseType, v))
}

// ExpenseTypeIsNil applies the IsNil predicate on the "expense_type" field.
func ExpenseTypeIsNil() predicate.Box {
	return predicate.Box(sql.FieldIsNull(FieldExpenseType))
}

// ExpenseTypeNotNil applies the NotNil predicate on the "expense_type" field.
func ExpenseTypeNotNil() predicate.Box {
	return predicate.Box(sql.FieldNotNull(FieldExpenseType))
}

// ExpenseTypeEqualFold applies the EqualFold predicate on the "expense_type" field.
func ExpenseTypeEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldExpenseType, v))
}

// ExpenseTypeContainsFold applies the ContainsFold predicate on the "expense_type" field.
func ExpenseTypeContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldExpenseType, v))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameIsNil applies the IsNil predicate on the "contact_name" field.
func ContactNameIsNil() predicate.Box {
	return predicate.Box(sql.FieldIsNull(FieldContactName))
}

// ContactNameNotNil applies the NotNil predicate on the "contact_name" field.
func ContactNameNotNil() predicate.Box {
	return predicate.Box(sql.FieldNotNull(FieldContactName))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldContactName, v))
}

// ContactTaxIDEQ applies the EQ predicate on the "contact_tax_id" field.
func ContactTaxIDEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldContactTaxID, v))
}

// ContactTaxIDNEQ applies the NEQ predicate on the "contact_tax_id" field.
func ContactTaxIDNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldContactTaxID, v))
}

// ContactTaxIDIn applies the In predicate on the "contact_tax_id" field.
func ContactTaxIDIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldContactTaxID, vs...))
}

// ContactTaxIDNotIn applies the NotIn predicate on the "contact_tax_id" field.
func ContactTaxIDNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldContactTaxID, vs...))
}

// ContactTaxIDGT applies the GT predicate on the "contact_tax_id" field.
func ContactTaxIDGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldContactTaxID, v))
}

// ContactTaxIDGTE applies the GTE predicate on the "contact_tax_id" field.
func ContactTaxIDGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldContactTaxID, v))
}

// ContactTaxIDLT applies the LT predicate on the "contact_tax_id" field.
func ContactTaxIDLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldContactTaxID, v))
}

// ContactTaxIDLTE applies the LTE predicate on the "contact_tax_id" field.
func ContactTaxIDLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldContactTaxID, v))
}

// ContactTaxIDContains applies the Contains predicate on the "contact_tax_id" field.
func ContactTaxIDContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldContactTaxID, v))
}

// ContactTaxIDHasPrefix applies the HasPrefix predicate on the "contact_tax_id" field.
func ContactTaxIDHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldContactTaxID, v))
}

// ContactTaxIDHasSuffix applies the HasSuffix predicate on the "contact_tax_id" field.
func ContactTaxIDHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldContactTaxID, v))
}

// ContactTaxIDIsNil applies the IsNil predicate on the "contact_tax_id" field.
func ContactTaxIDIsNil() predicate.Box {
	return predicate.Box(sql.FieldIsNull(FieldContactTaxID))
}

// ContactTaxIDNotNil applies the NotNil predicate on the "contact_tax_id" field.
func ContactTaxIDNotNil() predicate.Box {
	return predicate.Box(sql.FieldNotNull(FieldContactTaxID))
}

// ContactTaxIDEqualFold applies the EqualFold predicate on the "contact_tax_id" field.
func ContactTaxIDEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldContactTaxID, v))
}

// ContactTaxIDContainsFold applies the ContainsFold predicate on the "contact_tax_id" field.
func ContactTaxIDContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldContactTaxID, v))
}

// BoxDateEQ applies the EQ predicate on the "box_date" field.
func BoxDateEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldBoxDate, v))
}

// BoxDateNEQ applies the NEQ predicate on the "box_date" field.
func BoxDateNEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldBoxDate, v))
}

// BoxDateIn applies the In predicate on the "box_date" field.
func BoxDateIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldBoxDate, vs...))
}

// BoxDateNotIn applies the NotIn predicate on the "box_date" field.
func BoxDateNotIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldBoxDate, vs...))
}

// BoxDateGT applies the GT predicate on the "box_date" field.
func BoxDateGT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldBoxDate, v))
}

// BoxDateGTE applies the GTE predicate on the "box_date" field.
func BoxDateGTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldBoxDate, v))
}

// BoxDateLT applies the LT predicate on the "box_date" field.
func BoxDateLT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldBoxDate, v))
}

// BoxDateLTE applies the LTE predicate on the "box_date" field.
func BoxDateLTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldBoxDate, v))
}

// HasVatEQ applies the EQ predicate on the "has_vat" field.
func HasVatEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldHasVat, v))
}

// HasVatNEQ applies the NEQ predicate on the "has_vat" field.
func HasVatNEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldHasVat, v))
}

// HasWhtEQ applies the EQ predicate on the "has_wht" field.
func HasWhtEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldHasWht, v))
}

// HasWhtNEQ applies the NEQ predicate on the "has_wht" field.
func HasWhtNEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldHasWht, v))
}

// WhtRateEQ applies the EQ predicate on the "wht_rate" field.
func WhtRateEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtRate, v))
}

// WhtRateNEQ applies the NEQ predicate on the "wht_rate" field.
func WhtRateNEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldWhtRate, v))
}

// WhtRateIn applies the In predicate on the "wht_rate" field.
func WhtRateIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldWhtRate, vs...))
}

// WhtRateNotIn applies the NotIn predicate on the "wht_rate" field.
func WhtRateNotIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldWhtRate, vs...))
}

// WhtRateGT applies the GT predicate on the "wht_rate" field.
func WhtRateGT(v float64) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldWhtRate, v))
}

// WhtRateGTE applies the GTE predicate on the "wht_rate" field.
func WhtRateGTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldWhtRate, v))
}

// WhtRateLT applies the LT predicate on the "wht_rate" field.
func WhtRateLT(v float64) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldWhtRate, v))
}

// WhtRateLTE applies the LTE predicate on the "wht_rate" field.
func WhtRateLTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldWhtRate, v))
}

// WhtRateIsNil applies the IsNil predicate on the "wht_rate" field.
func WhtRateIsNil() predicate.Box {
	return predicate.Box(sql.FieldIsNull(FieldWhtRate))
}

// WhtRateNotNil applies the NotNil predicate on the "wht_rate" field.
func WhtRateNotNil() predicate.Box {
	return predicate.Box(sql.FieldNotNull(FieldWhtRate))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldTotalAmount, v))
}

// VatAmountEQ applies the EQ predicate on the "vat_amount" field.
func VatAmountEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldVatAmount, v))
}

// VatAmountNEQ applies the NEQ predicate on the "vat_amount" field.
func VatAmountNEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldVatAmount, v))
}

// VatAmountIn applies the In predicate on the "vat_amount" field.
func VatAmountIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldVatAmount, vs...))
}

// VatAmountNotIn applies the NotIn predicate on the "vat_amount" field.
func VatAmountNotIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldVatAmount, vs...))
}

// VatAmountGT applies the GT predicate on the "vat_amount" field.
func VatAmountGT(v float64) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldVatAmount, v))
}

// VatAmountGTE applies the GTE predicate on the "vat_amount" field.
func VatAmountGTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldVatAmount, v))
}

// VatAmountLT applies the LT predicate on the "vat_amount" field.
func VatAmountLT(v float64) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldVatAmount, v))
}

// VatAmountLTE applies the LTE predicate on the "vat_amount" field.
func VatAmountLTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldVatAmount, v))
}

// WhtAmountEQ applies the EQ predicate on the "wht_amount" field.
func WhtAmountEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtAmount, v))
}

// WhtAmountNEQ applies the NEQ predicate on the "wht_amount" field.
func WhtAmountNEQ(v float64) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldWhtAmount, v))
}

// WhtAmountIn applies the In predicate on the "wht_amount" field.
func WhtAmountIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldWhtAmount, vs...))
}

// WhtAmountNotIn applies the NotIn predicate on the "wht_amount" field.
func WhtAmountNotIn(vs ...float64) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldWhtAmount, vs...))
}

// WhtAmountGT applies the GT predicate on the "wht_amount" field.
func WhtAmountGT(v float64) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldWhtAmount, v))
}

// WhtAmountGTE applies the GTE predicate on the "wht_amount" field.
func WhtAmountGTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldWhtAmount, v))
}

// WhtAmountLT applies the LT predicate on the "wht_amount" field.
func WhtAmountLT(v float64) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldWhtAmount, v))
}

// WhtAmountLTE applies the LTE predicate on the "wht_amount" field.
func WhtAmountLTE(v float64) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldWhtAmount, v))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// PaymentStatusGT applies the GT predicate on the "payment_status" field.
func PaymentStatusGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldPaymentStatus, v))
}

// PaymentStatusGTE applies the GTE predicate on the "payment_status" field.
func PaymentStatusGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldPaymentStatus, v))
}

// PaymentStatusLT applies the LT predicate on the "payment_status" field.
func PaymentStatusLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldPaymentStatus, v))
}

// PaymentStatusLTE applies the LTE predicate on the "payment_status" field.
func PaymentStatusLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldPaymentStatus, v))
}

// PaymentStatusContains applies the Contains predicate on the "payment_status" field.
func PaymentStatusContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldPaymentStatus, v))
}

// PaymentStatusHasPrefix applies the HasPrefix predicate on the "payment_status" field.
func PaymentStatusHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldPaymentStatus, v))
}

// PaymentStatusHasSuffix applies the HasSuffix predicate on the "payment_status" field.
func PaymentStatusHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldPaymentStatus, v))
}

// PaymentStatusEqualFold applies the EqualFold predicate on the "payment_status" field.
func PaymentStatusEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldPaymentStatus, v))
}

// PaymentStatusContainsFold applies the ContainsFold predicate on the "payment_status" field.
func PaymentStatusContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldPaymentStatus, v))
}

// NoReceiptReasonEQ applies the EQ predicate on the "no_receipt_reason" field.
func NoReceiptReasonEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldNoReceiptReason, v))
}

// NoReceiptReasonNEQ applies the NEQ predicate on the "no_receipt_reason" field.
func NoReceiptReasonNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldNoReceiptReason, v))
}

// NoReceiptReasonIn applies the In predicate on the "no_receipt_reason" field.
func NoReceiptReasonIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldNoReceiptReason, vs...))
}

// NoReceiptReasonNotIn applies the NotIn predicate on the "no_receipt_reason" field.
func NoReceiptReasonNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldNoReceiptReason, vs...))
}

// NoReceiptReasonGT applies the GT predicate on the "no_receipt_reason" field.
func NoReceiptReasonGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldNoReceiptReason, v))
}

// NoReceiptReasonGTE applies the GTE predicate on the "no_receipt_reason" field.
func NoReceiptReasonGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldNoReceiptReason, v))
}

// NoReceiptReasonLT applies the LT predicate on the "no_receipt_reason" field.
func NoReceiptReasonLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldNoReceiptReason, v))
}

// NoReceiptReasonLTE applies the LTE predicate on the "no_receipt_reason" field.
func NoReceiptReasonLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldNoReceiptReason, v))
}

// NoReceiptReasonContains applies the Contains predicate on the "no_receipt_reason" field.
func NoReceiptReasonContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldNoReceiptReason, v))
}

// NoReceiptReasonHasPrefix applies the HasPrefix predicate on the "no_receipt_reason" field.
func NoReceiptReasonHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldNoReceiptReason, v))
}

// NoReceiptReasonHasSuffix applies the HasSuffix predicate on the "no_receipt_reason" field.
func NoReceiptReasonHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldNoReceiptReason, v))
}

// NoReceiptReasonIsNil applies the IsNil predicate on the "no_receipt_reason" field.
func NoReceiptReasonIsNil() predicate.Box {
	return predicate.Box(sql.FieldIsNull(FieldNoReceiptReason))
}

// NoReceiptReasonNotNil applies the NotNil predicate on the "no_receipt_reason" field.
func NoReceiptReasonNotNil() predicate.Box {
	return predicate.Box(sql.FieldNotNull(FieldNoReceiptReason))
}

// NoReceiptReasonEqualFold applies the EqualFold predicate on the "no_receipt_reason" field.
func NoReceiptReasonEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldNoReceiptReason, v))
}

// NoReceiptReasonContainsFold applies the ContainsFold predicate on the "no_receipt_reason" field.
func NoReceiptReasonContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldNoReceiptReason, v))
}

// IsPaidEQ applies the EQ predicate on the "is_paid" field.
func IsPaidEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldIsPaid, v))
}

// IsPaidNEQ applies the NEQ predicate on the "is_paid" field.
func IsPaidNEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldIsPaid, v))
}

// WhtSentEQ applies the EQ predicate on the "wht_sent" field.
func WhtSentEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldWhtSent, v))
}

// WhtSentNEQ applies the NEQ predicate on the "wht_sent" field.
func WhtSentNEQ(v bool) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldWhtSent, v))
}

// DocStatusEQ applies the EQ predicate on the "doc_status" field.
func DocStatusEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldDocStatus, v))
}

// DocStatusNEQ applies the NEQ predicate on the "doc_status" field.
func DocStatusNEQ(v string) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldDocStatus, v))
}

// DocStatusIn applies the In predicate on the "doc_status" field.
func DocStatusIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldDocStatus, vs...))
}

// DocStatusNotIn applies the NotIn predicate on the "doc_status" field.
func DocStatusNotIn(vs ...string) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldDocStatus, vs...))
}

// DocStatusGT applies the GT predicate on the "doc_status" field.
func DocStatusGT(v string) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldDocStatus, v))
}

// DocStatusGTE applies the GTE predicate on the "doc_status" field.
func DocStatusGTE(v string) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldDocStatus, v))
}

// DocStatusLT applies the LT predicate on the "doc_status" field.
func DocStatusLT(v string) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldDocStatus, v))
}

// DocStatusLTE applies the LTE predicate on the "doc_status" field.
func DocStatusLTE(v string) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldDocStatus, v))
}

// DocStatusContains applies the Contains predicate on the "doc_status" field.
func DocStatusContains(v string) predicate.Box {
	return predicate.Box(sql.FieldContains(FieldDocStatus, v))
}

// DocStatusHasPrefix applies the HasPrefix predicate on the "doc_status" field.
func DocStatusHasPrefix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasPrefix(FieldDocStatus, v))
}

// DocStatusHasSuffix applies the HasSuffix predicate on the "doc_status" field.
func DocStatusHasSuffix(v string) predicate.Box {
	return predicate.Box(sql.FieldHasSuffix(FieldDocStatus, v))
}

// DocStatusEqualFold applies the EqualFold predicate on the "doc_status" field.
func DocStatusEqualFold(v string) predicate.Box {
	return predicate.Box(sql.FieldEqualFold(FieldDocStatus, v))
}

// DocStatusContainsFold applies the ContainsFold predicate on the "doc_status" field.
func DocStatusContainsFold(v string) predicate.Box {
	return predicate.Box(sql.FieldContainsFold(FieldDocStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Box {
	return predicate.Box(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Box {
	return predicate.Box(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.Box {
	return predicate.Box(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.Box {
	return predicate.Box(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Box {
	return predicate.Box(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.AttachedDocument) predicate.Box {
	return predicate.Box(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Box) predicate.Box {
	return predicate.Box(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Box) predicate.Box {
	return predicate.Box(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Box) predicate.Box {
	return predicate.Box(sql.NotPredicates(p))
}
