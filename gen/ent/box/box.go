// Code generated by ent, DO NOT EDIT.

package box

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the box type in the database.
	Label = "box"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldBoxType holds the string denoting the box_type field in the database.
	FieldBoxType = "box_type"
	// FieldExpenseType holds the string denoting the expense_type field in the database.
	FieldExpenseType = "expense_type"
	// FieldContactName holds the string denoting the contact_name field in the database.
	FieldContactName = "contact_name"
	// FieldContactTaxID holds the string denoting the contact_tax_id field in the database.
	FieldContactTaxID = "contact_tax_id"
	// FieldBoxDate holds the string denoting the box_date field in the database.
	FieldBoxDate = "box_date"
	// FieldHasVat holds the string denoting the has_vat field in the database.
	FieldHasVat = "has_vat"
	// FieldHasWht holds the string denoting the has_wht field in the database.
	FieldHasWht = "has_wht"
	// FieldWhtRate holds the string denoting the wht_rate field in the database.
	FieldWhtRate = "wht_rate"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldVatAmount holds the string denoting the vat_amount field in the database.
	FieldVatAmount = "vat_amount"
	// FieldWhtAmount holds the string denoting the wht_amount field in the database.
	FieldWhtAmount = "wht_amount"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldNoReceiptReason holds the string denoting the no_receipt_reason field in the database.
	FieldNoReceiptReason = "no_receipt_reason"
	// FieldIsPaid holds the string denoting the is_paid field in the database.
	FieldIsPaid = "is_paid"
	// FieldWhtSent holds the string denoting the wht_sent field in the database.
	FieldWhtSent = "wht_sent"
	// FieldDocStatus holds the string denoting the doc_status field in the database.
	FieldDocStatus = "doc_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBusiness holds the string denoting the business edge name in mutations.
	EdgeBusiness = "business"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the box in the database.
	Table = "boxes"
	// BusinessTable is the table that holds the business relation/edge.
	BusinessTable = "boxes"
	// BusinessInverseTable is the table name for the Business entity.
	// It exists in this package in order to avoid circular dependency with the "business" package.
	BusinessInverseTable = "businesses"
	// BusinessColumn is the table column denoting the business relation/edge.
	BusinessColumn = "business_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "attached_documents"
	// DocumentsInverseTable is the table name for the AttachedDocument entity.
	// It exists in this package in order to avoid circular dependency with the "attacheddocument" package.
	DocumentsInverseTable = "attached_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "box_id"
)

// Columns holds all SQL columns for box fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldBoxType,
	FieldExpenseType,
	FieldContactName,
	FieldContactTaxID,
	FieldBoxDate,
	FieldHasVat,
	FieldHasWht,
	FieldWhtRate,
	FieldTotalAmount,
	FieldVatAmount,
	FieldWhtAmount,
	FieldPaymentStatus,
	FieldNoReceiptReason,
	FieldIsPaid,
	FieldWhtSent,
	FieldDocStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BoxTypeValidator is a validator for the "box_type" field. It is called by the builders before save.
	BoxTypeValidator func(string) error
	// ExpenseTypeValidator is a validator for the "expense_type" field. It is called by the builders before save.
	ExpenseTypeValidator func(string) error
	// DefaultContactName holds the default value on creation for the "contact_name" field.
	DefaultContactName string
	// DefaultContactTaxID holds the default value on creation for the "contact_tax_id" field.
	DefaultContactTaxID string
	// DefaultHasVat holds the default value on creation for the "has_vat" field.
	DefaultHasVat bool
	// DefaultHasWht holds the default value on creation for the "has_wht" field.
	DefaultHasWht bool
	// DefaultTotalAmount holds the default value on creation for the "total_amount" field.
	DefaultTotalAmount float64
	// DefaultVatAmount holds the default value on creation for the "vat_amount" field.
	DefaultVatAmount float64
	// DefaultWhtAmount holds the default value on creation for the "wht_amount" field.
	DefaultWhtAmount float64
	// DefaultPaymentStatus holds the default value on creation for the "payment_status" field.
	DefaultPaymentStatus string
	// PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	PaymentStatusValidator func(string) error
	// NoReceiptReasonValidator is a validator for the "no_receipt_reason" field. It is called by the builders before save.
	NoReceiptReasonValidator func(string) error
	// DefaultIsPaid holds the default value on creation for the "is_paid" field.
	DefaultIsPaid bool
	// DefaultWhtSent holds the default value on creation for the "wht_sent" field.
	DefaultWhtSent bool
	// DefaultDocStatus holds the default value on creation for the "doc_status" field.
	DefaultDocStatus string
	// DocStatusValidator is a validator for the "doc_status" field. It is called by the builders before save.
	DocStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Box queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByBoxType orders the results by the box_type field.
func ByBoxType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxType, opts...).ToFunc()
}

// ByExpenseType orders the results by the expense_type field.
func ByExpenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseType, opts...).ToFunc()
}

// ByContactName orders the results by the contact_name field.
func ByContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactName, opts...).ToFunc()
}

// ByContactTaxID orders the results by the contact_tax_id field.
func ByContactTaxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactTaxID, opts...).ToFunc()
}

// ByBoxDate orders the results by the box_date field.
func ByBoxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxDate, opts...).ToFunc()
}

// ByHasVat orders the results by the has_vat field.
func ByHasVat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasVat, opts...).ToFunc()
}

// ByHasWht orders the results by the has_wht field.
func ByHasWht(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasWht, opts...).ToFunc()
}

// ByWhtRate orders the results by the wht_rate field.
func ByWhtRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhtRate, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByVatAmount orders the results by the vat_amount field.
func ByVatAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatAmount, opts...).ToFunc()
}

// ByWhtAmount orders the results by the wht_amount field.
func ByWhtAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhtAmount, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// ByNoReceiptReason orders the results by the no_receipt_reason field.
func ByNoReceiptReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoReceiptReason, opts...).ToFunc()
}

// ByIsPaid orders the results by the is_paid field.
func ByIsPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPaid, opts...).ToFunc()
}

// ByWhtSent orders the results by the wht_sent field.
func ByWhtSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhtSent, opts...).ToFunc()
}

// ByDocStatus orders the results by the doc_status field.
func ByDocStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBusinessField orders the results by business field.
func ByBusinessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBusinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
