// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
)

// Box is the model entity for the Box schema.
type Box struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID uuid.UUID `json:"business_id,omitempty"`
	// BoxType holds the value of the "box_type" field.
	BoxType string `json:"box_type,omitempty"`
	// ExpenseType holds the value of the "expense_type" field.
	ExpenseType *string `json:"expense_type,omitempty"`
	// ContactName holds the value of the "contact_name" field.
	ContactName string `json:"contact_name,omitempty"`
	// ContactTaxID holds the value of the "contact_tax_id" field.
	ContactTaxID string `json:"contact_tax_id,omitempty"`
	// BoxDate holds the value of the "box_date" field.
	BoxDate time.Time `json:"box_date,omitempty"`
	// HasVat holds the value of the "has_vat" field.
	HasVat bool `json:"has_vat,omitempty"`
	// HasWht holds the value of the "has_wht" field.
	HasWht bool `json:"has_wht,omitempty"`
	// WhtRate holds the value of the "wht_rate" field.
	WhtRate *float64 `json:"wht_rate,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// VatAmount holds the value of the "vat_amount" field.
	VatAmount float64 `json:"vat_amount,omitempty"`
	// WhtAmount holds the value of the "wht_amount" field.
	WhtAmount float64 `json:"wht_amount,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus string `json:"payment_status,omitempty"`
	// NoReceiptReason holds the value of the "no_receipt_reason" field.
	NoReceiptReason *string `json:"no_receipt_reason,omitempty"`
	// IsPaid holds the value of the "is_paid" field.
	IsPaid bool `json:"is_paid,omitempty"`
	// WhtSent holds the value of the "wht_sent" field.
	WhtSent bool `json:"wht_sent,omitempty"`
	// DocStatus holds the value of the "doc_status" field.
	DocStatus string `json:"doc_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BoxQuery when eager-loading is set.
	Edges        BoxEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BoxEdges holds the relations/edges for other nodes in the graph.
type BoxEdges struct {
	// Business holds the value of the business edge.
	Business *Business `json:"business,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*AttachedDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoxEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e BoxEdges) DocumentsOrErr() ([]*AttachedDocument, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Box) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case box.FieldHasVat, box.FieldHasWht, box.FieldIsPaid, box.FieldWhtSent:
			values[i] = new(sql.NullBool)
		case box.FieldWhtRate, box.FieldTotalAmount, box.FieldVatAmount, box.FieldWhtAmount:
			values[i] = new(sql.NullFloat64)
		case box.FieldBoxType, box.FieldExpenseType, box.FieldContactName, box.FieldContactTaxID, box.FieldPaymentStatus, box.FieldNoReceiptReason, box.FieldDocStatus:
			values[i] = new(sql.NullString)
		case box.FieldBoxDate, box.FieldCreatedAt, box.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case box.FieldID, box.FieldBusinessID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Box fields.
func (_m *Box) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case box.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case box.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case box.FieldBoxType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field box_type", values[i])
			} else if value.Valid {
				_m.BoxType = value.String
			}
		case box.FieldExpenseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expense_type", values[i])
			} else if value.Valid {
				_m.ExpenseType = new(string)
				*_m.ExpenseType = value.String
			}
		case box.FieldContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name", values[i])
			} else if value.Valid {
				_m.ContactName = value.String
			}
		case box.FieldContactTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_tax_id", values[i])
			} else if value.Valid {
				_m.ContactTaxID = value.String
			}
		case box.FieldBoxDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field box_date", values[i])
			} else if value.Valid {
				_m.BoxDate = value.Time
			}
		case box.FieldHasVat:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_vat", values[i])
			} else if value.Valid {
				_m.HasVat = value.Bool
			}
		case box.FieldHasWht:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_wht", values[i])
			} else if value.Valid {
				_m.HasWht = value.Bool
			}
		case box.FieldWhtRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wht_rate", values[i])
			} else if value.Valid {
				_m.WhtRate = new(float64)
				*_m.WhtRate = value.Float64
			}
		case box.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case box.FieldVatAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount", values[i])
			} else if value.Valid {
				_m.VatAmount = value.Float64
			}
		case box.FieldWhtAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wht_amount", values[i])
			} else if value.Valid {
				_m.WhtAmount = value.Float64
			}
		case box.FieldPaymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[i])
			} else if value.Valid {
				_m.PaymentStatus = value.String
			}
		case box.FieldNoReceiptReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field no_receipt_reason", values[i])
			} else if value.Valid {
				_m.NoReceiptReason = new(string)
				*_m.NoReceiptReason = value.String
			}
		case box.FieldIsPaid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_paid", values[i])
			} else if value.Valid {
				_m.IsPaid = value.Bool
			}
		case box.FieldWhtSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field wht_sent", values[i])
			} else if value.Valid {
				_m.WhtSent = value.Bool
			}
		case box.FieldDocStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_status", values[i])
			} else if value.Valid {
				_m.DocStatus = value.String
			}
		case box.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case box.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Box.
// This includes values selected through modifiers, order, etc.
func (_m *Box) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the Box entity.
func (_m *Box) QueryBusiness() *BusinessQuery {
	return NewBoxClient(_m.config).QueryBusiness(_m)
}

// QueryDocuments queries the "documents" edge of the Box entity.
func (_m *Box) QueryDocuments() *AttachedDocumentQuery {
	return NewBoxClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this Box.
// Note that you need to call Box.Unwrap() before calling this method if this Box
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Box) Update() *BoxUpdateOne {
	return NewBoxClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Box entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Box) Unwrap() *Box {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Box is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Box) String() string {
	var builder strings.Builder
	builder.WriteString("Box(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("box_type=")
	builder.WriteString(_m.BoxType)
	builder.WriteString(", ")
	if v := _m.ExpenseType; v != nil {
		builder.WriteString("expense_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("contact_name=")
	builder.WriteString(_m.ContactName)
	builder.WriteString(", ")
	builder.WriteString("contact_tax_id=")
	builder.WriteString(_m.ContactTaxID)
	builder.WriteString(", ")
	builder.WriteString("box_date=")
	builder.WriteString(_m.BoxDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("has_vat=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasVat))
	builder.WriteString(", ")
	builder.WriteString("has_wht=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasWht))
	builder.WriteString(", ")
	if v := _m.WhtRate; v != nil {
		builder.WriteString("wht_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("vat_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.VatAmount))
	builder.WriteString(", ")
	builder.WriteString("wht_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhtAmount))
	builder.WriteString(", ")
	builder.WriteString("payment_status=")
	builder.WriteString(_m.PaymentStatus)
	builder.WriteString(", ")
	if v := _m.NoReceiptReason; v != nil {
		builder.WriteString("no_receipt_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPaid))
	builder.WriteString(", ")
	builder.WriteString("wht_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhtSent))
	builder.WriteString(", ")
	builder.WriteString("doc_status=")
	builder.WriteString(_m.DocStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Boxes is a parsable slice of Box.
type Boxes []*Box
