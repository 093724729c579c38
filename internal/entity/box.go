package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
)

// Box represents one unit of transaction evidence for data transfer
// between layers. DocStatus is derived; it is recomputed whenever the
// attached document set or a checklist-relevant flag changes.
type Box struct {
	ID              uuid.UUID                  `json:"id"`
	BusinessID      uuid.UUID                  `json:"business_id"`
	BoxType         constants.BoxType          `json:"box_type"`
	ExpenseType     *constants.ExpenseType     `json:"expense_type,omitempty"` // EXPENSE boxes only
	ContactName     string                     `json:"contact_name"`
	ContactTaxID    string                     `json:"contact_tax_id"`
	BoxDate         time.Time                  `json:"box_date"`
	HasVat          bool                       `json:"has_vat"`
	HasWht          bool                       `json:"has_wht"`
	WhtRate         *float64                   `json:"wht_rate,omitempty"`
	TotalAmount     float64                    `json:"total_amount"`
	VatAmount       float64                    `json:"vat_amount"`
	WhtAmount       float64                    `json:"wht_amount"`
	PaymentStatus   constants.PaymentStatus    `json:"payment_status"`
	NoReceiptReason *constants.NoReceiptReason `json:"no_receipt_reason,omitempty"`

	// Human attestations. These are set by an accountant, never derived
	// from uploaded evidence.
	IsPaid  bool `json:"is_paid"`
	WhtSent bool `json:"wht_sent"`

	DocStatus constants.DocStatus `json:"doc_status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
