package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
)

// Extraction is the machine-read output for one file. It is immutable
// once created; re-reading a file produces a new record.
type Extraction struct {
	ID             uuid.UUID                  `json:"id"`
	DocumentID     uuid.UUID                  `json:"document_id"`
	Filename       string                     `json:"filename"`
	DocType        constants.DocType          `json:"doc_type"`
	Confidence     float32                    `json:"confidence"`
	Amount         *float64                   `json:"amount,omitempty"`
	VatAmount      *float64                   `json:"vat_amount,omitempty"`
	ContactName    *string                    `json:"contact_name,omitempty"`
	DocumentDate   *time.Time                 `json:"document_date,omitempty"`
	DocumentNumber *string                    `json:"document_number,omitempty"`
	TaxID          *string                    `json:"tax_id,omitempty"`
	Description    *string                    `json:"description,omitempty"`
	Status         constants.ExtractionStatus `json:"status"`
	ErrorMessage   *string                    `json:"error_message,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// Usable reports whether the record carries fields worth aggregating or
// linking. Failed or pending reads contribute nothing.
func (e *Extraction) Usable() bool {
	return e.Status == constants.ExtractionDone
}
