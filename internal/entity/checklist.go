package entity

import "github.com/teerapat-ng/docbox/constants"

// ChecklistFlags is the evidence state that feeds status derivation.
// The first group is derived from document presence; the second group
// holds human attestations and is never auto-set.
type ChecklistFlags struct {
	HasTaxInvoice   bool `json:"has_tax_invoice"`
	HasPaymentProof bool `json:"has_payment_proof"`
	HasInvoice      bool `json:"has_invoice"`
	WhtIssued       bool `json:"wht_issued"`
	WhtReceived     bool `json:"wht_received"`

	IsPaid  bool `json:"is_paid"`
	WhtSent bool `json:"wht_sent"`
}

// ChecklistItem is one row of a box's checklist. Items are ephemeral:
// recomputed on every evaluation, never persisted on their own.
type ChecklistItem struct {
	ID             string             `json:"id"`
	Label          string             `json:"label"`
	Required       bool               `json:"required"`
	Completed      bool               `json:"completed"`
	CanToggle      bool               `json:"can_toggle"` // true for human-attestation items
	RelatedDocType *constants.DocType `json:"related_doc_type,omitempty"`
}
