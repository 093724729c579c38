package constants

import "strings"

// DocType is the canonical tag for a document attached to a box.
type DocType string

// Stable values (store these exact strings in DB).
const (
	DocTypeTaxInvoice     DocType = "TAX_INVOICE"
	DocTypeTaxInvoiceAbb  DocType = "TAX_INVOICE_ABB" // abbreviated tax invoice
	DocTypeSlipTransfer   DocType = "SLIP_TRANSFER"
	DocTypeBankStatement  DocType = "BANK_STATEMENT"
	DocTypeReceipt        DocType = "RECEIPT"
	DocTypeInvoice        DocType = "INVOICE"
	DocTypeWhtSent        DocType = "WHT_SENT"     // withholding-tax certificate we issued
	DocTypeWhtIncoming    DocType = "WHT_INCOMING" // withholding-tax certificate issued to us
	DocTypeCashReceipt    DocType = "CASH_RECEIPT"
	DocTypeCreditNote     DocType = "CREDIT_NOTE"
	DocTypeForeignInvoice DocType = "FOREIGN_INVOICE"
	DocTypeOther          DocType = "OTHER"
)

var allDocTypes = []DocType{
	DocTypeTaxInvoice,
	DocTypeTaxInvoiceAbb,
	DocTypeSlipTransfer,
	DocTypeBankStatement,
	DocTypeReceipt,
	DocTypeInvoice,
	DocTypeWhtSent,
	DocTypeWhtIncoming,
	DocTypeCashReceipt,
	DocTypeCreditNote,
	DocTypeForeignInvoice,
	DocTypeOther,
}

// DocTypeStrings returns the closed list of values for schema enums.
func DocTypeStrings() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// IsTaxInvoiceClass reports whether dt counts as tax-invoice evidence.
// Both full and abbreviated tax invoices qualify.
func (dt DocType) IsTaxInvoiceClass() bool {
	return dt == DocTypeTaxInvoice || dt == DocTypeTaxInvoiceAbb
}

// IsPaymentProofClass reports whether dt counts as proof of payment.
func (dt DocType) IsPaymentProofClass() bool {
	switch dt {
	case DocTypeSlipTransfer, DocTypeBankStatement, DocTypeReceipt:
		return true
	}
	return false
}

// IsCashReceiptClass reports whether dt serves as a cash-receipt for
// no-VAT expenses.
func (dt DocType) IsCashReceiptClass() bool {
	return dt == DocTypeCashReceipt || dt == DocTypeReceipt
}

// CanonicalizeDocType maps a free-form classifier label onto the closed
// DocType set. Returns (DocTypeOther, false) for anything unrecognized.
func CanonicalizeDocType(input string) (DocType, bool) {
	if input == "" {
		return DocTypeOther, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	// synonyms map for common classifier labels
	synonyms := map[string]DocType{
		"FULL_TAX_INVOICE":        DocTypeTaxInvoice,
		"ABBREVIATED_TAX_INVOICE": DocTypeTaxInvoiceAbb,
		"ABB_TAX_INVOICE":         DocTypeTaxInvoiceAbb,
		"TRANSFER_SLIP":           DocTypeSlipTransfer,
		"PAYMENT_SLIP":            DocTypeSlipTransfer,
		"SLIP":                    DocTypeSlipTransfer,
		"STATEMENT":               DocTypeBankStatement,
		"WHT_CERTIFICATE":         DocTypeWhtSent,
		"WITHHOLDING_TAX":         DocTypeWhtSent,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return DocTypeOther, false
}
