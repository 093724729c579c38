package constants

// NoReceiptReason explains why a box legitimately has no source document.
type NoReceiptReason string

const (
	ReasonSalary           NoReceiptReason = "SALARY"
	ReasonGovernmentFee    NoReceiptReason = "GOVERNMENT_FEE"
	ReasonGovernmentFine   NoReceiptReason = "GOVERNMENT_FINE"
	ReasonInternalTransfer NoReceiptReason = "INTERNAL_TRANSFER"
	ReasonLostDocument     NoReceiptReason = "LOST_DOCUMENT"
	ReasonVendorNoReceipt  NoReceiptReason = "VENDOR_NO_RECEIPT"
)

// NoReceiptReasonStrings returns the closed list of values for schema
// enums.
func NoReceiptReasonStrings() []string {
	return []string{
		string(ReasonSalary),
		string(ReasonGovernmentFee),
		string(ReasonGovernmentFine),
		string(ReasonInternalTransfer),
		string(ReasonLostDocument),
		string(ReasonVendorNoReceipt),
	}
}

// checklistExemptReasons is the exact set of reasons that route a box
// straight to DocStatusNA. GOVERNMENT_FINE is intentionally absent even
// though GOVERNMENT_FEE is exempt: fines still go through the normal
// checklist. Do not derive this set from naming patterns.
var checklistExemptReasons = map[NoReceiptReason]struct{}{
	ReasonSalary:           {},
	ReasonGovernmentFee:    {},
	ReasonInternalTransfer: {},
}

// IsChecklistExempt reports whether the reason bypasses checklist
// evaluation entirely.
func (r NoReceiptReason) IsChecklistExempt() bool {
	_, ok := checklistExemptReasons[r]
	return ok
}
