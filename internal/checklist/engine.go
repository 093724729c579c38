package checklist

import (
	"math"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// StatusInput is the box snapshot the engine evaluates. All fields come
// from the caller; the engine reads nothing else, so identical inputs
// always yield identical results.
type StatusInput struct {
	BoxType         constants.BoxType
	ExpenseType     constants.ExpenseType // EXPENSE boxes only, zero otherwise
	HasVat          bool
	HasWht          bool
	Flags           entity.ChecklistFlags
	DocTypes        []constants.DocType
	NoReceiptReason *constants.NoReceiptReason
}

// DeriveAutoFlags computes presence-based evidence flags from the set of
// attached document types. Purely additive: adding a type can only set
// flags. IsPaid and WhtSent are attestations and are never touched here,
// even when matching evidence is present.
func DeriveAutoFlags(docTypes []constants.DocType) entity.ChecklistFlags {
	var flags entity.ChecklistFlags
	for _, dt := range docTypes {
		if dt.IsTaxInvoiceClass() {
			flags.HasTaxInvoice = true
		}
		if dt.IsPaymentProofClass() {
			flags.HasPaymentProof = true
		}
		switch dt {
		case constants.DocTypeInvoice:
			flags.HasInvoice = true
		case constants.DocTypeWhtSent:
			flags.WhtIssued = true
		case constants.DocTypeWhtIncoming:
			flags.WhtReceived = true
		}
	}
	return flags
}

// BuildChecklist materializes the checklist rows for a box snapshot.
func BuildChecklist(in StatusInput) []entity.ChecklistItem {
	ctx := newEvalContext(in)
	reqs := requirementsFor(in.BoxType, in.ExpenseType, in.HasWht)

	items := make([]entity.ChecklistItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, entity.ChecklistItem{
			ID:             r.id,
			Label:          r.label,
			Required:       r.required,
			Completed:      r.satisfied(ctx),
			CanToggle:      r.canToggle,
			RelatedDocType: r.relatedDocType,
		})
	}
	return items
}

// DetermineStatus derives a box's completeness. Exempt no-receipt
// reasons short-circuit to NA before anything else is considered; all
// other reasons go through normal evaluation.
func DetermineStatus(in StatusInput) constants.DocStatus {
	if in.NoReceiptReason != nil && in.NoReceiptReason.IsChecklistExempt() {
		return constants.DocStatusNA
	}
	if AllRequiredComplete(BuildChecklist(in)) {
		return constants.DocStatusComplete
	}
	return constants.DocStatusIncomplete
}

// CompletionPercent reports required-item progress as 0..100. With no
// required items there is nothing blocking completion, so 100.
func CompletionPercent(items []entity.ChecklistItem) int {
	total, done := 0, 0
	for _, it := range items {
		if !it.Required {
			continue
		}
		total++
		if it.Completed {
			done++
		}
	}
	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// AllRequiredComplete reports whether no required item is outstanding.
func AllRequiredComplete(items []entity.ChecklistItem) bool {
	for _, it := range items {
		if it.Required && !it.Completed {
			return false
		}
	}
	return true
}

func newEvalContext(in StatusInput) evalContext {
	set := make(map[constants.DocType]struct{}, len(in.DocTypes))
	for _, dt := range in.DocTypes {
		set[dt] = struct{}{}
	}
	return evalContext{flags: in.Flags, docTypes: set}
}
