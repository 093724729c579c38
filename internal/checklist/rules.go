package checklist

import (
	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// evalContext is everything a requirement may inspect.
type evalContext struct {
	flags    entity.ChecklistFlags
	docTypes map[constants.DocType]struct{}
}

func (c evalContext) hasAny(match func(constants.DocType) bool) bool {
	for dt := range c.docTypes {
		if match(dt) {
			return true
		}
	}
	return false
}

// requirement is one declarative checklist row. canToggle marks human
// attestations; everything else is satisfied by document presence.
type requirement struct {
	id             string
	label          string
	required       bool
	canToggle      bool
	relatedDocType *constants.DocType
	satisfied      func(evalContext) bool
}

func docTypeRef(dt constants.DocType) *constants.DocType { return &dt }

var (
	reqIsPaid = requirement{
		id:        "is_paid",
		label:     "Payment confirmed",
		required:  true,
		canToggle: true,
		satisfied: func(c evalContext) bool { return c.flags.IsPaid },
	}
	reqTaxInvoice = requirement{
		id:             "tax_invoice",
		label:          "Tax invoice",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeTaxInvoice),
		satisfied:      func(c evalContext) bool { return c.flags.HasTaxInvoice },
	}
	reqPaymentProof = requirement{
		id:             "payment_proof",
		label:          "Proof of payment",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeSlipTransfer),
		satisfied:      func(c evalContext) bool { return c.flags.HasPaymentProof },
	}
	reqCashReceipt = requirement{
		id:             "cash_receipt",
		label:          "Cash receipt",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeCashReceipt),
		satisfied: func(c evalContext) bool {
			return c.hasAny(constants.DocType.IsCashReceiptClass)
		},
	}
	reqOptionalReceipt = requirement{
		id:             "receipt",
		label:          "Receipt",
		required:       false,
		relatedDocType: docTypeRef(constants.DocTypeReceipt),
		satisfied: func(c evalContext) bool {
			return c.hasAny(constants.DocType.IsCashReceiptClass)
		},
	}
	reqForeignInvoice = requirement{
		id:             "foreign_invoice",
		label:          "Foreign invoice",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeForeignInvoice),
		satisfied: func(c evalContext) bool {
			_, ok := c.docTypes[constants.DocTypeForeignInvoice]
			return ok
		},
	}
	reqInvoice = requirement{
		id:             "invoice",
		label:          "Invoice issued",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeInvoice),
		satisfied:      func(c evalContext) bool { return c.flags.HasInvoice },
	}
	reqWhtSent = requirement{
		id:             "wht_sent",
		label:          "Withholding-tax certificate sent",
		required:       true,
		canToggle:      true,
		relatedDocType: docTypeRef(constants.DocTypeWhtSent),
		satisfied:      func(c evalContext) bool { return c.flags.WhtSent },
	}
	reqWhtReceived = requirement{
		id:             "wht_received",
		label:          "Withholding-tax certificate received",
		required:       true,
		relatedDocType: docTypeRef(constants.DocTypeWhtIncoming),
		satisfied:      func(c evalContext) bool { return c.flags.WhtReceived },
	}
)

type ruleKey struct {
	boxType     constants.BoxType
	expenseType constants.ExpenseType // zero for non-expense boxes
}

// ruleTable maps a box's kind onto its checklist rows. Keeping this as
// one table (instead of branching in code) makes the requirement set for
// every kind visible and testable in one place.
var ruleTable = map[ruleKey][]requirement{
	{constants.BoxTypeExpense, constants.ExpenseTypeStandard}:  {reqIsPaid, reqTaxInvoice, reqPaymentProof},
	{constants.BoxTypeExpense, constants.ExpenseTypeNoVat}:     {reqIsPaid, reqCashReceipt, reqPaymentProof},
	{constants.BoxTypeExpense, constants.ExpenseTypePettyCash}: {reqOptionalReceipt},
	{constants.BoxTypeExpense, constants.ExpenseTypeForeign}:   {reqForeignInvoice, reqPaymentProof},
	{constants.BoxTypeIncome, ""}:                              {reqIsPaid, reqInvoice},
	{constants.BoxTypeAdjustment, ""}:                          {},
}

// requirementsFor resolves the rule-table row plus the withholding-tax
// add-on. Unknown combinations fall back to the standard expense rules.
func requirementsFor(boxType constants.BoxType, expenseType constants.ExpenseType, hasWht bool) []requirement {
	key := ruleKey{boxType: boxType}
	if boxType == constants.BoxTypeExpense {
		key.expenseType = expenseType
	}
	reqs, ok := ruleTable[key]
	if !ok {
		reqs = ruleTable[ruleKey{constants.BoxTypeExpense, constants.ExpenseTypeStandard}]
	}

	out := make([]requirement, len(reqs))
	copy(out, reqs)
	if hasWht {
		switch boxType {
		case constants.BoxTypeExpense:
			out = append(out, reqWhtSent)
		case constants.BoxTypeIncome:
			out = append(out, reqWhtReceived)
		}
	}
	return out
}
