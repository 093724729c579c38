package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
)

func reasonRef(r constants.NoReceiptReason) *constants.NoReceiptReason { return &r }

func TestDeriveAutoFlags(t *testing.T) {
	tests := []struct {
		name     string
		docTypes []constants.DocType
		want     entity.ChecklistFlags
	}{
		{
			name:     "empty set yields no flags",
			docTypes: nil,
			want:     entity.ChecklistFlags{},
		},
		{
			name:     "full tax invoice",
			docTypes: []constants.DocType{constants.DocTypeTaxInvoice},
			want:     entity.ChecklistFlags{HasTaxInvoice: true},
		},
		{
			name:     "abbreviated tax invoice counts as tax invoice",
			docTypes: []constants.DocType{constants.DocTypeTaxInvoiceAbb},
			want:     entity.ChecklistFlags{HasTaxInvoice: true},
		},
		{
			name:     "transfer slip is payment proof",
			docTypes: []constants.DocType{constants.DocTypeSlipTransfer},
			want:     entity.ChecklistFlags{HasPaymentProof: true},
		},
		{
			name:     "bank statement is payment proof",
			docTypes: []constants.DocType{constants.DocTypeBankStatement},
			want:     entity.ChecklistFlags{HasPaymentProof: true},
		},
		{
			name:     "wht certificates set issue and receive flags",
			docTypes: []constants.DocType{constants.DocTypeWhtSent, constants.DocTypeWhtIncoming},
			want:     entity.ChecklistFlags{WhtIssued: true, WhtReceived: true},
		},
		{
			name: "mixed set",
			docTypes: []constants.DocType{
				constants.DocTypeTaxInvoice,
				constants.DocTypeSlipTransfer,
				constants.DocTypeInvoice,
			},
			want: entity.ChecklistFlags{HasTaxInvoice: true, HasPaymentProof: true, HasInvoice: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAutoFlags(tt.docTypes))
		})
	}
}

// Adding documents can only set flags, never clear one already set.
func TestDeriveAutoFlagsMonotonic(t *testing.T) {
	all := constants.DocTypeStrings()
	base := []constants.DocType{constants.DocTypeTaxInvoice, constants.DocTypeSlipTransfer}
	before := DeriveAutoFlags(base)

	for _, s := range all {
		extended := append(append([]constants.DocType{}, base...), constants.DocType(s))
		after := DeriveAutoFlags(extended)

		if before.HasTaxInvoice {
			assert.True(t, after.HasTaxInvoice, "adding %s cleared HasTaxInvoice", s)
		}
		if before.HasPaymentProof {
			assert.True(t, after.HasPaymentProof, "adding %s cleared HasPaymentProof", s)
		}
	}
}

func TestDeriveAutoFlagsNeverSetsAttestations(t *testing.T) {
	var docTypes []constants.DocType
	for _, s := range constants.DocTypeStrings() {
		docTypes = append(docTypes, constants.DocType(s))
	}
	flags := DeriveAutoFlags(docTypes)
	assert.False(t, flags.IsPaid)
	assert.False(t, flags.WhtSent)
}

func TestBuildChecklistStandardExpense(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
		HasVat:      true,
		DocTypes:    []constants.DocType{constants.DocTypeTaxInvoice},
		Flags: entity.ChecklistFlags{
			HasTaxInvoice: true,
		},
	}
	items := BuildChecklist(in)
	require.Len(t, items, 3)

	byID := map[string]entity.ChecklistItem{}
	for _, it := range items {
		byID[it.ID] = it
	}

	assert.True(t, byID["tax_invoice"].Completed)
	assert.False(t, byID["payment_proof"].Completed)
	assert.False(t, byID["is_paid"].Completed)
	assert.True(t, byID["is_paid"].CanToggle)
	assert.False(t, byID["tax_invoice"].CanToggle)
}

func TestBuildChecklistWhtAddOn(t *testing.T) {
	expense := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
		HasWht:      true,
	}
	items := BuildChecklist(expense)
	require.Len(t, items, 4)
	assert.Equal(t, "wht_sent", items[3].ID)
	assert.True(t, items[3].CanToggle)

	income := StatusInput{
		BoxType: constants.BoxTypeIncome,
		HasWht:  true,
	}
	items = BuildChecklist(income)
	require.Len(t, items, 3)
	assert.Equal(t, "wht_received", items[2].ID)
	assert.False(t, items[2].CanToggle)
}

func TestBuildChecklistPettyCash(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypePettyCash,
	}
	items := BuildChecklist(in)
	require.Len(t, items, 1)
	assert.False(t, items[0].Required)
	assert.Equal(t, constants.DocStatusComplete, DetermineStatus(in))
	assert.Equal(t, 100, CompletionPercent(items))
}

func TestBuildChecklistNoVatUsesCashReceiptClass(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeNoVat,
		DocTypes:    []constants.DocType{constants.DocTypeReceipt},
	}
	items := BuildChecklist(in)

	var cash entity.ChecklistItem
	for _, it := range items {
		if it.ID == "cash_receipt" {
			cash = it
		}
	}
	assert.True(t, cash.Completed, "generic receipt should satisfy the cash receipt row")
}

func TestBuildChecklistUnknownComboFallsBack(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseType("SOMETHING_NEW"),
	}
	fallback := BuildChecklist(StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
	})
	items := BuildChecklist(in)
	require.Equal(t, len(fallback), len(items))
	for i := range items {
		assert.Equal(t, fallback[i].ID, items[i].ID)
	}
}

func TestDetermineStatus(t *testing.T) {
	complete := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
		DocTypes: []constants.DocType{
			constants.DocTypeTaxInvoice,
			constants.DocTypeSlipTransfer,
		},
		Flags: entity.ChecklistFlags{
			HasTaxInvoice:   true,
			HasPaymentProof: true,
			IsPaid:          true,
		},
	}
	assert.Equal(t, constants.DocStatusComplete, DetermineStatus(complete))

	incomplete := complete
	incomplete.Flags.IsPaid = false
	assert.Equal(t, constants.DocStatusIncomplete, DetermineStatus(incomplete))
}

// A box paid by transfer slip stays incomplete until its tax invoice
// arrives; the abbreviated form is enough.
func TestStandardExpenseCompletesWithAbbreviatedInvoice(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
		HasVat:      true,
		DocTypes:    []constants.DocType{constants.DocTypeSlipTransfer},
	}
	in.Flags = DeriveAutoFlags(in.DocTypes)
	in.Flags.IsPaid = true
	assert.Equal(t, constants.DocStatusIncomplete, DetermineStatus(in))

	in.DocTypes = append(in.DocTypes, constants.DocTypeTaxInvoiceAbb)
	in.Flags = DeriveAutoFlags(in.DocTypes)
	in.Flags.IsPaid = true
	assert.Equal(t, constants.DocStatusComplete, DetermineStatus(in))
}

func TestIncomeWithWhtNeedsCertificate(t *testing.T) {
	in := StatusInput{
		BoxType:  constants.BoxTypeIncome,
		HasWht:   true,
		DocTypes: []constants.DocType{constants.DocTypeInvoice},
	}
	in.Flags = DeriveAutoFlags(in.DocTypes)
	in.Flags.IsPaid = true
	assert.Equal(t, constants.DocStatusIncomplete, DetermineStatus(in))

	in.DocTypes = append(in.DocTypes, constants.DocTypeWhtIncoming)
	in.Flags = DeriveAutoFlags(in.DocTypes)
	in.Flags.IsPaid = true
	assert.Equal(t, constants.DocStatusComplete, DetermineStatus(in))
}

func TestDetermineStatusExemptReasons(t *testing.T) {
	base := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
	}

	tests := []struct {
		reason constants.NoReceiptReason
		want   constants.DocStatus
	}{
		{constants.ReasonSalary, constants.DocStatusNA},
		{constants.ReasonGovernmentFee, constants.DocStatusNA},
		{constants.ReasonInternalTransfer, constants.DocStatusNA},
		{constants.ReasonGovernmentFine, constants.DocStatusIncomplete},
		{constants.ReasonLostDocument, constants.DocStatusIncomplete},
		{constants.ReasonVendorNoReceipt, constants.DocStatusIncomplete},
	}
	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			in := base
			in.NoReceiptReason = reasonRef(tt.reason)
			assert.Equal(t, tt.want, DetermineStatus(in))
		})
	}
}

// An exempt reason wins even when every requirement is already met.
func TestExemptReasonShortCircuits(t *testing.T) {
	in := StatusInput{
		BoxType:     constants.BoxTypeExpense,
		ExpenseType: constants.ExpenseTypeStandard,
		DocTypes: []constants.DocType{
			constants.DocTypeTaxInvoice,
			constants.DocTypeSlipTransfer,
		},
		Flags: entity.ChecklistFlags{
			HasTaxInvoice:   true,
			HasPaymentProof: true,
			IsPaid:          true,
		},
		NoReceiptReason: reasonRef(constants.ReasonSalary),
	}
	assert.Equal(t, constants.DocStatusNA, DetermineStatus(in))
}

func TestCompletionPercent(t *testing.T) {
	items := []entity.ChecklistItem{
		{ID: "a", Required: true, Completed: true},
		{ID: "b", Required: true, Completed: false},
		{ID: "c", Required: true, Completed: false},
		{ID: "d", Required: false, Completed: false},
	}
	assert.Equal(t, 33, CompletionPercent(items))

	items[1].Completed = true
	assert.Equal(t, 67, CompletionPercent(items))

	assert.Equal(t, 100, CompletionPercent(nil))
	assert.Equal(t, 100, CompletionPercent([]entity.ChecklistItem{{Required: false}}))
}

func TestAllRequiredComplete(t *testing.T) {
	assert.True(t, AllRequiredComplete(nil))
	assert.True(t, AllRequiredComplete([]entity.ChecklistItem{
		{Required: true, Completed: true},
		{Required: false, Completed: false},
	}))
	assert.False(t, AllRequiredComplete([]entity.ChecklistItem{
		{Required: true, Completed: false},
	}))
}
