package constants

// BoxType is the transaction direction of a box.
type BoxType string

const (
	BoxTypeExpense    BoxType = "EXPENSE"
	BoxTypeIncome     BoxType = "INCOME"
	BoxTypeAdjustment BoxType = "ADJUSTMENT"
)

// ExpenseType refines EXPENSE boxes; absent for other box types.
type ExpenseType string

const (
	ExpenseTypeStandard  ExpenseType = "STANDARD"
	ExpenseTypeNoVat     ExpenseType = "NO_VAT"
	ExpenseTypePettyCash ExpenseType = "PETTY_CASH"
	ExpenseTypeForeign   ExpenseType = "FOREIGN"
)

// PaymentStatus tracks how much of a box has been settled.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// DocStatus is the derived completeness of a box. It is always a pure
// function of the box snapshot and its attached document types; it is
// never stored independently of a recompute.
type DocStatus string

const (
	DocStatusIncomplete DocStatus = "INCOMPLETE"
	DocStatusComplete   DocStatus = "COMPLETE"
	DocStatusNA         DocStatus = "NA"
)

func BoxTypeStrings() []string {
	return []string{string(BoxTypeExpense), string(BoxTypeIncome), string(BoxTypeAdjustment)}
}

func ExpenseTypeStrings() []string {
	return []string{
		string(ExpenseTypeStandard),
		string(ExpenseTypeNoVat),
		string(ExpenseTypePettyCash),
		string(ExpenseTypeForeign),
	}
}

func PaymentStatusStrings() []string {
	return []string{string(PaymentStatusUnpaid), string(PaymentStatusPartial), string(PaymentStatusPaid)}
}

func DocStatusStrings() []string {
	return []string{string(DocStatusIncomplete), string(DocStatusComplete), string(DocStatusNA)}
}
