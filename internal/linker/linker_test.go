package linker

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
)

func strRef(s string) *string       { return &s }
func numRef(f float64) *float64     { return &f }
func dateRef(t time.Time) *time.Time { return &t }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func openBox(id uuid.UUID) entity.Box {
	return entity.Box{
		ID:         id,
		BoxType:    constants.BoxTypeExpense,
		DocStatus:  constants.DocStatusIncomplete,
		BoxDate:    day(2025, 3, 10),
	}
}

func TestFindMatchNoCandidates(t *testing.T) {
	ex := entity.Extraction{DocType: constants.DocTypeTaxInvoice, Status: constants.ExtractionDone}
	res := FindMatch(ex, nil)

	assert.False(t, res.HasMatch)
	assert.Empty(t, res.Matches)
	assert.Equal(t, entity.ActionCreateNew, res.SuggestedAction)
	assert.NotEmpty(t, res.Reason)
}

// A slip for a box opened from its tax invoice: same tax ID, similar
// name, amount within 1%, same-day date. This is the strong-match path.
func TestFindMatchStrongMatchAttaches(t *testing.T) {
	boxID := uuid.New()
	box := openBox(boxID)
	box.ContactName = "ACME Trading Co., Ltd."
	box.ContactTaxID = "0105551234567"
	box.TotalAmount = 1200.00

	ex := entity.Extraction{
		DocType:      constants.DocTypeSlipTransfer,
		Status:       constants.ExtractionDone,
		ContactName:  strRef("ACME Trading"),
		TaxID:        strRef("0-1055-51234-56-7"),
		Amount:       numRef(1200.00),
		DocumentDate: dateRef(day(2025, 3, 10)),
	}

	res := FindMatch(ex, []Candidate{{
		Box:      box,
		DocTypes: []constants.DocType{constants.DocTypeTaxInvoice},
	}})

	require.True(t, res.HasMatch)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, entity.ActionAttachExisting, res.SuggestedAction)
	assert.Equal(t, boxID, res.Matches[0].BoxID)
	assert.GreaterOrEqual(t, res.Matches[0].Score, attachThreshold)
	assert.NotEmpty(t, res.Matches[0].Reasons)
}

func TestFindMatchWeakCandidatesDropped(t *testing.T) {
	box := openBox(uuid.New())
	box.ContactName = "Totally Different Vendor"
	box.TotalAmount = 99999

	ex := entity.Extraction{
		DocType:     constants.DocTypeTaxInvoice,
		Status:      constants.ExtractionDone,
		ContactName: strRef("ACME Trading"),
		Amount:      numRef(50),
	}

	res := FindMatch(ex, []Candidate{{Box: box, DocTypes: []constants.DocType{constants.DocTypeTaxInvoice}}})
	assert.False(t, res.HasMatch)
	assert.Empty(t, res.Matches)
	assert.Equal(t, entity.ActionCreateNew, res.SuggestedAction)
}

// A middling candidate is surfaced for review but never auto-attached.
func TestFindMatchMiddlingCandidateSurfaced(t *testing.T) {
	box := openBox(uuid.New())
	box.ContactName = "ACME Trading Co., Ltd."

	ex := entity.Extraction{
		DocType:     constants.DocTypeTaxInvoice,
		Status:      constants.ExtractionDone,
		ContactName: strRef("ACME Trading"),
	}

	// Name similarity (+30) plus gap fill (+20) lands between the floor
	// and the attach threshold.
	res := FindMatch(ex, []Candidate{{Box: box}})
	require.True(t, res.HasMatch)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 50, res.Matches[0].Score)
	assert.Equal(t, entity.ActionCreateNew, res.SuggestedAction)
}

func TestFindMatchRankingIsStable(t *testing.T) {
	strong := openBox(uuid.New())
	strong.ContactTaxID = "0105551234567"
	strong.TotalAmount = 1000

	weak := openBox(uuid.New())
	weak.ContactName = "ACME Trading Co., Ltd."

	ex := entity.Extraction{
		DocType:     constants.DocTypeTaxInvoice,
		Status:      constants.ExtractionDone,
		TaxID:       strRef("0105551234567"),
		ContactName: strRef("ACME Trading"),
		Amount:      numRef(1000),
	}

	res := FindMatch(ex, []Candidate{
		{Box: weak},
		{Box: strong},
	})
	require.Len(t, res.Matches, 2)
	assert.Equal(t, strong.ID, res.Matches[0].BoxID)
	assert.Greater(t, res.Matches[0].Score, res.Matches[1].Score)
}

func TestScoreCandidateSignals(t *testing.T) {
	base := openBox(uuid.New())

	tests := []struct {
		name      string
		ex        entity.Extraction
		cand      Candidate
		wantScore int
	}{
		{
			name: "tax id alone",
			ex:   entity.Extraction{DocType: constants.DocTypeOther, TaxID: strRef("1234567890123")},
			cand: func() Candidate {
				b := base
				b.ContactTaxID = "1234567890123"
				return Candidate{Box: b}
			}(),
			wantScore: scoreTaxIDMatch,
		},
		{
			name: "amount within 1 percent",
			ex:   entity.Extraction{DocType: constants.DocTypeOther, Amount: numRef(1005)},
			cand: func() Candidate {
				b := base
				b.TotalAmount = 1000
				return Candidate{Box: b}
			}(),
			wantScore: scoreAmountTight,
		},
		{
			name: "amount within 5 percent",
			ex:   entity.Extraction{DocType: constants.DocTypeOther, Amount: numRef(1040)},
			cand: func() Candidate {
				b := base
				b.TotalAmount = 1000
				return Candidate{Box: b}
			}(),
			wantScore: scoreAmountLoose,
		},
		{
			name:      "zero-amount box gets awaiting bonus",
			ex:        entity.Extraction{DocType: constants.DocTypeOther, Amount: numRef(1234)},
			cand:      Candidate{Box: base},
			wantScore: scoreAwaitingAmount,
		},
		{
			name: "date within a day",
			ex:   entity.Extraction{DocType: constants.DocTypeOther, DocumentDate: dateRef(day(2025, 3, 11))},
			cand: Candidate{Box: base},
			wantScore: scoreDateNear,
		},
		{
			name: "date within a week",
			ex:   entity.Extraction{DocType: constants.DocTypeOther, DocumentDate: dateRef(day(2025, 3, 15))},
			cand: Candidate{Box: base},
			wantScore: scoreDateClose,
		},
		{
			name:      "tax invoice fills a gap",
			ex:        entity.Extraction{DocType: constants.DocTypeTaxInvoice},
			cand:      Candidate{Box: base},
			wantScore: scoreFillsTaxInvoice,
		},
		{
			name: "duplicate tax invoice is penalized",
			ex:   entity.Extraction{DocType: constants.DocTypeTaxInvoice},
			cand: Candidate{
				Box:      base,
				DocTypes: []constants.DocType{constants.DocTypeTaxInvoice},
			},
			wantScore: -penaltyDuplicateType,
		},
		{
			name:      "payment proof fills a gap",
			ex:        entity.Extraction{DocType: constants.DocTypeSlipTransfer},
			cand:      Candidate{Box: base},
			wantScore: scoreFillsProof,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := scoreCandidate(tt.ex, tt.cand)
			assert.Equal(t, tt.wantScore, score)
			assert.NotEmpty(t, reasons)
		})
	}
}

// A tax invoice arriving for a box that was opened from a payment slip:
// tax ID match, zero-amount bonus, date proximity, and the gap fill
// together clear the attach threshold.
func TestSlipFirstInvoiceLaterAttaches(t *testing.T) {
	boxID := uuid.New()
	box := entity.Box{
		ID:           boxID,
		BoxType:      constants.BoxTypeExpense,
		ContactTaxID: "0105550000123",
		TotalAmount:  0,
		BoxDate:      day(2026, 1, 14),
		DocStatus:    constants.DocStatusIncomplete,
	}

	ex := entity.Extraction{
		DocType:      constants.DocTypeTaxInvoice,
		Status:       constants.ExtractionDone,
		TaxID:        strRef("0105550000123"),
		Amount:       numRef(1070),
		DocumentDate: dateRef(day(2026, 1, 15)),
	}

	res := FindMatch(ex, []Candidate{{
		Box:      box,
		DocTypes: []constants.DocType{constants.DocTypeSlipTransfer},
	}})
	require.True(t, res.HasMatch)
	assert.GreaterOrEqual(t, res.Matches[0].Score, attachThreshold)
	assert.Equal(t, entity.ActionAttachExisting, res.SuggestedAction)
}

// Satisfying one more positive signal never lowers a candidate's score.
func TestScoreMonotonicInPositiveSignals(t *testing.T) {
	box := openBox(uuid.New())
	box.ContactTaxID = "0105551234567"
	box.ContactName = "ACME Trading Co., Ltd."
	box.TotalAmount = 1000

	base := entity.Extraction{DocType: constants.DocTypeOther}
	addSignal := []func(*entity.Extraction){
		func(ex *entity.Extraction) { ex.TaxID = strRef("0105551234567") },
		func(ex *entity.Extraction) { ex.ContactName = strRef("ACME Trading") },
		func(ex *entity.Extraction) { ex.Amount = numRef(1000) },
		func(ex *entity.Extraction) { ex.DocumentDate = dateRef(day(2025, 3, 10)) },
	}

	prev := 0
	ex := base
	for i, add := range addSignal {
		add(&ex)
		score, _ := scoreCandidate(ex, Candidate{Box: box})
		assert.GreaterOrEqual(t, score, prev, "signal %d lowered the score", i)
		prev = score
	}
}

func TestScoreCandidateCapped(t *testing.T) {
	box := openBox(uuid.New())
	box.ContactName = "ACME Trading Co., Ltd."
	box.ContactTaxID = "0105551234567"
	box.TotalAmount = 1000

	ex := entity.Extraction{
		DocType:      constants.DocTypeTaxInvoice,
		ContactName:  strRef("ACME Trading"),
		TaxID:        strRef("0105551234567"),
		Amount:       numRef(1000),
		DocumentDate: dateRef(day(2025, 3, 10)),
	}

	// 50 + 30 + 25 + 15 + 20 would be 140 without the cap.
	score, _ := scoreCandidate(ex, Candidate{Box: box})
	assert.Equal(t, maxScore, score)
}

// Every surfaced signal adds a human-readable reason alongside points.
func TestReasonsAccompanyEveryMatch(t *testing.T) {
	box := openBox(uuid.New())
	box.ContactTaxID = "1234567890123"
	box.TotalAmount = 500

	ex := entity.Extraction{
		DocType: constants.DocTypeSlipTransfer,
		Status:  constants.ExtractionDone,
		TaxID:   strRef("1234567890123"),
		Amount:  numRef(500),
	}
	res := FindMatch(ex, []Candidate{{Box: box}})
	require.True(t, res.HasMatch)
	for _, m := range res.Matches {
		assert.NotEmpty(t, m.Reasons)
	}
}
