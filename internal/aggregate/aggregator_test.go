package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
)

func numRef(f float64) *float64 { return &f }
func strRef(s string) *string   { return &s }

func timeRef(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func done(filename string, mutate func(*entity.Extraction)) entity.Extraction {
	ex := entity.Extraction{
		ID:       uuid.New(),
		Filename: filename,
		DocType:  constants.DocTypeTaxInvoice,
		Status:   constants.ExtractionDone,
	}
	if mutate != nil {
		mutate(&ex)
	}
	return ex
}

func TestAggregateSkipsUnusableExtractions(t *testing.T) {
	failed := done("a.pdf", func(ex *entity.Extraction) {
		ex.Amount = numRef(999)
		ex.Status = constants.ExtractionFailed
	})
	queued := done("b.pdf", func(ex *entity.Extraction) {
		ex.Amount = numRef(888)
		ex.Status = constants.ExtractionQueued
	})
	ok := done("c.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(100) })

	out := Aggregate([]entity.Extraction{failed, queued, ok}, nil)
	field, present := out[FieldAmount]
	require.True(t, present)
	assert.Equal(t, "100.00", field.Value)
	require.Len(t, field.Clusters, 1)
	assert.Len(t, field.Clusters[0].Sources, 1)
}

func TestAggregateEmptyInput(t *testing.T) {
	out := Aggregate(nil, nil)
	assert.Empty(t, out)
}

func TestNumericClusteringWithinTolerance(t *testing.T) {
	exs := []entity.Extraction{
		done("inv.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(1200.00) }),
		done("slip.jpg", func(ex *entity.Extraction) { ex.Amount = numRef(1200.40) }),
		done("stmt.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(1500.00) }),
	}

	out := Aggregate(exs, nil)
	field := out[FieldAmount]

	require.Len(t, field.Clusters, 2)
	assert.True(t, field.HasConflict)
	assert.Len(t, field.Clusters[0].Sources, 2, "1200.00 and 1200.40 belong together")
	assert.Len(t, field.Clusters[1].Sources, 1)
	assert.Equal(t, "1200.00", field.Value, "representative comes from the first cluster")
}

func TestNumericNoConflictSingleCluster(t *testing.T) {
	exs := []entity.Extraction{
		done("a.pdf", func(ex *entity.Extraction) { ex.VatAmount = numRef(84.00) }),
		done("b.pdf", func(ex *entity.Extraction) { ex.VatAmount = numRef(84.11) }),
	}
	out := Aggregate(exs, nil)
	field := out[FieldVatAmount]
	assert.False(t, field.HasConflict)
	require.Len(t, field.Clusters, 1)
	assert.Len(t, field.Clusters[0].Sources, 2)
}

func TestTextClusteringCaseInsensitive(t *testing.T) {
	exs := []entity.Extraction{
		done("a.pdf", func(ex *entity.Extraction) { ex.ContactName = strRef("ACME Trading") }),
		done("b.pdf", func(ex *entity.Extraction) { ex.ContactName = strRef("acme trading  ") }),
		done("c.pdf", func(ex *entity.Extraction) { ex.ContactName = strRef("Beta Supplies") }),
	}
	out := Aggregate(exs, nil)
	field := out[FieldContactName]

	require.Len(t, field.Clusters, 2)
	assert.True(t, field.HasConflict)

	var acme *entity.ValueCluster
	for i := range field.Clusters {
		if len(field.Clusters[i].Sources) == 2 {
			acme = &field.Clusters[i]
		}
	}
	require.NotNil(t, acme)
	assert.Equal(t, "ACME Trading", acme.Value, "representative keeps original casing")
}

func TestBlankTextContributesNothing(t *testing.T) {
	exs := []entity.Extraction{
		done("a.pdf", func(ex *entity.Extraction) { ex.Description = strRef("   ") }),
		done("b.pdf", func(ex *entity.Extraction) { ex.Description = nil }),
	}
	out := Aggregate(exs, nil)
	_, present := out[FieldDescription]
	assert.False(t, present)
}

// The merged view must not depend on which file happened to finish
// reading first.
func TestAggregateOrderIndependent(t *testing.T) {
	exs := []entity.Extraction{
		done("inv.pdf", func(ex *entity.Extraction) {
			ex.Amount = numRef(1200.00)
			ex.ContactName = strRef("ACME Trading")
			ex.TaxID = strRef("0105551234567")
		}),
		done("slip.jpg", func(ex *entity.Extraction) {
			ex.Amount = numRef(1200.40)
			ex.ContactName = strRef("acme trading")
		}),
		done("stmt.pdf", func(ex *entity.Extraction) {
			ex.Amount = numRef(1500.00)
			ex.ContactName = strRef("Beta Supplies")
		}),
	}

	want := Aggregate(exs, nil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.Extraction{}, exs...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Aggregate(shuffled, nil), "permutation %d diverged", i)
	}
}

func TestOverrideWinsAndSurvives(t *testing.T) {
	exs := []entity.Extraction{
		done("a.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(1200.00) }),
		done("b.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(1500.00) }),
	}
	overrides := map[string]Override{
		FieldAmount: {Value: "1350.00"},
	}

	out := Aggregate(exs, overrides)
	field := out[FieldAmount]

	assert.Equal(t, "1350.00", field.Value)
	assert.True(t, field.UserOverride)
	assert.True(t, field.HasConflict, "clusters stay visible under an override")
	assert.Len(t, field.Clusters, 2)

	// Re-aggregating with more evidence keeps the pinned value.
	more := append(exs, done("c.pdf", func(ex *entity.Extraction) { ex.Amount = numRef(1200.10) }))
	out = Aggregate(more, overrides)
	assert.Equal(t, "1350.00", out[FieldAmount].Value)
	assert.True(t, out[FieldAmount].UserOverride)
}

func TestOverrideOnFieldWithoutEvidence(t *testing.T) {
	out := Aggregate(nil, map[string]Override{
		FieldContactName: {Value: "Manually Entered Co."},
	})
	field, present := out[FieldContactName]
	require.True(t, present)
	assert.Equal(t, "Manually Entered Co.", field.Value)
	assert.True(t, field.UserOverride)
	assert.False(t, field.HasConflict)
}

func TestDateAggregatesAsText(t *testing.T) {
	d1 := done("a.pdf", nil)
	d1.DocumentDate = timeRef(2025, 3, 10)
	d2 := done("b.pdf", nil)
	d2.DocumentDate = timeRef(2025, 3, 10)
	d3 := done("c.pdf", nil)
	d3.DocumentDate = timeRef(2025, 3, 12)

	out := Aggregate([]entity.Extraction{d1, d2, d3}, nil)
	field := out[FieldDocumentDate]
	assert.True(t, field.HasConflict)
	require.Len(t, field.Clusters, 2)
	assert.Equal(t, "2025-03-10", field.Clusters[0].Value)
}
