package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1200.50", 1200.50, true},
		{"1,200.50", 1200.50, true},
		{"฿1,200.50", 1200.50, true},
		{"THB 1,200.50", 1200.50, true},
		{"$99", 99, true},
		{"1 234.00", 1234, true},
		{"(1,234.00)", -1234, true},
		{"-42.5", -42.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"N/A", 0, false},
		{"twelve", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "0105551234567", DigitsOnly("0-1055-51234-56-7"))
	assert.Equal(t, "1234567890123", DigitsOnly("1234567890123"))
	assert.Equal(t, "", DigitsOnly("no digits"))
	assert.Equal(t, "", DigitsOnly(""))
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("ACME Trading Co., Ltd.")
	assert.Equal(t, map[string]struct{}{"acme": {}, "trading": {}}, set)

	set = TokenSet("บริษัท สยามพาณิชย์ จำกัด")
	_, hasCompany := set["บริษัท"]
	_, hasLimited := set["จำกัด"]
	assert.False(t, hasCompany)
	assert.False(t, hasLimited)
	assert.Contains(t, set, "สยามพาณิชย์")
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "ACME Trading", "ACME Trading", 1.0, 1.0},
		{"legal suffix ignored", "ACME Trading Co., Ltd.", "ACME Trading", 1.0, 1.0},
		{"case insensitive", "acme trading", "ACME TRADING", 1.0, 1.0},
		{"partial overlap", "ACME Trading International", "ACME Trading", 0.5, 0.99},
		{"disjoint", "ACME Trading", "Beta Supplies", 0, 0},
		{"empty side", "", "ACME Trading", 0, 0},
		{"both empty", "", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NameSimilarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, sim, tt.min)
			assert.LessOrEqual(t, sim, tt.max)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"10/03/2025", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"2/1/2025", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"10-03-2025", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"2025/03/10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		// Buddhist era: 2568 BE is 2025 CE.
		{"2568-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"10/03/2568", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
		{"2025-13-45", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestDaysApart(t *testing.T) {
	a := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysApart(a, b))
	assert.Equal(t, 1, DaysApart(b, a))
	assert.Equal(t, 0, DaysApart(a, a))

	c := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysApart(a, c))
}
