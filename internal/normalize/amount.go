package normalize

import (
	"strconv"
	"strings"
)

// currency markers commonly seen in machine-read amount strings.
var currencyMarkers = []string{"฿", "$", "€", "£", "¥", "THB", "USD", "EUR", "Baht", "baht"}

// ParseAmount parses a machine-read amount string into a float. Currency
// symbols and thousands separators are stripped first. A value that still
// does not parse is reported as absent, never as zero.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	// accounting negatives: (1,234.00)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DigitsOnly strips everything but ASCII digits. Used for tax-ID
// comparison so formatting dashes never break an exact match.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
