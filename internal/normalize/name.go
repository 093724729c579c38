package normalize

import "strings"

// legalSuffixes are entity-form tokens that carry no identity: two names
// differing only in these should still match.
var legalSuffixes = map[string]struct{}{
	"co":          {},
	"ltd":         {},
	"limited":     {},
	"inc":         {},
	"corp":        {},
	"corporation": {},
	"company":     {},
	"partnership": {},
	"plc":         {},
	"pcl":         {},
	"บริษัท":      {}, // "company" prefix
	"จำกัด":       {}, // "limited"
	"มหาชน":       {}, // "public"
	"หจก":         {}, // limited partnership abbreviation
}

// TokenSet normalizes a contact name into a set of comparable tokens:
// lower-cased, legal-entity suffixes removed, non-alphanumeric runes
// dropped, single-character tokens discarded.
func TokenSet(name string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		var b strings.Builder
		for _, r := range tok {
			if r == '.' || r == ',' || r == '(' || r == ')' || r == '"' || r == '\'' || r == '-' || r == '/' {
				continue
			}
			b.WriteRune(r)
		}
		cleaned := b.String()
		if len([]rune(cleaned)) <= 1 {
			continue
		}
		if _, ok := legalSuffixes[cleaned]; ok {
			continue
		}
		set[cleaned] = struct{}{}
	}
	return set
}

// NameSimilarity is the Jaccard index over the two names' token sets.
// Returns 0 when either set is empty.
func NameSimilarity(a, b string) float64 {
	sa, sb := TokenSet(a), TokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
