package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teerapat-ng/docbox/internal/entity"
)

// Tracked field names. Keys of the aggregate map.
const (
	FieldAmount         = "amount"
	FieldVatAmount      = "vat_amount"
	FieldContactName    = "contact_name"
	FieldDocumentDate   = "document_date"
	FieldDocumentNumber = "document_number"
	FieldTaxID          = "tax_id"
	FieldDescription    = "description"
)

// numericTolerance is the clustering tolerance for money fields, in
// currency units. Two machine reads of the same figure routinely differ
// by a rounding digit; half a unit keeps those together.
const numericTolerance = 0.5

// Override pins a field to a human-chosen value. It survives
// re-aggregation until explicitly cleared.
type Override struct {
	Value string `json:"value"`
}

// Aggregate merges the usable extractions attached to one box into
// conflict-aware canonical fields. The result is independent of input
// order: inputs are canonically sorted before clustering. Conflicts are
// reported, never resolved; a human picks the winner.
func Aggregate(extractions []entity.Extraction, overrides map[string]Override) map[string]entity.AggregatedField {
	usable := make([]entity.Extraction, 0, len(extractions))
	for _, ex := range extractions {
		if ex.Usable() {
			usable = append(usable, ex)
		}
	}
	// Canonical input order. Everything downstream is deterministic
	// given this sort.
	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].Filename != usable[j].Filename {
			return usable[i].Filename < usable[j].Filename
		}
		return usable[i].ID.String() < usable[j].ID.String()
	})

	out := make(map[string]entity.AggregatedField)
	addNumeric(out, FieldAmount, usable, func(ex entity.Extraction) *float64 { return ex.Amount })
	addNumeric(out, FieldVatAmount, usable, func(ex entity.Extraction) *float64 { return ex.VatAmount })
	addText(out, FieldContactName, usable, func(ex entity.Extraction) *string { return ex.ContactName })
	addText(out, FieldDocumentDate, usable, dateAsText)
	addText(out, FieldDocumentNumber, usable, func(ex entity.Extraction) *string { return ex.DocumentNumber })
	addText(out, FieldTaxID, usable, func(ex entity.Extraction) *string { return ex.TaxID })
	addText(out, FieldDescription, usable, func(ex entity.Extraction) *string { return ex.Description })

	for name, ov := range overrides {
		field, ok := out[name]
		if !ok {
			field = entity.AggregatedField{Name: name}
		}
		field.Value = ov.Value
		field.UserOverride = true
		out[name] = field
	}
	return out
}

type contribution struct {
	raw    string
	number *float64
	source entity.FieldSource
}

func addNumeric(out map[string]entity.AggregatedField, name string, extractions []entity.Extraction, get func(entity.Extraction) *float64) {
	var contribs []contribution
	for _, ex := range extractions {
		v := get(ex)
		if v == nil {
			continue
		}
		n := *v
		contribs = append(contribs, contribution{
			raw:    fmt.Sprintf("%.2f", n),
			number: &n,
			source: entity.FieldSource{Filename: ex.Filename, Confidence: ex.Confidence},
		})
	}
	if len(contribs) == 0 {
		return
	}
	// Ascending by value; clustering anchors on the lowest member, so
	// the grouping is identical for any arrival order.
	sort.SliceStable(contribs, func(i, j int) bool { return *contribs[i].number < *contribs[j].number })

	var clusters []entity.ValueCluster
	for _, c := range contribs {
		if n := len(clusters); n > 0 && *c.number-*clusters[n-1].Number < numericTolerance {
			clusters[n-1].Sources = append(clusters[n-1].Sources, c.source)
			continue
		}
		clusters = append(clusters, entity.ValueCluster{
			Value:   c.raw,
			Number:  c.number,
			Sources: []entity.FieldSource{c.source},
		})
	}
	out[name] = buildField(name, clusters)
}

func addText(out map[string]entity.AggregatedField, name string, extractions []entity.Extraction, get func(entity.Extraction) *string) {
	byKey := make(map[string]*entity.ValueCluster)
	var order []string
	for _, ex := range extractions {
		v := get(ex)
		if v == nil || strings.TrimSpace(*v) == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(*v))
		src := entity.FieldSource{Filename: ex.Filename, Confidence: ex.Confidence}
		if cl, ok := byKey[key]; ok {
			cl.Sources = append(cl.Sources, src)
			continue
		}
		byKey[key] = &entity.ValueCluster{Value: strings.TrimSpace(*v), Sources: []entity.FieldSource{src}}
		order = append(order, key)
	}
	if len(byKey) == 0 {
		return
	}
	sort.Strings(order)
	clusters := make([]entity.ValueCluster, 0, len(order))
	for _, key := range order {
		clusters = append(clusters, *byKey[key])
	}
	out[name] = buildField(name, clusters)
}

func buildField(name string, clusters []entity.ValueCluster) entity.AggregatedField {
	return entity.AggregatedField{
		Name:        name,
		Value:       clusters[0].Value,
		HasConflict: len(clusters) > 1,
		Clusters:    clusters,
	}
}

func dateAsText(ex entity.Extraction) *string {
	if ex.DocumentDate == nil {
		return nil
	}
	s := ex.DocumentDate.Format(time.DateOnly)
	return &s
}
