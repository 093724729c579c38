package server

import (
	"sort"
	"time"

	boxespb "github.com/teerapat-ng/docbox/gen/proto/boxes/v1"
	"github.com/teerapat-ng/docbox/internal/entity"
)

func toPBBusiness(b *entity.Business) *boxespb.Business {
	return &boxespb.Business{
		Id:              b.ID.String(),
		Name:            b.Name,
		TaxId:           b.TaxID,
		DefaultCurrency: b.DefaultCurrency,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBBox(b *entity.Box) *boxespb.Box {
	pb := &boxespb.Box{
		Id:            b.ID.String(),
		BusinessId:    b.BusinessID.String(),
		BoxType:       string(b.BoxType),
		ContactName:   b.ContactName,
		ContactTaxId:  b.ContactTaxID,
		BoxDate:       b.BoxDate.Format("2006-01-02"),
		HasVat:        b.HasVat,
		HasWht:        b.HasWht,
		TotalAmount:   b.TotalAmount,
		VatAmount:     b.VatAmount,
		WhtAmount:     b.WhtAmount,
		PaymentStatus: string(b.PaymentStatus),
		IsPaid:        b.IsPaid,
		WhtSent:       b.WhtSent,
		DocStatus:     string(b.DocStatus),
	}
	if b.ExpenseType != nil {
		pb.ExpenseType = string(*b.ExpenseType)
	}
	if b.NoReceiptReason != nil {
		pb.NoReceiptReason = string(*b.NoReceiptReason)
	}
	return pb
}

func toPBChecklistItem(it entity.ChecklistItem) *boxespb.ChecklistItem {
	pb := &boxespb.ChecklistItem{
		Id:        it.ID,
		Label:     it.Label,
		Required:  it.Required,
		Completed: it.Completed,
		CanToggle: it.CanToggle,
	}
	if it.RelatedDocType != nil {
		pb.RelatedDocType = string(*it.RelatedDocType)
	}
	return pb
}

// toPBFields flattens the aggregation map into a name-sorted slice so
// repeated calls serialize identically.
func toPBFields(fields map[string]entity.AggregatedField) []*boxespb.AggregatedField {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*boxespb.AggregatedField, 0, len(names))
	for _, name := range names {
		f := fields[name]
		pb := &boxespb.AggregatedField{
			Name:         f.Name,
			Value:        f.Value,
			HasConflict:  f.HasConflict,
			UserOverride: f.UserOverride,
		}
		for _, c := range f.Clusters {
			cluster := &boxespb.ValueCluster{Value: c.Value}
			for _, src := range c.Sources {
				cluster.Sources = append(cluster.Sources, &boxespb.FieldSource{
					Filename:   src.Filename,
					Confidence: src.Confidence,
				})
			}
			pb.Clusters = append(pb.Clusters, cluster)
		}
		out = append(out, pb)
	}
	return out
}
