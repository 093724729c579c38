package repository

import (
	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// ent <-> entity conversion helpers. The generated models keep enums as
// plain strings; the typed values live on the entity DTOs.

func toBusiness(b *ent.Business) *entity.Business {
	return &entity.Business{
		ID:              b.ID,
		Name:            b.Name,
		TaxID:           b.TaxID,
		DefaultCurrency: b.DefaultCurrency,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBox(b *ent.Box) *entity.Box {
	box := &entity.Box{
		ID:            b.ID,
		BusinessID:    b.BusinessID,
		BoxType:       constants.BoxType(b.BoxType),
		ContactName:   b.ContactName,
		ContactTaxID:  b.ContactTaxID,
		BoxDate:       b.BoxDate,
		HasVat:        b.HasVat,
		HasWht:        b.HasWht,
		WhtRate:       b.WhtRate,
		TotalAmount:   b.TotalAmount,
		VatAmount:     b.VatAmount,
		WhtAmount:     b.WhtAmount,
		PaymentStatus: constants.PaymentStatus(b.PaymentStatus),
		IsPaid:        b.IsPaid,
		WhtSent:       b.WhtSent,
		DocStatus:     constants.DocStatus(b.DocStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.ExpenseType != nil {
		et := constants.ExpenseType(*b.ExpenseType)
		box.ExpenseType = &et
	}
	if b.NoReceiptReason != nil {
		reason := constants.NoReceiptReason(*b.NoReceiptReason)
		box.NoReceiptReason = &reason
	}
	return box
}

func toDocument(d *ent.AttachedDocument) *entity.AttachedDocument {
	return &entity.AttachedDocument{
		ID:         d.ID,
		BusinessID: d.BusinessID,
		BoxID:      d.BoxID,
		Filename:   d.Filename,
		FileExt:    d.FileExt,
		DocType:    constants.DocType(d.DocType),
		UploadedAt: d.UploadedAt,
	}
}

func toExtraction(e *ent.Extraction, filename string) *entity.Extraction {
	return &entity.Extraction{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		Filename:       filename,
		DocType:        constants.DocType(e.DocType),
		Confidence:     e.Confidence,
		Amount:         e.Amount,
		VatAmount:      e.VatAmount,
		ContactName:    e.ContactName,
		DocumentDate:   e.DocumentDate,
		DocumentNumber: e.DocumentNumber,
		TaxID:          e.TaxID,
		Description:    e.Description,
		Status:         constants.ExtractionStatus(e.Status),
		ErrorMessage:   e.ErrorMessage,
		CreatedAt:      e.CreatedAt,
	}
}
