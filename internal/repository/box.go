package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/internal/checklist"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// CreateBoxRequest wraps parameters for creating a box.
type CreateBoxRequest struct {
	BusinessID      uuid.UUID
	BoxType         constants.BoxType
	ExpenseType     *constants.ExpenseType
	ContactName     string
	ContactTaxID    string
	BoxDate         time.Time
	HasVat          bool
	HasWht          bool
	WhtRate         *float64
	TotalAmount     float64
	VatAmount       float64
	WhtAmount       float64
	NoReceiptReason *constants.NoReceiptReason
}

// AttachDocumentRequest places an inbox document onto a box, fixing its
// document type at the same time.
type AttachDocumentRequest struct {
	DocumentID uuid.UUID
	BoxID      uuid.UUID
	DocType    constants.DocType
}

// Attestations carries the human-confirmed flags; nil leaves a flag
// untouched.
type Attestations struct {
	IsPaid  *bool
	WhtSent *bool
}

// OpenBox pairs a linker candidate with its attached document types.
type OpenBox struct {
	Box      *entity.Box
	DocTypes []constants.DocType
}

type BoxRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Box, error)
	ListBoxes(ctx context.Context, businessID uuid.UUID, status *constants.DocStatus) ([]*entity.Box, error)
	ListOpenBoxes(ctx context.Context, businessID uuid.UUID) ([]OpenBox, error)
	CreateBox(ctx context.Context, req *CreateBoxRequest) (*entity.Box, error)
	AttachDocument(ctx context.Context, req *AttachDocumentRequest) (*entity.AttachedDocument, *entity.Box, error)
	SetAttestations(ctx context.Context, boxID uuid.UUID, att Attestations) (*entity.Box, error)
	SetNoReceiptReason(ctx context.Context, boxID uuid.UUID, reason *constants.NoReceiptReason) (*entity.Box, error)
	DocTypes(ctx context.Context, boxID uuid.UUID) ([]constants.DocType, error)
}

type boxRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBoxRepository(client *ent.Client, logger *slog.Logger) BoxRepository {
	return &boxRepository{
		client: client,
		logger: logger,
	}
}

func (r *boxRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Box, error) {
	b, err := r.client.Box.Query().Where(box.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toBox(b), nil
}

func (r *boxRepository) ListBoxes(ctx context.Context, businessID uuid.UUID, status *constants.DocStatus) ([]*entity.Box, error) {
	q := r.client.Box.Query().Where(box.BusinessID(businessID))
	if status != nil {
		q = q.Where(box.DocStatus(string(*status)))
	}
	bs, err := q.Order(box.ByBoxDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list boxes", "business_id", businessID, "error", err)
		return nil, err
	}
	result := make([]*entity.Box, len(bs))
	for i, b := range bs {
		result[i] = toBox(b)
	}
	return result, nil
}

// ListOpenBoxes returns the incomplete boxes of a business together with
// their attached document types, in creation order. These are the
// linker's candidates.
func (r *boxRepository) ListOpenBoxes(ctx context.Context, businessID uuid.UUID) ([]OpenBox, error) {
	bs, err := r.client.Box.Query().
		Where(
			box.BusinessID(businessID),
			box.DocStatus(string(constants.DocStatusIncomplete)),
		).
		WithDocuments().
		Order(box.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list open boxes", "business_id", businessID, "error", err)
		return nil, err
	}

	result := make([]OpenBox, len(bs))
	for i, b := range bs {
		docTypes := make([]constants.DocType, 0, len(b.Edges.Documents))
		for _, d := range b.Edges.Documents {
			docTypes = append(docTypes, constants.DocType(d.DocType))
		}
		result[i] = OpenBox{Box: toBox(b), DocTypes: docTypes}
	}
	return result, nil
}

func (r *boxRepository) CreateBox(ctx context.Context, req *CreateBoxRequest) (*entity.Box, error) {
	builder := r.client.Box.Create().
		SetBusinessID(req.BusinessID).
		SetBoxType(string(req.BoxType)).
		SetContactName(req.ContactName).
		SetContactTaxID(req.ContactTaxID).
		SetBoxDate(req.BoxDate).
		SetHasVat(req.HasVat).
		SetHasWht(req.HasWht).
		SetTotalAmount(req.TotalAmount).
		SetVatAmount(req.VatAmount).
		SetWhtAmount(req.WhtAmount).
		SetNillableWhtRate(req.WhtRate)
	if req.ExpenseType != nil {
		builder = builder.SetExpenseType(string(*req.ExpenseType))
	}
	if req.NoReceiptReason != nil {
		builder = builder.SetNoReceiptReason(string(*req.NoReceiptReason))
	}
	builder = builder.SetDocStatus(string(initialStatus(req)))

	b, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create box", "business_id", req.BusinessID, "error", err)
		return nil, err
	}
	return toBox(b), nil
}

// AttachDocument places the document and recomputes the box's status in
// one transaction, so no reader ever observes a status computed against
// a stale document set.
func (r *boxRepository) AttachDocument(ctx context.Context, req *AttachDocumentRequest) (*entity.AttachedDocument, *entity.Box, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin attach tx: %w", err)
	}

	doc, err := tx.AttachedDocument.UpdateOneID(req.DocumentID).
		SetBoxID(req.BoxID).
		SetDocType(string(req.DocType)).
		Save(ctx)
	if err != nil {
		return nil, nil, rollback(tx, fmt.Errorf("attach document: %w", err))
	}

	updated, err := recomputeStatus(ctx, tx, req.BoxID)
	if err != nil {
		return nil, nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit attach tx: %w", err)
	}

	r.logger.Info("document attached",
		"box_id", req.BoxID, "doc_type", req.DocType, "doc_status", updated.DocStatus)
	return toDocument(doc), toBox(updated), nil
}

func (r *boxRepository) SetAttestations(ctx context.Context, boxID uuid.UUID, att Attestations) (*entity.Box, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin attestation tx: %w", err)
	}

	builder := tx.Box.UpdateOneID(boxID)
	if att.IsPaid != nil {
		builder = builder.SetIsPaid(*att.IsPaid)
	}
	if att.WhtSent != nil {
		builder = builder.SetWhtSent(*att.WhtSent)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("set attestations: %w", err))
	}

	updated, err := recomputeStatus(ctx, tx, boxID)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attestation tx: %w", err)
	}
	return toBox(updated), nil
}

func (r *boxRepository) SetNoReceiptReason(ctx context.Context, boxID uuid.UUID, reason *constants.NoReceiptReason) (*entity.Box, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reason tx: %w", err)
	}

	builder := tx.Box.UpdateOneID(boxID)
	if reason != nil {
		builder = builder.SetNoReceiptReason(string(*reason))
	} else {
		builder = builder.ClearNoReceiptReason()
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("set no-receipt reason: %w", err))
	}

	updated, err := recomputeStatus(ctx, tx, boxID)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reason tx: %w", err)
	}
	return toBox(updated), nil
}

func (r *boxRepository) DocTypes(ctx context.Context, boxID uuid.UUID) ([]constants.DocType, error) {
	rows, err := r.client.AttachedDocument.Query().
		Where(attacheddocument.BoxID(boxID)).
		Order(attacheddocument.ByUploadedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	docTypes := make([]constants.DocType, len(rows))
	for i, d := range rows {
		docTypes[i] = constants.DocType(d.DocType)
	}
	return docTypes, nil
}

// recomputeStatus re-derives doc_status from the box row and its current
// document set, inside the caller's transaction.
func recomputeStatus(ctx context.Context, tx *ent.Tx, boxID uuid.UUID) (*ent.Box, error) {
	b, err := tx.Box.Query().Where(box.ID(boxID)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load box for recompute: %w", err)
	}
	docs, err := tx.AttachedDocument.Query().
		Where(attacheddocument.BoxID(boxID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents for recompute: %w", err)
	}

	docTypes := make([]constants.DocType, len(docs))
	for i, d := range docs {
		docTypes[i] = constants.DocType(d.DocType)
	}

	in := statusInput(b, docTypes)
	status := checklist.DetermineStatus(in)
	if string(status) == b.DocStatus {
		return b, nil
	}
	return tx.Box.UpdateOneID(boxID).SetDocStatus(string(status)).Save(ctx)
}

func statusInput(b *ent.Box, docTypes []constants.DocType) checklist.StatusInput {
	flags := checklist.DeriveAutoFlags(docTypes)
	flags.IsPaid = b.IsPaid
	flags.WhtSent = b.WhtSent

	in := checklist.StatusInput{
		BoxType:  constants.BoxType(b.BoxType),
		HasVat:   b.HasVat,
		HasWht:   b.HasWht,
		Flags:    flags,
		DocTypes: docTypes,
	}
	if b.ExpenseType != nil {
		in.ExpenseType = constants.ExpenseType(*b.ExpenseType)
	}
	if b.NoReceiptReason != nil {
		reason := constants.NoReceiptReason(*b.NoReceiptReason)
		in.NoReceiptReason = &reason
	}
	return in
}

// initialStatus evaluates a box that has no documents yet.
func initialStatus(req *CreateBoxRequest) constants.DocStatus {
	in := checklist.StatusInput{
		BoxType:         req.BoxType,
		HasVat:          req.HasVat,
		HasWht:          req.HasWht,
		NoReceiptReason: req.NoReceiptReason,
	}
	if req.ExpenseType != nil {
		in.ExpenseType = *req.ExpenseType
	}
	return checklist.DetermineStatus(in)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
