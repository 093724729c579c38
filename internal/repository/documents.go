package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering an upload in
// the inbox.
type CreateDocumentRequest struct {
	BusinessID  uuid.UUID
	Filename    string
	FileExt     string
	ContentHash []byte
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AttachedDocument, error)
	CreateInbox(ctx context.Context, req *CreateDocumentRequest) (*entity.AttachedDocument, error)
	ListByBox(ctx context.Context, boxID uuid.UUID) ([]*entity.AttachedDocument, error)
	ListInbox(ctx context.Context, businessID uuid.UUID) ([]*entity.AttachedDocument, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AttachedDocument, error) {
	d, err := r.client.AttachedDocument.Query().
		Where(attacheddocument.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toDocument(d), nil
}

// CreateInbox registers an upload before anything is known about it.
// The document type starts as OTHER and is fixed at placement time.
func (r *documentRepository) CreateInbox(ctx context.Context, req *CreateDocumentRequest) (*entity.AttachedDocument, error) {
	d, err := r.client.AttachedDocument.Create().
		SetBusinessID(req.BusinessID).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetContentHash(req.ContentHash).
		SetDocType(string(constants.DocTypeOther)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create inbox document", "business_id", req.BusinessID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) ListByBox(ctx context.Context, boxID uuid.UUID) ([]*entity.AttachedDocument, error) {
	docs, err := r.client.AttachedDocument.Query().
		Where(attacheddocument.BoxID(boxID)).
		Order(attacheddocument.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "box_id", boxID, "error", err)
		return nil, err
	}
	result := make([]*entity.AttachedDocument, len(docs))
	for i, d := range docs {
		result[i] = toDocument(d)
	}
	return result, nil
}

// ListInbox returns documents still awaiting placement.
func (r *documentRepository) ListInbox(ctx context.Context, businessID uuid.UUID) ([]*entity.AttachedDocument, error) {
	docs, err := r.client.AttachedDocument.Query().
		Where(
			attacheddocument.BusinessID(businessID),
			attacheddocument.BoxIDIsNil(),
		).
		Order(attacheddocument.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list inbox", "business_id", businessID, "error", err)
		return nil, err
	}
	result := make([]*entity.AttachedDocument, len(docs))
	for i, d := range docs {
		result[i] = toDocument(d)
	}
	return result, nil
}
