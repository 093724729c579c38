package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/internal/entity"
	"github.com/teerapat-ng/docbox/internal/extract"
)

type ExtractionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error)
	CreateQueued(ctx context.Context, documentID uuid.UUID, docType constants.DocType) (*entity.Extraction, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	SaveResult(ctx context.Context, id uuid.UUID, fields extract.Fields) (*entity.Extraction, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ListUsableByBox(ctx context.Context, boxID uuid.UUID) ([]entity.Extraction, error)
}

type extractionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionRepository(client *ent.Client, logger *slog.Logger) ExtractionRepository {
	return &extractionRepository{
		client: client,
		logger: logger,
	}
}

func (r *extractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	e, err := r.client.Extraction.Query().
		Where(extraction.ID(id)).
		WithDocument().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	filename := ""
	if e.Edges.Document != nil {
		filename = e.Edges.Document.Filename
	}
	return toExtraction(e, filename), nil
}

func (r *extractionRepository) CreateQueued(ctx context.Context, documentID uuid.UUID, docType constants.DocType) (*entity.Extraction, error) {
	e, err := r.client.Extraction.Create().
		SetDocumentID(documentID).
		SetDocType(string(docType)).
		SetStatus(string(constants.ExtractionQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to queue extraction", "document_id", documentID, "error", err)
		return nil, err
	}
	return toExtraction(e, ""), nil
}

func (r *extractionRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.client.Extraction.UpdateOneID(id).
		SetStatus(string(constants.ExtractionRunning)).
		Exec(ctx)
}

// SaveResult writes the sanitized collaborator fields onto the record.
// The row stays immutable afterwards; a re-read creates a new row.
func (r *extractionRepository) SaveResult(ctx context.Context, id uuid.UUID, fields extract.Fields) (*entity.Extraction, error) {
	e, err := r.client.Extraction.UpdateOneID(id).
		SetDocType(string(fields.DocType)).
		SetConfidence(fields.Confidence).
		SetNillableAmount(fields.Amount).
		SetNillableVatAmount(fields.VatAmount).
		SetNillableContactName(fields.ContactName).
		SetNillableDocumentDate(fields.DocumentDate).
		SetNillableDocumentNumber(fields.DocumentNumber).
		SetNillableTaxID(fields.TaxID).
		SetNillableDescription(fields.Description).
		SetStatus(string(constants.ExtractionDone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save extraction result", "extraction_id", id, "error", err)
		return nil, err
	}
	return toExtraction(e, ""), nil
}

// MarkFailed records the failure on the record itself. Sibling files are
// unaffected; a failed record simply contributes nothing downstream.
func (r *extractionRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return r.client.Extraction.UpdateOneID(id).
		SetStatus(string(constants.ExtractionFailed)).
		SetErrorMessage(message).
		Exec(ctx)
}

// ListUsableByBox returns the finished extraction records for every
// document attached to the box, newest record per document last. Pending
// and failed records are excluded.
func (r *extractionRepository) ListUsableByBox(ctx context.Context, boxID uuid.UUID) ([]entity.Extraction, error) {
	rows, err := r.client.Extraction.Query().
		Where(
			extraction.StatusEQ(string(constants.ExtractionDone)),
			extraction.HasDocumentWith(attacheddocument.BoxID(boxID)),
		).
		WithDocument().
		Order(extraction.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extractions", "box_id", boxID, "error", err)
		return nil, err
	}

	result := make([]entity.Extraction, 0, len(rows))
	for _, e := range rows {
		filename := ""
		if e.Edges.Document != nil {
			filename = e.Edges.Document.Filename
		}
		result = append(result, *toExtraction(e, filename))
	}
	return result, nil
}
