package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
	"github.com/teerapat-ng/docbox/internal/extract"
	"github.com/teerapat-ng/docbox/internal/linker"
	"github.com/teerapat-ng/docbox/internal/repository"
)

// Processor coordinates the per-file pipeline: collaborator read,
// payload decode, then placement against the business's open boxes.
type Processor struct {
	logger      *slog.Logger
	reader      extract.DocumentReader
	boxes       repository.BoxRepository
	documents   repository.DocumentRepository
	extractions repository.ExtractionRepository
}

func NewProcessor(
	reader extract.DocumentReader,
	boxes repository.BoxRepository,
	documents repository.DocumentRepository,
	extractions repository.ExtractionRepository,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:      logger,
		reader:      reader,
		boxes:       boxes,
		documents:   documents,
		extractions: extractions,
	}
}

// SubmitUpload registers an uploaded file in the inbox with a queued
// extraction record. The caller hands the returned ids to the queue.
func (p *Processor) SubmitUpload(ctx context.Context, req *repository.CreateDocumentRequest) (*entity.AttachedDocument, *entity.Extraction, error) {
	doc, err := p.documents.CreateInbox(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	ex, err := p.extractions.CreateQueued(ctx, doc.ID, constants.DocTypeOther)
	if err != nil {
		return nil, nil, err
	}
	return doc, ex, nil
}

// ProcessDocument runs the collaborator call for one file and places the
// result. A read or decode failure is recorded on the extraction record
// itself and ends this file's pipeline; sibling files are unaffected.
func (p *Processor) ProcessDocument(ctx context.Context, documentID, extractionID uuid.UUID, path string) error {
	if err := p.extractions.MarkRunning(ctx, extractionID); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	res, err := p.reader.Read(ctx, path)
	if err != nil {
		p.logger.Error("pipeline.read.failed", "document_id", documentID, "error", err)
		if ferr := p.extractions.MarkFailed(ctx, extractionID, err.Error()); ferr != nil {
			return fmt.Errorf("mark failed: %w", ferr)
		}
		return nil
	}

	fields, err := extract.DecodePayload(res.JSON, p.logger)
	if err != nil {
		p.logger.Error("pipeline.decode.failed", "document_id", documentID, "error", err)
		if ferr := p.extractions.MarkFailed(ctx, extractionID, err.Error()); ferr != nil {
			return fmt.Errorf("mark failed: %w", ferr)
		}
		return nil
	}

	ex, err := p.extractions.SaveResult(ctx, extractionID, fields)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	p.logger.Info("pipeline.read.ok",
		"document_id", documentID,
		"doc_type", ex.DocType,
		"confidence", ex.Confidence,
	)

	doc, err := p.documents.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	_, err = p.Place(ctx, doc, ex)
	return err
}

// Place ranks the business's open boxes for the extraction. A strong
// match attaches immediately; with no surfaced candidates a new box is
// opened from the extraction. Middling candidates are left for a human:
// the document stays in the inbox and the ranked list is served on
// request.
func (p *Processor) Place(ctx context.Context, doc *entity.AttachedDocument, ex *entity.Extraction) (entity.MatchResult, error) {
	if doc.BoxID != nil {
		// Re-read of an already placed file; nothing to place.
		return entity.MatchResult{}, nil
	}

	result, err := p.Match(ctx, doc.BusinessID, ex)
	if err != nil {
		return entity.MatchResult{}, err
	}

	switch {
	case result.SuggestedAction == entity.ActionAttachExisting:
		boxID := result.Matches[0].BoxID
		if _, _, err := p.boxes.AttachDocument(ctx, &repository.AttachDocumentRequest{
			DocumentID: doc.ID,
			BoxID:      boxID,
			DocType:    ex.DocType,
		}); err != nil {
			return result, fmt.Errorf("attach to box %s: %w", boxID, err)
		}
		p.logger.Info("pipeline.place.attached", "document_id", doc.ID, "box_id", boxID, "score", result.Matches[0].Score)
	case !result.HasMatch:
		box, err := p.CreateBoxFromExtraction(ctx, doc, ex)
		if err != nil {
			return result, err
		}
		p.logger.Info("pipeline.place.created", "document_id", doc.ID, "box_id", box.ID)
	default:
		p.logger.Info("pipeline.place.pending_review", "document_id", doc.ID, "candidates", len(result.Matches))
	}
	return result, nil
}

// Match runs the linker against the business's open boxes.
func (p *Processor) Match(ctx context.Context, businessID uuid.UUID, ex *entity.Extraction) (entity.MatchResult, error) {
	open, err := p.boxes.ListOpenBoxes(ctx, businessID)
	if err != nil {
		return entity.MatchResult{}, fmt.Errorf("list open boxes: %w", err)
	}
	candidates := make([]linker.Candidate, len(open))
	for i, ob := range open {
		candidates[i] = linker.Candidate{Box: *ob.Box, DocTypes: ob.DocTypes}
	}
	return linker.FindMatch(*ex, candidates), nil
}

// CreateBoxFromExtraction opens a new box seeded from one extraction and
// attaches the document to it.
func (p *Processor) CreateBoxFromExtraction(ctx context.Context, doc *entity.AttachedDocument, ex *entity.Extraction) (*entity.Box, error) {
	req := &repository.CreateBoxRequest{
		BusinessID: doc.BusinessID,
		BoxType:    boxTypeFor(ex.DocType),
		HasVat:     ex.VatAmount != nil,
		BoxDate:    time.Now().UTC(),
	}
	if ex.ContactName != nil {
		req.ContactName = *ex.ContactName
	}
	if ex.TaxID != nil {
		req.ContactTaxID = *ex.TaxID
	}
	if ex.DocumentDate != nil {
		req.BoxDate = *ex.DocumentDate
	}
	if ex.Amount != nil {
		req.TotalAmount = *ex.Amount
	}
	if ex.VatAmount != nil {
		req.VatAmount = *ex.VatAmount
	}
	if req.BoxType == constants.BoxTypeExpense {
		et := expenseTypeFor(ex)
		req.ExpenseType = &et
	}

	box, err := p.boxes.CreateBox(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create box: %w", err)
	}
	if _, _, err := p.boxes.AttachDocument(ctx, &repository.AttachDocumentRequest{
		DocumentID: doc.ID,
		BoxID:      box.ID,
		DocType:    ex.DocType,
	}); err != nil {
		return nil, fmt.Errorf("attach to new box: %w", err)
	}
	return box, nil
}

// boxTypeFor guesses the box direction from the document kind. Invoices
// we issued and incoming withholding certificates are income evidence;
// everything else defaults to expense.
func boxTypeFor(dt constants.DocType) constants.BoxType {
	switch dt {
	case constants.DocTypeInvoice, constants.DocTypeWhtIncoming:
		return constants.BoxTypeIncome
	}
	return constants.BoxTypeExpense
}

func expenseTypeFor(ex *entity.Extraction) constants.ExpenseType {
	switch {
	case ex.DocType == constants.DocTypeForeignInvoice:
		return constants.ExpenseTypeForeign
	case ex.VatAmount == nil:
		return constants.ExpenseTypeNoVat
	}
	return constants.ExpenseTypeStandard
}
