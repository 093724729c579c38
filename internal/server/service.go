package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/teerapat-ng/docbox/constants"
	boxespb "github.com/teerapat-ng/docbox/gen/proto/boxes/v1"
	"github.com/teerapat-ng/docbox/internal/async"
	"github.com/teerapat-ng/docbox/internal/boxes"
	"github.com/teerapat-ng/docbox/internal/export"
	"github.com/teerapat-ng/docbox/internal/pipeline"
	"github.com/teerapat-ng/docbox/internal/repository"
)

// BoxesService is the gRPC surface over the reconciliation engine and
// its repositories.
type BoxesService struct {
	boxespb.UnimplementedBoxesServiceServer

	businesses  repository.BusinessRepository
	boxRepo     repository.BoxRepository
	documents   repository.DocumentRepository
	extractions repository.ExtractionRepository
	views       *boxes.Service
	processor   *pipeline.Processor
	exporter    *export.Service
	queue       async.Queue
	logger      *slog.Logger
}

func NewBoxesService(
	businesses repository.BusinessRepository,
	boxRepo repository.BoxRepository,
	documents repository.DocumentRepository,
	extractions repository.ExtractionRepository,
	views *boxes.Service,
	processor *pipeline.Processor,
	exporter *export.Service,
	queue async.Queue,
	logger *slog.Logger,
) *BoxesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BoxesService{
		businesses:  businesses,
		boxRepo:     boxRepo,
		documents:   documents,
		extractions: extractions,
		views:       views,
		processor:   processor,
		exporter:    exporter,
		queue:       queue,
		logger:      logger,
	}
}

func (s *BoxesService) CreateBusiness(ctx context.Context, req *boxespb.CreateBusinessRequest) (*boxespb.CreateBusinessResponse, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	b, err := s.businesses.CreateBusiness(ctx, &repository.CreateBusinessRequest{
		Name:            req.GetName(),
		TaxID:           req.GetTaxId(),
		DefaultCurrency: req.GetDefaultCurrency(),
	})
	if err != nil {
		s.logger.Warn("create business failed", "error", err)
		return nil, status.Error(codes.Internal, "create business failed")
	}
	return &boxespb.CreateBusinessResponse{Business: toPBBusiness(b)}, nil
}

func (s *BoxesService) ListBusinesses(ctx context.Context, _ *boxespb.ListBusinessesRequest) (*boxespb.ListBusinessesResponse, error) {
	bs, err := s.businesses.ListBusinesses(ctx)
	if err != nil {
		s.logger.Warn("list businesses failed", "error", err)
		return nil, status.Error(codes.Internal, "list businesses failed")
	}
	out := make([]*boxespb.Business, 0, len(bs))
	for _, b := range bs {
		out = append(out, toPBBusiness(b))
	}
	return &boxespb.ListBusinessesResponse{Businesses: out}, nil
}

func (s *BoxesService) CreateBox(ctx context.Context, req *boxespb.CreateBoxRequest) (*boxespb.CreateBoxResponse, error) {
	businessID, err := parseID(req.GetBusinessId(), "business_id")
	if err != nil {
		return nil, err
	}
	boxDate, err := time.Parse("2006-01-02", req.GetBoxDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid box_date %q", req.GetBoxDate())
	}
	if !contains(constants.BoxTypeStrings(), req.GetBoxType()) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown box_type %q", req.GetBoxType())
	}
	if et := req.GetExpenseType(); et != "" && !contains(constants.ExpenseTypeStrings(), et) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown expense_type %q", et)
	}

	create := &repository.CreateBoxRequest{
		BusinessID:   businessID,
		BoxType:      constants.BoxType(req.GetBoxType()),
		ContactName:  req.GetContactName(),
		ContactTaxID: req.GetContactTaxId(),
		BoxDate:      boxDate,
		HasVat:       req.GetHasVat(),
		HasWht:       req.GetHasWht(),
		TotalAmount:  req.GetTotalAmount(),
		VatAmount:    req.GetVatAmount(),
		WhtAmount:    req.GetWhtAmount(),
	}
	if et := req.GetExpenseType(); et != "" {
		expenseType := constants.ExpenseType(et)
		create.ExpenseType = &expenseType
	}
	if reason := req.GetNoReceiptReason(); reason != "" {
		r := constants.NoReceiptReason(reason)
		if !knownReason(r) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown no_receipt_reason %q", reason)
		}
		create.NoReceiptReason = &r
	}

	b, err := s.boxRepo.CreateBox(ctx, create)
	if err != nil {
		s.logger.Warn("create box failed", "business_id", businessID, "error", err)
		return nil, status.Error(codes.Internal, "create box failed")
	}
	return &boxespb.CreateBoxResponse{Box: toPBBox(b)}, nil
}

func (s *BoxesService) ListBoxes(ctx context.Context, req *boxespb.ListBoxesRequest) (*boxespb.ListBoxesResponse, error) {
	businessID, err := parseID(req.GetBusinessId(), "business_id")
	if err != nil {
		return nil, err
	}
	var statusFilter *constants.DocStatus
	if ds := req.GetDocStatus(); ds != "" {
		if !contains(constants.DocStatusStrings(), ds) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown doc_status %q", ds)
		}
		v := constants.DocStatus(ds)
		statusFilter = &v
	}
	bs, err := s.boxRepo.ListBoxes(ctx, businessID, statusFilter)
	if err != nil {
		s.logger.Warn("list boxes failed", "business_id", businessID, "error", err)
		return nil, status.Error(codes.Internal, "list boxes failed")
	}
	out := make([]*boxespb.Box, 0, len(bs))
	for _, b := range bs {
		out = append(out, toPBBox(b))
	}
	return &boxespb.ListBoxesResponse{Boxes: out}, nil
}

func (s *BoxesService) GetChecklist(ctx context.Context, req *boxespb.GetChecklistRequest) (*boxespb.GetChecklistResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	view, err := s.views.Checklist(ctx, boxID)
	if err != nil {
		s.logger.Warn("checklist evaluation failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "checklist evaluation failed")
	}

	items := make([]*boxespb.ChecklistItem, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, toPBChecklistItem(it))
	}
	return &boxespb.GetChecklistResponse{
		Box:               toPBBox(view.Box),
		Items:             items,
		Status:            string(view.Status),
		CompletionPercent: int32(view.CompletionPercent),
	}, nil
}

func (s *BoxesService) SetAttestations(ctx context.Context, req *boxespb.SetAttestationsRequest) (*boxespb.SetAttestationsResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	att := repository.Attestations{}
	if req.IsPaid != nil {
		att.IsPaid = req.IsPaid
	}
	if req.WhtSent != nil {
		att.WhtSent = req.WhtSent
	}
	b, err := s.boxRepo.SetAttestations(ctx, boxID, att)
	if err != nil {
		s.logger.Warn("set attestations failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "set attestations failed")
	}
	return &boxespb.SetAttestationsResponse{Box: toPBBox(b)}, nil
}

func (s *BoxesService) SetNoReceiptReason(ctx context.Context, req *boxespb.SetNoReceiptReasonRequest) (*boxespb.SetNoReceiptReasonResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	var reason *constants.NoReceiptReason
	if raw := req.GetReason(); raw != "" {
		r := constants.NoReceiptReason(raw)
		if !knownReason(r) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown reason %q", raw)
		}
		reason = &r
	}
	b, err := s.boxRepo.SetNoReceiptReason(ctx, boxID, reason)
	if err != nil {
		s.logger.Warn("set no-receipt reason failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "set no-receipt reason failed")
	}
	return &boxespb.SetNoReceiptReasonResponse{Box: toPBBox(b)}, nil
}

func knownReason(r constants.NoReceiptReason) bool {
	return contains(constants.NoReceiptReasonStrings(), string(r))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (s *BoxesService) SubmitDocument(ctx context.Context, req *boxespb.SubmitDocumentRequest) (*boxespb.SubmitDocumentResponse, error) {
	businessID, err := parseID(req.GetBusinessId(), "business_id")
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}

	if exists, _ := s.businesses.Exists(ctx, businessID); !exists {
		return nil, status.Error(codes.InvalidArgument, "business not found")
	}

	doc, ex, err := s.processor.SubmitUpload(ctx, &repository.CreateDocumentRequest{
		BusinessID: businessID,
		Filename:   filepath.Base(path),
		FileExt:    ext,
	})
	if err != nil {
		s.logger.Warn("submit document failed", "business_id", businessID, "error", err)
		return nil, status.Error(codes.Internal, "submit document failed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:   doc.ID,
		ExtractionID: ex.ID,
		Path:         path,
		SubmittedAt:  time.Now(),
	}); err != nil {
		s.logger.Warn("enqueue failed", "document_id", doc.ID, "error", err)
		return nil, status.Error(codes.Internal, "enqueue failed")
	}

	return &boxespb.SubmitDocumentResponse{
		DocumentId:   doc.ID.String(),
		ExtractionId: ex.ID.String(),
	}, nil
}

func (s *BoxesService) ListInbox(ctx context.Context, req *boxespb.ListInboxRequest) (*boxespb.ListInboxResponse, error) {
	businessID, err := parseID(req.GetBusinessId(), "business_id")
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.ListInbox(ctx, businessID)
	if err != nil {
		s.logger.Warn("list inbox failed", "business_id", businessID, "error", err)
		return nil, status.Error(codes.Internal, "list inbox failed")
	}
	out := make([]*boxespb.InboxDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, &boxespb.InboxDocument{
			Id:         d.ID.String(),
			BusinessId: d.BusinessID.String(),
			Filename:   d.Filename,
			DocType:    string(d.DocType),
			UploadedAt: d.UploadedAt.UTC().Format(time.RFC3339),
		})
	}
	return &boxespb.ListInboxResponse{Documents: out}, nil
}

// FindMatch re-runs the linker for a finished extraction so a human can
// review the ranked candidates behind the pipeline's decision.
func (s *BoxesService) FindMatch(ctx context.Context, req *boxespb.FindMatchRequest) (*boxespb.FindMatchResponse, error) {
	extractionID, err := parseID(req.GetExtractionId(), "extraction_id")
	if err != nil {
		return nil, err
	}
	ex, err := s.extractions.GetByID(ctx, extractionID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "extraction not found")
	}
	if !ex.Usable() {
		return nil, status.Error(codes.FailedPrecondition, "extraction has not finished")
	}
	doc, err := s.documents.GetByID(ctx, ex.DocumentID)
	if err != nil {
		s.logger.Warn("load document failed", "document_id", ex.DocumentID, "error", err)
		return nil, status.Error(codes.Internal, "load document failed")
	}

	result, err := s.processor.Match(ctx, doc.BusinessID, ex)
	if err != nil {
		s.logger.Warn("match failed", "extraction_id", extractionID, "error", err)
		return nil, status.Error(codes.Internal, "match failed")
	}

	matches := make([]*boxespb.MatchCandidate, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, &boxespb.MatchCandidate{
			BoxId:   m.BoxID.String(),
			Score:   int32(m.Score),
			Reasons: m.Reasons,
		})
	}
	return &boxespb.FindMatchResponse{
		HasMatch:        result.HasMatch,
		Matches:         matches,
		SuggestedAction: string(result.SuggestedAction),
		Reason:          result.Reason,
	}, nil
}

func (s *BoxesService) AttachDocument(ctx context.Context, req *boxespb.AttachDocumentRequest) (*boxespb.AttachDocumentResponse, error) {
	documentID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	docType, ok := constants.CanonicalizeDocType(req.GetDocType())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown doc_type %q", req.GetDocType())
	}

	_, box, err := s.boxRepo.AttachDocument(ctx, &repository.AttachDocumentRequest{
		DocumentID: documentID,
		BoxID:      boxID,
		DocType:    docType,
	})
	if err != nil {
		s.logger.Warn("attach document failed", "document_id", documentID, "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "attach document failed")
	}
	return &boxespb.AttachDocumentResponse{Box: toPBBox(box)}, nil
}

func (s *BoxesService) GetAggregatedFields(ctx context.Context, req *boxespb.GetAggregatedFieldsRequest) (*boxespb.GetAggregatedFieldsResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	fields, err := s.views.Aggregate(ctx, boxID)
	if err != nil {
		s.logger.Warn("aggregation failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "aggregation failed")
	}
	return &boxespb.GetAggregatedFieldsResponse{Fields: toPBFields(fields)}, nil
}

func (s *BoxesService) SetFieldOverride(ctx context.Context, req *boxespb.SetFieldOverrideRequest) (*boxespb.SetFieldOverrideResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	if req.GetFieldName() == "" {
		return nil, status.Error(codes.InvalidArgument, "field_name is required")
	}
	if err := s.views.OverrideField(ctx, boxID, req.GetFieldName(), req.GetValue()); err != nil {
		s.logger.Warn("set field override failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "set field override failed")
	}
	return &boxespb.SetFieldOverrideResponse{}, nil
}

func (s *BoxesService) ClearFieldOverride(ctx context.Context, req *boxespb.ClearFieldOverrideRequest) (*boxespb.ClearFieldOverrideResponse, error) {
	boxID, err := parseID(req.GetBoxId(), "box_id")
	if err != nil {
		return nil, err
	}
	if req.GetFieldName() == "" {
		return nil, status.Error(codes.InvalidArgument, "field_name is required")
	}
	if err := s.views.ClearOverride(ctx, boxID, req.GetFieldName()); err != nil {
		s.logger.Warn("clear field override failed", "box_id", boxID, "error", err)
		return nil, status.Error(codes.Internal, "clear field override failed")
	}
	return &boxespb.ClearFieldOverrideResponse{}, nil
}

func (s *BoxesService) ExportBoxes(ctx context.Context, req *boxespb.ExportBoxesRequest) (*boxespb.ExportBoxesResponse, error) {
	businessID, err := parseID(req.GetBusinessId(), "business_id")
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportBoxesXLSX(ctx, businessID)
	if err != nil {
		s.logger.Warn("export failed", "business_id", businessID, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &boxespb.ExportBoxesResponse{Xlsx: data}, nil
}

func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return id, nil
}
