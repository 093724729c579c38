package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/entity"
	"github.com/teerapat-ng/docbox/internal/extract"
	"github.com/teerapat-ng/docbox/internal/repository"
)

type fakeReader struct {
	json []byte
	err  error
}

func (r *fakeReader) Read(_ context.Context, _ string) (extract.ReadResult, error) {
	if r.err != nil {
		return extract.ReadResult{}, r.err
	}
	return extract.ReadResult{JSON: r.json}, nil
}

type memStore struct {
	boxes       map[uuid.UUID]*entity.Box
	boxDocs     map[uuid.UUID][]constants.DocType
	documents   map[uuid.UUID]*entity.AttachedDocument
	extractions map[uuid.UUID]*entity.Extraction
	attached    []repository.AttachDocumentRequest
}

func newMemStore() *memStore {
	return &memStore{
		boxes:       map[uuid.UUID]*entity.Box{},
		boxDocs:     map[uuid.UUID][]constants.DocType{},
		documents:   map[uuid.UUID]*entity.AttachedDocument{},
		extractions: map[uuid.UUID]*entity.Extraction{},
	}
}

type memBoxRepo struct{ s *memStore }

func (r *memBoxRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Box, error) {
	b, ok := r.s.boxes[id]
	if !ok {
		return nil, errors.New("box not found")
	}
	return b, nil
}

func (r *memBoxRepo) ListBoxes(_ context.Context, businessID uuid.UUID, _ *constants.DocStatus) ([]*entity.Box, error) {
	var out []*entity.Box
	for _, b := range r.s.boxes {
		if b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBoxRepo) ListOpenBoxes(_ context.Context, businessID uuid.UUID) ([]repository.OpenBox, error) {
	var out []repository.OpenBox
	for id, b := range r.s.boxes {
		if b.BusinessID == businessID && b.DocStatus == constants.DocStatusIncomplete {
			out = append(out, repository.OpenBox{Box: b, DocTypes: r.s.boxDocs[id]})
		}
	}
	return out, nil
}

func (r *memBoxRepo) CreateBox(_ context.Context, req *repository.CreateBoxRequest) (*entity.Box, error) {
	b := &entity.Box{
		ID:           uuid.New(),
		BusinessID:   req.BusinessID,
		BoxType:      req.BoxType,
		ExpenseType:  req.ExpenseType,
		ContactName:  req.ContactName,
		ContactTaxID: req.ContactTaxID,
		BoxDate:      req.BoxDate,
		HasVat:       req.HasVat,
		HasWht:       req.HasWht,
		TotalAmount:  req.TotalAmount,
		VatAmount:    req.VatAmount,
		DocStatus:    constants.DocStatusIncomplete,
	}
	r.s.boxes[b.ID] = b
	return b, nil
}

func (r *memBoxRepo) AttachDocument(_ context.Context, req *repository.AttachDocumentRequest) (*entity.AttachedDocument, *entity.Box, error) {
	b, ok := r.s.boxes[req.BoxID]
	if !ok {
		return nil, nil, errors.New("box not found")
	}
	doc, ok := r.s.documents[req.DocumentID]
	if !ok {
		return nil, nil, errors.New("document not found")
	}
	id := req.BoxID
	doc.BoxID = &id
	doc.DocType = req.DocType
	r.s.boxDocs[req.BoxID] = append(r.s.boxDocs[req.BoxID], req.DocType)
	r.s.attached = append(r.s.attached, *req)
	return doc, b, nil
}

func (r *memBoxRepo) SetAttestations(_ context.Context, boxID uuid.UUID, _ repository.Attestations) (*entity.Box, error) {
	return r.s.boxes[boxID], nil
}

func (r *memBoxRepo) SetNoReceiptReason(_ context.Context, boxID uuid.UUID, _ *constants.NoReceiptReason) (*entity.Box, error) {
	return r.s.boxes[boxID], nil
}

func (r *memBoxRepo) DocTypes(_ context.Context, boxID uuid.UUID) ([]constants.DocType, error) {
	return r.s.boxDocs[boxID], nil
}

type memDocRepo struct{ s *memStore }

func (r *memDocRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.AttachedDocument, error) {
	d, ok := r.s.documents[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return d, nil
}

func (r *memDocRepo) CreateInbox(_ context.Context, req *repository.CreateDocumentRequest) (*entity.AttachedDocument, error) {
	d := &entity.AttachedDocument{
		ID:         uuid.New(),
		BusinessID: req.BusinessID,
		Filename:   req.Filename,
		FileExt:    req.FileExt,
		DocType:    constants.DocTypeOther,
		UploadedAt: time.Now(),
	}
	r.s.documents[d.ID] = d
	return d, nil
}

func (r *memDocRepo) ListByBox(_ context.Context, _ uuid.UUID) ([]*entity.AttachedDocument, error) {
	return nil, nil
}

func (r *memDocRepo) ListInbox(_ context.Context, businessID uuid.UUID) ([]*entity.AttachedDocument, error) {
	var out []*entity.AttachedDocument
	for _, d := range r.s.documents {
		if d.BusinessID == businessID && d.BoxID == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

type memExtractionRepo struct{ s *memStore }

func (r *memExtractionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Extraction, error) {
	e, ok := r.s.extractions[id]
	if !ok {
		return nil, errors.New("extraction not found")
	}
	return e, nil
}

func (r *memExtractionRepo) CreateQueued(_ context.Context, documentID uuid.UUID, docType constants.DocType) (*entity.Extraction, error) {
	e := &entity.Extraction{
		ID:         uuid.New(),
		DocumentID: documentID,
		DocType:    docType,
		Status:     constants.ExtractionQueued,
	}
	r.s.extractions[e.ID] = e
	return e, nil
}

func (r *memExtractionRepo) MarkRunning(_ context.Context, id uuid.UUID) error {
	r.s.extractions[id].Status = constants.ExtractionRunning
	return nil
}

func (r *memExtractionRepo) SaveResult(_ context.Context, id uuid.UUID, fields extract.Fields) (*entity.Extraction, error) {
	e := r.s.extractions[id]
	e.DocType = fields.DocType
	e.Confidence = fields.Confidence
	e.Amount = fields.Amount
	e.VatAmount = fields.VatAmount
	e.ContactName = fields.ContactName
	e.DocumentDate = fields.DocumentDate
	e.DocumentNumber = fields.DocumentNumber
	e.TaxID = fields.TaxID
	e.Description = fields.Description
	e.Status = constants.ExtractionDone
	return e, nil
}

func (r *memExtractionRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	e := r.s.extractions[id]
	e.Status = constants.ExtractionFailed
	e.ErrorMessage = &message
	return nil
}

func (r *memExtractionRepo) ListUsableByBox(_ context.Context, _ uuid.UUID) ([]entity.Extraction, error) {
	return nil, nil
}

func newTestProcessor(s *memStore, reader extract.DocumentReader) *Processor {
	return NewProcessor(reader, &memBoxRepo{s}, &memDocRepo{s}, &memExtractionRepo{s}, nil)
}

func submit(t *testing.T, p *Processor, businessID uuid.UUID, filename string) (*entity.AttachedDocument, *entity.Extraction) {
	t.Helper()
	doc, ex, err := p.SubmitUpload(context.Background(), &repository.CreateDocumentRequest{
		BusinessID: businessID,
		Filename:   filename,
		FileExt:    ".pdf",
	})
	require.NoError(t, err)
	return doc, ex
}

func TestProcessDocumentCreatesBoxWhenInboxEmpty(t *testing.T) {
	s := newMemStore()
	reader := &fakeReader{json: []byte(`{
		"doc_type": "TAX_INVOICE",
		"confidence": 0.9,
		"amount": 1070.00,
		"vat_amount": 70.00,
		"contact_name": "ACME Trading Co., Ltd.",
		"document_date": "2025-03-10",
		"tax_id": "0105551234567"
	}`)}
	p := newTestProcessor(s, reader)

	businessID := uuid.New()
	doc, ex := submit(t, p, businessID, "inv.pdf")

	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID, ex.ID, "/tmp/inv.pdf"))

	require.Len(t, s.boxes, 1)
	for _, b := range s.boxes {
		assert.Equal(t, constants.BoxTypeExpense, b.BoxType)
		require.NotNil(t, b.ExpenseType)
		assert.Equal(t, constants.ExpenseTypeStandard, *b.ExpenseType)
		assert.Equal(t, "ACME Trading Co., Ltd.", b.ContactName)
		assert.Equal(t, 1070.00, b.TotalAmount)
		assert.True(t, b.HasVat)
	}
	require.NotNil(t, doc.BoxID, "document was attached to the new box")
	assert.Equal(t, constants.DocTypeTaxInvoice, doc.DocType)
}

func TestProcessDocumentAttachesToStrongMatch(t *testing.T) {
	s := newMemStore()
	businessID := uuid.New()

	existing := &entity.Box{
		ID:           uuid.New(),
		BusinessID:   businessID,
		BoxType:      constants.BoxTypeExpense,
		ContactName:  "ACME Trading Co., Ltd.",
		ContactTaxID: "0105551234567",
		TotalAmount:  1070.00,
		BoxDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DocStatus:    constants.DocStatusIncomplete,
	}
	s.boxes[existing.ID] = existing
	s.boxDocs[existing.ID] = []constants.DocType{constants.DocTypeTaxInvoice}

	reader := &fakeReader{json: []byte(`{
		"doc_type": "SLIP_TRANSFER",
		"confidence": 0.85,
		"amount": 1070.00,
		"contact_name": "ACME Trading",
		"document_date": "2025-03-10",
		"tax_id": "0-1055-51234-56-7"
	}`)}
	p := newTestProcessor(s, reader)

	doc, ex := submit(t, p, businessID, "slip.jpg")
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID, ex.ID, "/tmp/slip.jpg"))

	require.Len(t, s.attached, 1)
	assert.Equal(t, existing.ID, s.attached[0].BoxID)
	assert.Equal(t, constants.DocTypeSlipTransfer, s.attached[0].DocType)
	assert.Len(t, s.boxes, 1, "no new box was opened")
}

func TestProcessDocumentLeavesAmbiguousInInbox(t *testing.T) {
	s := newMemStore()
	businessID := uuid.New()

	// Same contact, no other overlap: the candidate scores between the
	// floor and the attach threshold.
	existing := &entity.Box{
		ID:          uuid.New(),
		BusinessID:  businessID,
		BoxType:     constants.BoxTypeExpense,
		ContactName: "ACME Trading Co., Ltd.",
		DocStatus:   constants.DocStatusIncomplete,
	}
	s.boxes[existing.ID] = existing

	reader := &fakeReader{json: []byte(`{
		"doc_type": "TAX_INVOICE",
		"confidence": 0.7,
		"contact_name": "ACME Trading"
	}`)}
	p := newTestProcessor(s, reader)

	doc, ex := submit(t, p, businessID, "inv2.pdf")
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID, ex.ID, "/tmp/inv2.pdf"))

	assert.Nil(t, doc.BoxID, "ambiguous document stays in the inbox")
	assert.Empty(t, s.attached)
	assert.Len(t, s.boxes, 1, "no new box was opened either")
}

func TestProcessDocumentRecordsReadFailure(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(s, &fakeReader{err: errors.New("reader timeout")})

	doc, ex := submit(t, p, uuid.New(), "broken.pdf")
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID, ex.ID, "/tmp/broken.pdf"))

	rec := s.extractions[ex.ID]
	assert.Equal(t, constants.ExtractionFailed, rec.Status)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "reader timeout")
	assert.Nil(t, doc.BoxID)
	assert.Empty(t, s.boxes, "a failed read never opens a box")
}

func TestProcessDocumentRecordsDecodeFailure(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(s, &fakeReader{json: []byte(`{"confidence": 0.5}`)})

	doc, ex := submit(t, p, uuid.New(), "weird.pdf")
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID, ex.ID, "/tmp/weird.pdf"))

	assert.Equal(t, constants.ExtractionFailed, s.extractions[ex.ID].Status)
	assert.Empty(t, s.boxes)
}

func TestPlaceSkipsAlreadyPlacedDocument(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(s, &fakeReader{})

	boxID := uuid.New()
	doc := &entity.AttachedDocument{ID: uuid.New(), BoxID: &boxID}
	ex := &entity.Extraction{Status: constants.ExtractionDone, DocType: constants.DocTypeTaxInvoice}

	res, err := p.Place(context.Background(), doc, ex)
	require.NoError(t, err)
	assert.False(t, res.HasMatch)
	assert.Empty(t, s.attached)
}

func TestCreateBoxFromExtractionIncomeAndForeign(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(s, &fakeReader{})
	businessID := uuid.New()

	invoiceDoc, _ := submit(t, p, businessID, "our-invoice.pdf")
	box, err := p.CreateBoxFromExtraction(context.Background(), invoiceDoc, &entity.Extraction{
		DocType: constants.DocTypeInvoice,
		Status:  constants.ExtractionDone,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.BoxTypeIncome, box.BoxType)
	assert.Nil(t, box.ExpenseType)

	foreignDoc, _ := submit(t, p, businessID, "foreign.pdf")
	box, err = p.CreateBoxFromExtraction(context.Background(), foreignDoc, &entity.Extraction{
		DocType: constants.DocTypeForeignInvoice,
		Status:  constants.ExtractionDone,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.BoxTypeExpense, box.BoxType)
	require.NotNil(t, box.ExpenseType)
	assert.Equal(t, constants.ExpenseTypeForeign, *box.ExpenseType)
}
