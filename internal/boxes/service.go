package boxes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/aggregate"
	"github.com/teerapat-ng/docbox/internal/checklist"
	"github.com/teerapat-ng/docbox/internal/entity"
	"github.com/teerapat-ng/docbox/internal/repository"
)

// ChecklistView is the evaluated checklist for one box snapshot.
type ChecklistView struct {
	Box               *entity.Box            `json:"box"`
	Items             []entity.ChecklistItem `json:"items"`
	Status            constants.DocStatus    `json:"status"`
	CompletionPercent int                    `json:"completion_percent"`
}

// Service assembles engine views over persisted boxes. The engine
// functions themselves are pure; this layer only gathers their inputs.
type Service struct {
	boxes       repository.BoxRepository
	extractions repository.ExtractionRepository
	overrides   repository.OverrideRepository
	logger      *slog.Logger
}

func NewService(
	boxes repository.BoxRepository,
	extractions repository.ExtractionRepository,
	overrides repository.OverrideRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		boxes:       boxes,
		extractions: extractions,
		overrides:   overrides,
		logger:      logger,
	}
}

// Checklist evaluates the box's checklist against its current document
// set. The box row and document set are read together; the stored
// doc_status was computed in the transaction that last touched either.
func (s *Service) Checklist(ctx context.Context, boxID uuid.UUID) (*ChecklistView, error) {
	box, err := s.boxes.GetByID(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("load box: %w", err)
	}
	docTypes, err := s.boxes.DocTypes(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("load document types: %w", err)
	}

	in := statusInput(box, docTypes)
	items := checklist.BuildChecklist(in)
	return &ChecklistView{
		Box:               box,
		Items:             items,
		Status:            checklist.DetermineStatus(in),
		CompletionPercent: checklist.CompletionPercent(items),
	}, nil
}

// Aggregate merges every usable extraction attached to the box into
// conflict-aware fields, with stored human overrides applied on top.
func (s *Service) Aggregate(ctx context.Context, boxID uuid.UUID) (map[string]entity.AggregatedField, error) {
	extractions, err := s.extractions.ListUsableByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("load extractions: %w", err)
	}
	overrides, err := s.overrides.ListByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	return aggregate.Aggregate(extractions, overrides), nil
}

// OverrideField pins one aggregated field to a human-chosen value.
func (s *Service) OverrideField(ctx context.Context, boxID uuid.UUID, fieldName, value string) error {
	if err := s.overrides.Set(ctx, boxID, fieldName, value); err != nil {
		return err
	}
	s.logger.Info("field override set", "box_id", boxID, "field", fieldName)
	return nil
}

// ClearOverride removes a pinned value; aggregation takes over again.
func (s *Service) ClearOverride(ctx context.Context, boxID uuid.UUID, fieldName string) error {
	return s.overrides.Clear(ctx, boxID, fieldName)
}

func statusInput(box *entity.Box, docTypes []constants.DocType) checklist.StatusInput {
	flags := checklist.DeriveAutoFlags(docTypes)
	flags.IsPaid = box.IsPaid
	flags.WhtSent = box.WhtSent

	in := checklist.StatusInput{
		BoxType:         box.BoxType,
		HasVat:          box.HasVat,
		HasWht:          box.HasWht,
		Flags:           flags,
		DocTypes:        docTypes,
		NoReceiptReason: box.NoReceiptReason,
	}
	if box.ExpenseType != nil {
		in.ExpenseType = *box.ExpenseType
	}
	return in
}
