package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/teerapat-ng/docbox/internal/boxes"
	"github.com/teerapat-ng/docbox/internal/repository"
)

// Service produces XLSX bytes summarizing a business's boxes together
// with their checklist state.
type Service struct {
	boxRepo repository.BoxRepository
	views   *boxes.Service
	logger  *slog.Logger
}

func NewService(boxRepo repository.BoxRepository, views *boxes.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{boxRepo: boxRepo, views: views, logger: logger}
}

// ExportBoxesXLSX returns an XLSX workbook (as bytes) for the business.
func (s *Service) ExportBoxesXLSX(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.boxRepo.ListBoxes(ctx, businessID, nil)
	if err != nil {
		return nil, fmt.Errorf("query boxes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Boxes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Type",
		"Contact",
		"Tax ID",
		"Total",
		"VAT",
		"WHT",
		"Payment",
		"Documents",
		"Completion",
		"Missing",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range recs {
		view, err := s.views.Checklist(ctx, b.ID)
		if err != nil {
			s.logger.Warn("checklist evaluation failed during export", "box_id", b.ID, "error", err)
			continue
		}

		var missing []string
		for _, it := range view.Items {
			if it.Required && !it.Completed {
				missing = append(missing, it.Label)
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		boxType := string(b.BoxType)
		if b.ExpenseType != nil {
			boxType = fmt.Sprintf("%s/%s", b.BoxType, *b.ExpenseType)
		}

		write(1, b.BoxDate.Format("2006-01-02"))
		write(2, boxType)
		write(3, b.ContactName)
		write(4, b.ContactTaxID)
		write(5, fmt.Sprintf("%.2f", b.TotalAmount))
		write(6, fmt.Sprintf("%.2f", b.VatAmount))
		write(7, fmt.Sprintf("%.2f", b.WhtAmount))
		write(8, string(b.PaymentStatus))
		write(9, string(view.Status))
		write(10, fmt.Sprintf("%d%%", view.CompletionPercent))
		write(11, strings.Join(missing, ", "))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 28)
	_ = f.SetColWidth(sheet, "K", "K", 40)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("boxes exported",
		"business_id", businessID, "rows", row-2, "duration", time.Since(start))
	return buf.Bytes(), nil
}
