package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/normalize"
)

// Fields is the sanitized shape we keep from one collaborator payload.
// Optional members that failed to parse are absent, never zero.
type Fields struct {
	DocType        constants.DocType
	Confidence     float32
	Amount         *float64
	VatAmount      *float64
	ContactName    *string
	DocumentDate   *time.Time
	DocumentNumber *string
	TaxID          *string
	Description    *string
	Dropped        []string // field names discarded during sanitizing
}

type rawPayload struct {
	DocType        string  `json:"doc_type"`
	Confidence     float32 `json:"confidence"`
	Amount         any     `json:"amount,omitempty"`
	VatAmount      any     `json:"vat_amount,omitempty"`
	ContactName    string  `json:"contact_name,omitempty"`
	DocumentDate   string  `json:"document_date,omitempty"`
	DocumentNumber string  `json:"document_number,omitempty"`
	TaxID          string  `json:"tax_id,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// DecodePayload validates and sanitizes one collaborator payload.
// Numeric strings are stripped of currency symbols and separators; a
// value that still cannot be parsed is dropped from the record rather
// than treated as zero or an error. Only a structurally invalid payload
// returns an error.
func DecodePayload(raw []byte, logger *slog.Logger) (Fields, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateAgainstSchema(BuildPayloadJSONSchema(), raw); err != nil {
		return Fields{}, fmt.Errorf("decode payload: %w", err)
	}

	var p rawPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Fields{}, fmt.Errorf("decode payload: %w", err)
	}

	f := Fields{Confidence: p.Confidence}

	docType, known := constants.CanonicalizeDocType(p.DocType)
	f.DocType = docType
	if !known {
		f.Dropped = append(f.Dropped, "doc_type("+p.DocType+")")
	}

	f.Amount = moneyValue(p.Amount, "amount", &f.Dropped)
	f.VatAmount = moneyValue(p.VatAmount, "vat_amount", &f.Dropped)

	if d, ok := normalize.ParseDate(p.DocumentDate); ok {
		f.DocumentDate = &d
	} else if strings.TrimSpace(p.DocumentDate) != "" {
		f.Dropped = append(f.Dropped, "document_date")
	}

	f.ContactName = optString(p.ContactName)
	f.DocumentNumber = optString(p.DocumentNumber)
	f.Description = optString(p.Description)
	if id := normalize.DigitsOnly(p.TaxID); id != "" {
		f.TaxID = &id
	} else if strings.TrimSpace(p.TaxID) != "" {
		f.Dropped = append(f.Dropped, "tax_id")
	}

	if len(f.Dropped) > 0 {
		logger.Warn("extract.payload.sanitize", "dropped", f.Dropped)
	}
	return f, nil
}

func moneyValue(v any, name string, dropped *[]string) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		if n, ok := normalize.ParseAmount(t); ok {
			return &n
		}
		*dropped = append(*dropped, name)
		return nil
	default:
		*dropped = append(*dropped, name)
		return nil
	}
}

func optString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
