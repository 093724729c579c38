package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents the bookkeeping entity that owns boxes.
type Business struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TaxID           string    `json:"tax_id"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
