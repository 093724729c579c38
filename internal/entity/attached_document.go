package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
)

// AttachedDocument represents an uploaded file for data transfer between
// layers. BoxID is nil while the file waits in the inbox for placement.
type AttachedDocument struct {
	ID         uuid.UUID         `json:"id"`
	BusinessID uuid.UUID         `json:"business_id"`
	BoxID      *uuid.UUID        `json:"box_id,omitempty"`
	Filename   string            `json:"filename"`
	FileExt    string            `json:"file_ext"`
	DocType    constants.DocType `json:"doc_type"`
	UploadedAt time.Time         `json:"uploaded_at"`
	Extraction *Extraction       `json:"extraction,omitempty"`
}
