package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one file waiting for the document reader.
type Job struct {
	DocumentID   uuid.UUID
	ExtractionID uuid.UUID
	Path         string
	SubmittedAt  time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
