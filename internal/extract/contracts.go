package extract

import (
	"context"
	"time"
)

// DocumentReader is the external OCR/classification collaborator: one
// call per uploaded file, slow and fallible, consumed as a black box.
// The engine never performs this call itself; it only consumes finished
// results.
type DocumentReader interface {
	Read(ctx context.Context, path string) (ReadResult, error)
}

// ReadResult is the collaborator's raw answer for one file.
type ReadResult struct {
	JSON     []byte // structured fields, validated by DecodePayload
	Duration time.Duration
	Warnings []string
}
