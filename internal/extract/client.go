package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/internal/common"
)

// HTTPReader talks to the reading collaborator over HTTP. One POST per
// file: the file content goes up base64-encoded, the structured payload
// comes back as the response body.
type HTTPReader struct {
	cfg    common.ReaderConfig
	client *http.Client
	logger *slog.Logger
}

func NewHTTPReader(cfg common.ReaderConfig, logger *slog.Logger) *HTTPReader {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPReader{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type readRequest struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content_b64"`
}

type readResponse struct {
	Payload  json.RawMessage `json:"payload"`
	Warnings []string        `json:"warnings,omitempty"`
}

func (r *HTTPReader) Read(ctx context.Context, path string) (ReadResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read file: %w", err)
	}

	body, err := json.Marshal(readRequest{
		Filename:   filepath.Base(path),
		ContentB64: base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return ReadResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return ReadResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	r.logger.Info("extract.http.request",
		"req_id", reqID,
		"filename", filepath.Base(path),
		"content_length", len(body),
	)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("extract.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return ReadResult{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.Warn("extract.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	elapsed := time.Since(start)

	r.logger.Info("extract.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", elapsed.Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return ReadResult{}, fmt.Errorf("reader returned status %d", resp.StatusCode)
	}

	var decoded readResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ReadResult{}, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Payload) == 0 {
		return ReadResult{}, fmt.Errorf("reader response missing payload")
	}

	return ReadResult{
		JSON:     decoded.Payload,
		Duration: elapsed,
		Warnings: decoded.Warnings,
	}, nil
}
