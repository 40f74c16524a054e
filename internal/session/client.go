package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"emretopal/cv-analiz/internal/models"
)

// AnalyzeClient submits an analysis request to the analyze endpoint: a
// single multipart POST carrying the artifact binary and the chosen
// model identifier.
type AnalyzeClient struct {
	baseURL string
	client  *http.Client
}

func NewAnalyzeClient(baseURL string, timeout time.Duration) *AnalyzeClient {
	return &AnalyzeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit performs the analysis call. A network failure or non-2xx status
// yields a TransportError; a decodable 2xx body is returned as the raw
// result, logical error fields included.
func (c *AnalyzeClient) Submit(ctx context.Context, req models.AnalysisRequest) (models.RawResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", req.Artifact.Name)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to build multipart body: %w", err)}
	}
	src, err := os.Open(req.Artifact.FilePath)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to open artifact: %w", err)}
	}
	if _, err := io.Copy(part, src); err != nil {
		src.Close()
		return nil, &TransportError{Err: fmt.Errorf("failed to read artifact: %w", err)}
	}
	src.Close()

	if err := writer.WriteField("model", req.ModelID); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to write model field: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to finalize multipart body: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze-cv", &body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(respBody))),
		}
	}

	var raw models.RawResult
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return raw, nil
}
