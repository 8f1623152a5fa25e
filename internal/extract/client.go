package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

const (
	ExtractPath = "/api/extract/text"
	HealthPath  = "/api/extract/health"
	FormField   = "file"
)

// Client talks to the text extraction service over HTTP.
type Client struct {
	origin     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a client for the service at origin. A nil httpClient gets a
// default client without a timeout; requests run until the context ends.
func NewClient(origin string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		origin:     strings.TrimRight(origin, "/"),
		httpClient: httpClient,
		log:        logger,
	}
}

func (c *Client) Origin() string {
	return c.origin
}

// Analyze uploads the file as a single multipart part and decodes the reply.
// Any failure to obtain a parseable 2xx body is returned as an error.
func (c *Client) Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body, contentType, err := encodeMultipart(file)
	if err != nil {
		c.log.Error("extract.http.encode_error", "req_id", reqID, "file", file.Name, "error", err)
		return models.AnalysisResult{}, fmt.Errorf("encode upload: %w", err)
	}

	url := c.origin + ExtractPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		c.log.Error("extract.http.build_request_error", "req_id", reqID, "error", err)
		return models.AnalysisResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.Info("extract.http.request",
		"req_id", reqID,
		"url", url,
		"file", file.Name,
		"mime", file.MimeType,
		"content_length", body.Len(),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("extract.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return models.AnalysisResult{}, fmt.Errorf("send request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("extract.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("extract.http.read_error", "req_id", reqID, "error", err)
		return models.AnalysisResult{}, fmt.Errorf("read response: %w", err)
	}

	c.log.Info("extract.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return models.AnalysisResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	result, dropped, err := DecodeResult(raw)
	if err != nil {
		c.log.Error("extract.http.decode_error", "req_id", reqID, "error", err, "raw_bytes", len(raw))
		return models.AnalysisResult{}, err
	}
	if len(dropped) > 0 {
		c.log.Warn("extract.http.fields_dropped", "req_id", reqID, "dropped", dropped)
	}
	return result, nil
}

// Health probes the service health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.origin+HealthPath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(file models.SelectedFile) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FormField, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", mimeType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
