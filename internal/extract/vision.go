package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

const visionPrompt = `You analyze social media content captured as an image.
Transcribe all readable text, judge the overall sentiment and suggest improvements for engagement.
Return ONLY a JSON object of the form:
{"text": "<transcribed text>", "sentiment": "positive|neutral|negative", "suggestions": ["...", "..."]}
Omit a field when it cannot be determined. Never output null.`

// ChatCompleter is the subset of the OpenAI client used here.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// VisionClient analyzes images with an OpenAI-compatible vision model and
// returns the same result shape as the extraction service.
type VisionClient struct {
	client ChatCompleter
	model  string
	log    *slog.Logger
}

func NewVisionClient(apiKey, baseURL, model string, logger *slog.Logger) *VisionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewVisionClientWith(openai.NewClientWithConfig(cfg), model, logger)
}

func NewVisionClientWith(client ChatCompleter, model string, logger *slog.Logger) *VisionClient {
	if logger == nil {
		logger = slog.Default()
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &VisionClient{client: client, model: model, log: logger}
}

func (v *VisionClient) Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	if !strings.HasPrefix(file.MimeType, "image/") {
		v.log.Warn("extract.vision.unsupported", "req_id", reqID, "file", file.Name, "mime", file.MimeType)
		return models.AnalysisResult{}, fmt.Errorf("%w: %s (vision backend accepts images only)", ErrUnsupportedFile, file.Name)
	}

	src, err := file.Open()
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("open file: %w", err)
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("read file: %w", err)
	}

	dataURL := "data:" + file.MimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	req := openai.ChatCompletionRequest{
		Model: v.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: visionPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: "File: " + file.Name},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto},
					},
				},
			},
		},
	}

	v.log.Info("extract.vision.request", "req_id", reqID, "model", v.model, "file", file.Name, "bytes", len(data))

	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		v.log.Error("extract.vision.api_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return models.AnalysisResult{}, fmt.Errorf("vision request: %w", err)
	}
	if len(resp.Choices) == 0 {
		v.log.Error("extract.vision.no_choices", "req_id", reqID)
		return models.AnalysisResult{}, fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimSuffix(strings.TrimPrefix(content, "```json"), "```")

	result, dropped, err := DecodeResult([]byte(strings.TrimSpace(content)))
	if err != nil {
		v.log.Error("extract.vision.decode_error", "req_id", reqID, "error", err)
		return models.AnalysisResult{}, err
	}
	if len(dropped) > 0 {
		v.log.Warn("extract.vision.fields_dropped", "req_id", reqID, "dropped", dropped)
	}

	sourceType := "IMAGE"
	result.SourceType = &sourceType
	elapsed := time.Since(start).Milliseconds()
	result.DurationMs = &elapsed

	v.log.Info("extract.vision.ok", "req_id", reqID, "elapsed_ms", elapsed)
	return result, nil
}
