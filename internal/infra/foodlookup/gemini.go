// Package foodlookup estimates nutrition through a generative language model.
package foodlookup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	defaultTimeout     = 30 * time.Second
	geminiAPIVersion   = "v1beta"
)

// GeminiClient answers food lookups with Gemini generateContent calls.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiClient creates a client for the Gemini API. An empty model or
// timeout falls back to the defaults and an empty baseURL to the public
// endpoint.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: geminiAPIVersion,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

var _ service.FoodLookupService = (*GeminiClient)(nil)

// generate sends parts as one user turn and decodes the JSON answer into out.
func (c *GeminiClient) generate(ctx context.Context, operation string, parts []*genai.Part, schema *genai.Schema, out any) error {
	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.2),
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		c.logger.WarnContext(ctx, "Food lookup request failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)

		return domainerrors.ErrFoodLookupFailed.WrapMessage(operation)
	}

	text := answerText(resp)
	if text == "" {
		return domainerrors.ErrFoodLookupFailed.WrapMessage(operation + ": empty response")
	}

	text = cleanModelJSON(text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		c.logger.WarnContext(ctx, "Food lookup answer is not valid JSON",
			slog.String("operation", operation),
			slog.String("answer", text),
		)

		return domainerrors.ErrFoodLookupFailed.WrapMessage(operation + ": malformed answer")
	}

	c.logger.DebugContext(ctx, "Food lookup completed",
		slog.String("operation", operation),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// answerText joins the text parts of the first candidate.
func answerText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(sb.String())
}

// cleanModelJSON strips markdown fences and anything around the outermost
// JSON object.
func cleanModelJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	return text
}
