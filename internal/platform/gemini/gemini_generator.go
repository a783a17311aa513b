package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/escribe/internal/config"
	"github.com/phrazzld/escribe/internal/generation"
	"github.com/phrazzld/escribe/internal/platform/logger"
	"github.com/phrazzld/escribe/internal/redact"
	"google.golang.org/genai"
)

// GeminiGenerator implements generation.Generator using the Gemini API.
type GeminiGenerator struct {
	logger  *slog.Logger
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ generation.Generator = (*GeminiGenerator)(nil)

type options struct {
	httpClient *http.Client
	baseURL    string
}

// Option customizes how the underlying genai client is built.
type Option func(*options)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// NewGeminiGenerator creates a GeminiGenerator from cfg.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	opts ...Option,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return &GeminiGenerator{
		logger:  logger.With(slog.String("component", "gemini_generator")),
		client:  client,
		model:   cfg.ModelName,
		timeout: cfg.RequestTimeout,
	}, nil
}

// Generate sends prompt to the model and returns the completion text.
func (g *GeminiGenerator) Generate(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float32,
) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}
	if maxTokens <= 0 {
		return "", generation.ErrInvalidMaxTokens
	}
	if maxTokens > math.MaxInt32 {
		return "", generation.NewExternalServiceError(
			generation.KindProviderValidationFailed,
			fmt.Errorf("max tokens %d exceeds provider limit", maxTokens))
	}

	log := logger.FromContextOrDefault(ctx, g.logger)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	log.DebugContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt),
		"max_tokens", maxTokens)

	temp := temperature
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: int32(maxTokens),
			CandidateCount:  1,
		})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		classified := classifyError(err)
		log.ErrorContext(ctx, "Gemini API call failed",
			"kind", classified.Kind.String(),
			"error", redact.Error(err))
		return "", classified
	}

	text, err := extractText(resp)
	if err != nil {
		log.WarnContext(ctx, "unusable Gemini response", "error", err)
		return "", generation.NewExternalServiceError(generation.KindUnknown, err)
	}

	log.DebugContext(ctx, "Gemini API call succeeded", "text_length", len(text))
	return text, nil
}

// extractText concatenates the non-thought text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: completion blocked", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String()), nil
}
