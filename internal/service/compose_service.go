package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/escribe/internal/domain"
	"github.com/phrazzld/escribe/internal/generation"
	"github.com/phrazzld/escribe/internal/platform/logger"
	"github.com/phrazzld/escribe/internal/platform/metrics"
	"github.com/phrazzld/escribe/internal/redact"
)

// GenerationResult is what a successful submission produces.
type GenerationResult struct {
	// Text is the provider's completion with surrounding whitespace removed.
	Text string

	Prompt    string
	MaxTokens int
}

// ComposeService handles form submissions.
type ComposeService interface {
	// HandleSubmission validates fields, builds the prompt and requests a completion.
	//
	// Validation failures are returned as *domain.MissingFieldError or
	// *domain.InvalidFormatError and never reach the generator. Generator
	// failures are returned wrapped, so errors.As still finds
	// *generation.ExternalServiceError.
	HandleSubmission(ctx context.Context, fields domain.Fields) (*GenerationResult, error)
}

// Options tunes a ComposeService.
type Options struct {
	// MaxTargetLength caps longitud. Zero means uncapped.
	MaxTargetLength int

	// PromptTemplatePath replaces the embedded prompt template when set.
	PromptTemplatePath string
}

type composeServiceImpl struct {
	generator       generation.Generator
	prompts         *PromptBuilder
	logger          *slog.Logger
	maxTargetLength int
}

// NewComposeService creates a ComposeService backed by generator.
func NewComposeService(
	generator generation.Generator,
	logger *slog.Logger,
	opts Options,
) (ComposeService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if opts.MaxTargetLength < 0 {
		return nil, fmt.Errorf("max target length cannot be negative: %d", opts.MaxTargetLength)
	}

	prompts, err := NewPromptBuilder(opts.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	return &composeServiceImpl{
		generator:       generator,
		prompts:         prompts,
		logger:          logger.With(slog.String("component", "compose_service")),
		maxTargetLength: opts.MaxTargetLength,
	}, nil
}

// HandleSubmission implements ComposeService.
func (s *composeServiceImpl) HandleSubmission(
	ctx context.Context,
	fields domain.Fields,
) (*GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := domain.ParseGenerationRequest(fields)
	if err != nil {
		log.DebugContext(ctx, "rejected submission", "error", err)
		metrics.CountGeneration(metrics.OutcomeValidationError)
		return nil, err
	}

	if s.maxTargetLength > 0 && req.TargetLength > s.maxTargetLength {
		err := &domain.InvalidFormatError{
			Field:  domain.FieldTargetLength,
			Value:  strconv.Itoa(req.TargetLength),
			Reason: fmt.Sprintf("exceeds maximum of %d words", s.maxTargetLength),
		}
		log.DebugContext(ctx, "rejected submission", "error", err)
		metrics.CountGeneration(metrics.OutcomeValidationError)
		return nil, err
	}

	log = log.With(slog.String("request_id", req.ID.String()))

	prompt, err := s.prompts.Build(req)
	if err != nil {
		log.ErrorContext(ctx, "failed to build prompt", "error", err)
		return nil, err
	}
	maxTokens := TokenBudget(req.TargetLength)

	log.InfoContext(ctx, "requesting completion",
		"content_type", req.ContentType,
		"topic_length", len(req.Topic),
		"target_length", req.TargetLength,
		"max_tokens", maxTokens)

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt, maxTokens, DefaultTemperature)
	elapsed := time.Since(start)
	if err != nil {
		outcome := generationOutcome(err)
		metrics.ObserveProviderCall(outcome, elapsed, maxTokens)
		metrics.CountGeneration(outcome)
		log.WarnContext(ctx, "completion failed",
			"outcome", outcome,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("failed to generate text: %w", err)
	}

	metrics.ObserveProviderCall(metrics.OutcomeSuccess, elapsed, maxTokens)
	metrics.CountGeneration(metrics.OutcomeSuccess)

	text = strings.TrimSpace(text)
	log.InfoContext(ctx, "completion succeeded",
		"elapsed_ms", elapsed.Milliseconds(),
		"result_length", len(text))

	return &GenerationResult{
		Text:      text,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}, nil
}

func generationOutcome(err error) string {
	if kind, ok := generation.KindOf(err); ok {
		return kind.String()
	}
	return generation.KindUnknown.String()
}
