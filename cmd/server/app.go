package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/escribe/internal/config"
	"github.com/phrazzld/escribe/internal/generation"
	"github.com/phrazzld/escribe/internal/platform/gemini"
	"github.com/phrazzld/escribe/internal/platform/logger"
	"github.com/phrazzld/escribe/internal/service"
)

// application holds the shared dependencies built once at startup.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	composer service.ComposeService
}

// newApplication loads configuration, sets up logging and wires the Gemini
// generator into the compose service.
func newApplication(ctx context.Context, configPath string) (*application, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"request_timeout", cfg.LLM.RequestTimeout.String(),
		"max_target_length", cfg.LLM.MaxTargetLength,
		"custom_prompt_template", cfg.LLM.PromptTemplatePath != "")

	generator, err := gemini.NewGeminiGenerator(ctx, log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	return newApplicationWith(cfg, log, generator)
}

// newApplicationWith builds an application around an existing generator.
func newApplicationWith(
	cfg *config.Config,
	log *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	composer, err := service.NewComposeService(generator, log, service.Options{
		MaxTargetLength:    cfg.LLM.MaxTargetLength,
		PromptTemplatePath: cfg.LLM.PromptTemplatePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize compose service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   log,
		composer: composer,
	}, nil
}
