package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the host:port pair the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LLMConfig contains all settings for the text-completion provider.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// RequestTimeout bounds a single provider call.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`

	// MaxTargetLength caps the requested word count. Zero means uncapped.
	MaxTargetLength int `mapstructure:"max_target_length" validate:"gte=0"`

	// PromptTemplatePath optionally replaces the embedded prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
}
