package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every environment variable read by Load.
const EnvPrefix = "ESCRIBE"

// ConfigFileEnv names the environment variable that points at an optional YAML config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// Default values applied before any file or environment override.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 81
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 90 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultModelName       = "gemini-2.0-flash"
	DefaultRequestTimeout  = 60 * time.Second
)

// keys lists every configuration key so that environment variables are
// picked up even when no default or file value exists for them.
var keys = []string{
	"server.host",
	"server.port",
	"server.log_level",
	"server.log_format",
	"server.read_timeout",
	"server.write_timeout",
	"server.shutdown_timeout",
	"llm.model_name",
	"llm.request_timeout",
	"llm.max_target_length",
	"llm.prompt_template_path",
}

// Load reads configuration from a .env file (if present), the file named by
// ESCRIBE_CONFIG_FILE (if set), and ESCRIBE_* environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile is Load with an explicit config file path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	// Existing environment variables win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	// The provider credential is also accepted under its conventional name.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env for llm.gemini_api_key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_format", DefaultLogFormat)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.request_timeout", DefaultRequestTimeout)
	v.SetDefault("llm.max_target_length", 0)
	v.SetDefault("llm.prompt_template_path", "")
}
