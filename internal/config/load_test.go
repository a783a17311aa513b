package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// Empty values are treated as unset by the loader.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	// Keep ambient credentials from leaking into assertions.
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ESCRIBE_LLM_GEMINI_API_KEY", "")
	t.Setenv(ConfigFileEnv, "")
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the required credential is provided.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"ESCRIBE_LLM_GEMINI_API_KEY": "test-api-key",
		"ESCRIBE_SERVER_PORT":        "",
		"ESCRIBE_SERVER_LOG_LEVEL":   "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 81, cfg.Server.Port, "Default server port should be 81")
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "Default host should bind all interfaces")
	assert.Equal(t, "0.0.0.0:81", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, DefaultModelName, cfg.LLM.ModelName)
	assert.Equal(t, 60*time.Second, cfg.LLM.RequestTimeout)
	assert.Zero(t, cfg.LLM.MaxTargetLength, "Target length should be uncapped by default")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"ESCRIBE_SERVER_HOST":           "127.0.0.1",
		"ESCRIBE_SERVER_PORT":           "9090",
		"ESCRIBE_SERVER_LOG_LEVEL":      "debug",
		"ESCRIBE_SERVER_LOG_FORMAT":     "text",
		"ESCRIBE_LLM_GEMINI_API_KEY":    "test-api-key",
		"ESCRIBE_LLM_MODEL_NAME":        "gemini-2.5-pro",
		"ESCRIBE_LLM_REQUEST_TIMEOUT":   "5s",
		"ESCRIBE_LLM_MAX_TARGET_LENGTH": "2000",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 5*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 2000, cfg.LLM.MaxTargetLength)
}

// TestLoadConventionalAPIKey verifies the credential is accepted under GEMINI_API_KEY.
func TestLoadConventionalAPIKey(t *testing.T) {
	setupEnv(t, nil)
	t.Setenv("GEMINI_API_KEY", "plain-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "plain-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFromFile verifies that a YAML file is read and that the environment still wins.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escribe.yaml")
	content := []byte(`
server:
  port: 8081
  log_level: warn
llm:
  gemini_api_key: file-key
  model_name: file-model
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{
		"ESCRIBE_LLM_MODEL_NAME": "env-model",
	})

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "file-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "env-model", cfg.LLM.ModelName, "Environment should override file values")
}

// TestLoadMissingFile verifies that an explicit but absent config file is an error.
func TestLoadMissingFile(t *testing.T) {
	setupEnv(t, map[string]string{"ESCRIBE_LLM_GEMINI_API_KEY": "test-api-key"})

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"ESCRIBE_SERVER_PORT": "9090",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"ESCRIBE_SERVER_PORT":        "999999",
				"ESCRIBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"ESCRIBE_SERVER_LOG_LEVEL":   "invalid-level",
				"ESCRIBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid log format",
			envVars: map[string]string{
				"ESCRIBE_SERVER_LOG_FORMAT":  "xml",
				"ESCRIBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Negative target length cap",
			envVars: map[string]string{
				"ESCRIBE_LLM_MAX_TARGET_LENGTH": "-1",
				"ESCRIBE_LLM_GEMINI_API_KEY":    "test-api-key",
			},
		},
		{
			name: "Prompt template path does not exist",
			envVars: map[string]string{
				"ESCRIBE_LLM_PROMPT_TEMPLATE_PATH": "/nonexistent/prompt.tmpl",
				"ESCRIBE_LLM_GEMINI_API_KEY":       "test-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
