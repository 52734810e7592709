package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name), "Failed to unset environment variable %s", name)
		}
	}
}

// TestLoadDefaults verifies that Load falls back to the documented defaults
// when neither environment variables nor a config file are present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"TIMESLOT_SERVER_PORT":               "",
		"TIMESLOT_SERVER_LOG_LEVEL":          "",
		"TIMESLOT_TIMESLOT_DEFAULT_LANGUAGE": "",
		"TIMESLOT_TIMESLOT_VALIDATE_INPUT":   "",
		"TIMESLOT_TIMESLOT_MAX_CHILDREN":     "",
	})

	cfg, err := load(t.TempDir())

	require.NoError(t, err, "load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "en", cfg.Timeslot.DefaultLanguage)
	assert.True(t, cfg.Timeslot.ValidateInput)
	assert.Equal(t, 4000, cfg.Timeslot.MaxChildren)
}

// TestLoadFromEnv verifies that environment variables are read.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"TIMESLOT_SERVER_PORT":               "9090",
		"TIMESLOT_SERVER_LOG_LEVEL":          "debug",
		"TIMESLOT_TIMESLOT_DEFAULT_LANGUAGE": "fr",
		"TIMESLOT_TIMESLOT_VALIDATE_INPUT":   "false",
		"TIMESLOT_TIMESLOT_MAX_CHILDREN":     "100",
	})

	cfg, err := load(t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "fr", cfg.Timeslot.DefaultLanguage)
	assert.False(t, cfg.Timeslot.ValidateInput)
	assert.Equal(t, 100, cfg.Timeslot.MaxChildren)
}

// TestLoadFromFile verifies that config.yaml is read and that environment
// variables win over it.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 7070
  log_level: warn
timeslot:
  default_language: es
  max_children: 50
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	setupEnv(t, map[string]string{
		"TIMESLOT_SERVER_PORT":               "",
		"TIMESLOT_SERVER_LOG_LEVEL":          "error",
		"TIMESLOT_TIMESLOT_DEFAULT_LANGUAGE": "",
		"TIMESLOT_TIMESLOT_VALIDATE_INPUT":   "",
		"TIMESLOT_TIMESLOT_MAX_CHILDREN":     "",
	})

	cfg, err := load(dir)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the file")
	assert.Equal(t, "es", cfg.Timeslot.DefaultLanguage)
	assert.True(t, cfg.Timeslot.ValidateInput, "Unset keys keep their defaults")
	assert.Equal(t, 50, cfg.Timeslot.MaxChildren)
}

// TestLoadMalformedFile verifies that a config file that cannot be parsed is
// reported instead of silently ignored.
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	cfg, err := load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"TIMESLOT_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"TIMESLOT_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Unsupported default language",
			envVars: map[string]string{"TIMESLOT_TIMESLOT_DEFAULT_LANGUAGE": "de"},
		},
		{
			name:    "Non-positive children cap",
			envVars: map[string]string{"TIMESLOT_TIMESLOT_MAX_CHILDREN": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := load(t.TempDir())

			require.Error(t, err, "load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed", "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
