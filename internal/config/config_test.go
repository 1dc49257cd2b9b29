package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "json"},
		{"KnowledgePDF", cfg.KnowledgePDF, "pop2016.pdf"},
		{"LLMModel", cfg.LLMModel, "gemini-2.0-flash"},
		{"Temperature", cfg.Temperature, 0.2},
		{"CacheTTL", cfg.CacheTTL, 3600},
		{"RecordSeconds", cfg.RecordSeconds, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	originalPort := os.Getenv("PORT")
	originalModel := os.Getenv("LLM_MODEL")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("LLM_MODEL", originalModel)
	}()

	os.Setenv("PORT", "9090")
	os.Setenv("LLM_MODEL", "gemini-2.0-pro")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LLMModel != "gemini-2.0-pro" {
		t.Errorf("expected model 'gemini-2.0-pro', got %s", cfg.LLMModel)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when GOOGLE_API_KEY is empty")
	}

	cfg.GoogleAPIKey = "test-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
