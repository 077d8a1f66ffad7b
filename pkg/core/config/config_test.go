package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	lcerror "github.com/msto63/lambda/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "720h", 720 * time.Hour, false},
		{"mixed", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.Duration != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, d.Duration)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{Duration: 90 * time.Second}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(text) != "1m30s" {
		t.Errorf("Expected 1m30s, got %s", text)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("Expected MaxInputLength 4096, got %d", cfg.Parser.MaxInputLength)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("Expected prompt %q, got %q", "> ", cfg.REPL.Prompt)
	}
	if !cfg.REPL.ShowAST {
		t.Error("Expected ShowAST to default to true")
	}
	if cfg.General.LogOutput != "stderr" {
		t.Errorf("Expected log output stderr, got %s", cfg.General.LogOutput)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "lambda.toml", `
[general]
log_level = "debug"
log_format = "json"

[parser]
max_input_length = 128

[repl]
prompt = "λ> "
show_tokens = true

[history]
path = "/tmp/lambda-test/history.db"
limit = 20
retention = "720h"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.General.LogLevel)
	}
	if cfg.Parser.MaxInputLength != 128 {
		t.Errorf("Expected MaxInputLength 128, got %d", cfg.Parser.MaxInputLength)
	}
	if cfg.REPL.Prompt != "λ> " {
		t.Errorf("Expected prompt λ>, got %q", cfg.REPL.Prompt)
	}
	if !cfg.REPL.ShowTokens {
		t.Error("Expected ShowTokens true")
	}
	// Keys absent from the file keep their defaults
	if !cfg.REPL.ShowAST {
		t.Error("Expected ShowAST to keep its default")
	}
	if cfg.General.LogOutput != "stderr" {
		t.Errorf("Expected default log output, got %s", cfg.General.LogOutput)
	}
	if cfg.History.Limit != 20 {
		t.Errorf("Expected history limit 20, got %d", cfg.History.Limit)
	}
	if cfg.History.Retention.Duration != 720*time.Hour {
		t.Errorf("Expected retention 720h, got %v", cfg.History.Retention.Duration)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "lambda.yaml", `
general:
  log_level: error
repl:
  show_ast: false
  show_source: true
history:
  enabled: false
  retention: 24h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.General.LogLevel != "error" {
		t.Errorf("Expected log level error, got %s", cfg.General.LogLevel)
	}
	if cfg.REPL.ShowAST {
		t.Error("Expected ShowAST false")
	}
	if !cfg.REPL.ShowSource {
		t.Error("Expected ShowSource true")
	}
	if cfg.History.Enabled {
		t.Error("Expected history disabled")
	}
	if cfg.History.Retention.Duration != 24*time.Hour {
		t.Errorf("Expected retention 24h, got %v", cfg.History.Retention.Duration)
	}
	if cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("Expected default MaxInputLength, got %d", cfg.Parser.MaxInputLength)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAMBDA_TEST_DIR", dir)

	path := writeFile(t, "lambda.toml", `
[history]
path = "${LAMBDA_TEST_DIR}/history.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	expected := filepath.Join(dir, "history.db")
	if cfg.History.Path != expected {
		t.Errorf("Expected %s, got %s", expected, cfg.History.Path)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected lcerror.Code
	}{
		{"Unsupported extension", "lambda.ini", "x = 1", lcerror.CodeConfigError},
		{"Malformed TOML", "lambda.toml", "[general\nlog_level = ", lcerror.CodeConfigError},
		{"Malformed YAML", "lambda.yaml", "general: [", lcerror.CodeConfigError},
		{"Invalid level", "lambda.toml", "[general]\nlog_level = \"loud\"", lcerror.CodeInvalidConfig},
		{"Invalid format", "lambda.toml", "[general]\nlog_format = \"xml\"", lcerror.CodeInvalidConfig},
		{"Negative limit", "lambda.toml", "[history]\nlimit = -1", lcerror.CodeInvalidConfig},
		{"Negative max input", "lambda.yml", "parser:\n  max_input_length: -5", lcerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !lcerror.HasCode(err, tt.expected) {
				t.Errorf("Expected code %s, got %s", tt.expected, lcerror.GetCode(err))
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !lcerror.HasCode(err, lcerror.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[parser]\nmax_input_length = 64")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error: %v", err)
	}
	if cfg.Parser.MaxInputLength != 64 {
		t.Errorf("Expected 64, got %d", cfg.Parser.MaxInputLength)
	}
}
