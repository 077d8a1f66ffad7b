// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	lclog "github.com/msto63/lambda/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "LAMBDA_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	// stderr, stdout, discard or a file path
	LogOutput string `toml:"log_output" yaml:"log_output"`
}

// ParserConfig holds front end limits
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
	// Parse results memoized by the REPL; zero disables the cache
	CacheSize int `toml:"cache_size" yaml:"cache_size"`
}

// REPLConfig holds the initial REPL display options
type REPLConfig struct {
	Prompt     string `toml:"prompt" yaml:"prompt"`
	ShowAST    bool   `toml:"show_ast" yaml:"show_ast"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
	ShowSource bool   `toml:"show_source" yaml:"show_source"`
	ShowType   bool   `toml:"show_type" yaml:"show_type"`
	Color      bool   `toml:"color" yaml:"color"`
}

// HistoryConfig holds REPL history storage settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	Limit   int    `toml:"limit" yaml:"limit"`
	// Entries older than this are pruned on startup; zero keeps everything
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "console",
			LogOutput: "stderr",
		},
		Parser: ParserConfig{
			MaxInputLength: 4096,
			CacheSize:      256,
		},
		REPL: REPLConfig{
			Prompt:  "> ",
			ShowAST: true,
			Color:   true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(defaultDataDir(), "history.db"),
			Limit:   100,
		},
	}
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file.
// Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, lcerror.Newf("config file not found: %s", path).
			WithCode(lcerror.CodeNotFound).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lcerror.Wrap(err, "failed to read config").
			WithCode(lcerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}

	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by LAMBDA_CONFIG, else the first existing
// default location. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, _ := os.UserHomeDir()
	defaultPaths := []string{
		"./configs/lambda.toml",
		"./lambda.toml",
		filepath.Join(home, ".config", "lambda", "config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.expandPaths()
	return cfg, nil
}

// Validate rejects settings the application cannot work with
func (c *Config) Validate() error {
	if _, err := lclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := lclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if strings.TrimSpace(c.General.LogOutput) == "" {
		return invalid("general.log_output", c.General.LogOutput)
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength)
	}
	if c.Parser.CacheSize < 0 {
		return invalid("parser.cache_size", c.Parser.CacheSize)
	}
	if c.History.Limit < 0 {
		return invalid("history.limit", c.History.Limit)
	}
	if c.History.Retention.Duration < 0 {
		return invalid("history.retention", c.History.Retention)
	}
	if c.History.Enabled && c.History.Path == "" {
		return invalid("history.path", c.History.Path)
	}
	return nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	format := detectFormat(path)
	switch format {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return lcerror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(lcerror.CodeConfigError).
			WithDetail("path", path)
	}

	if err != nil {
		return lcerror.Wrap(err, "failed to parse config").
			WithCode(lcerror.CodeConfigError).
			WithDetail("path", path).
			WithDetail("format", format)
	}
	return nil
}

// detectFormat chooses the decoder from the file extension
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// expandPaths expands environment variables and a leading ~ in file paths
func (c *Config) expandPaths() {
	c.History.Path = expandPath(c.History.Path)
	switch c.General.LogOutput {
	case "stderr", "stdout", "discard":
	default:
		c.General.LogOutput = expandPath(c.General.LogOutput)
	}
}

func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lambda")
	}
	return ".lambda"
}

func invalid(key string, value interface{}) error {
	return lcerror.Newf("invalid value for %s: %v", key, value).
		WithCode(lcerror.CodeInvalidConfig).
		WithDetail("key", key)
}
