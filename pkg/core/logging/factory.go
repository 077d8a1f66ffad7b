// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	lclog "github.com/msto63/lambda/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// stderr, stdout, discard or a file path (default: stderr)
	Output string

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
		Output:      "stderr",
	}
}

// NewLogger creates a Foundation logger. The returned Closer releases a log
// file opened for a path output and must be closed by the caller.
func NewLogger(cfg LoggerConfig) (*lclog.Logger, io.Closer, error) {
	output, closer, err := openOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := lclog.ParseFormat(cfg.Format)
	if err != nil {
		format = lclog.FormatConsole
	}

	logger := lclog.NewWithConfig(lclog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: parseLevel(cfg.Level) <= lclog.LevelDebug,
	})
	return logger, closer, nil
}

// NewSimpleLogger creates a console logger on stderr
func NewSimpleLogger(serviceName string) *lclog.Logger {
	return lclog.NewWithConfig(lclog.Config{
		Level:  lclog.LevelInfo,
		Format: lclog.FormatConsole,
		Output: os.Stderr,
		Name:   serviceName,
	})
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "discard":
		return io.Discard, nopCloser{}, nil
	}

	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, lcerror.Wrap(err, "failed to create log directory").
				WithCode(lcerror.CodeConfigError).
				WithDetail("path", output)
		}
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, lcerror.Wrap(err, "failed to open log file").
			WithCode(lcerror.CodeConfigError).
			WithDetail("path", output)
	}
	return f, f, nil
}

// parseLevel converts a string level to lclog.Level, falling back to Info
func parseLevel(level string) lclog.Level {
	l, err := lclog.ParseLevel(level)
	if err != nil {
		return lclog.LevelInfo
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
