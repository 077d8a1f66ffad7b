// Package log provides structured logging for the lambda front end and tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output. Loggers are immutable: WithField, WithName and friends
//              return a configured copy. Structured errors from the core error
//              package are logged at a level derived from their severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with structured logging and error integration
//
// Usage:
//   import lclog "github.com/msto63/lambda/foundation/core/log"
//
//   logger := lclog.NewWithConfig(lclog.Config{
//     Level:  lclog.LevelDebug,
//     Format: lclog.FormatConsole,
//     Output: os.Stderr,
//   }).WithField("component", "repl")
//
//   logger.Debug("input parsed", lclog.Fields{"mode": "expression"})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("parse")
//   // ... parse the input
//   timer.Stop()
package log
