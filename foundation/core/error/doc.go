// Package error provides structured error handling for the lambda front end.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a code, a severity, an optional operation name and
//              key/value details. Syntax errors produced by the parser are
//              wrapped with CodeSyntax so tooling can tell malformed input apart
//              from configuration or storage failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import lcerror "github.com/msto63/lambda/foundation/core/error"
//
//   err := lcerror.Wrap(parseErr, "failed to parse input").
//     WithCode(lcerror.CodeSyntax).
//     WithDetail("line", 1)
//
//   if lcerror.HasCode(err, lcerror.CodeSyntax) {
//     // report to the user, not to the log
//   }
package error
