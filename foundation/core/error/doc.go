// Package error provides the structured error type used across timetext.
//
// Package: error
// Title: timetext Error Handling
// Description: Structured errors with a code, a severity, free-form details and
//              the operation that produced them. The timex package keeps its
//              public API fail-soft and uses these errors internally so that
//              callers who want the reason (TryFormatInstant, EnsureDir,
//              config loading) can inspect it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by timex, log and config;
//                      added CodeIO for file system failures
//
// Usage:
//   import mdwerror "github.com/msto63/timetext/foundation/core/error"
//
//   err := mdwerror.New("illegal pattern character 'Q'").
//     WithCode(mdwerror.CodeInvalidFormat).
//     WithOperation("timex.TryFormatInstant").
//     WithDetail("pattern", pattern)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//     // treat as unformattable
//   }
package error
