// Package error provides the structured error type shared by all quickx packages.
//
// Package: error
// Title: quickx Error Handling
// Description: Structured errors carrying a code, a severity, free-form details,
//              the failing operation and a captured stack trace. Two error kinds
//              are exposed as sentinels so callers can branch with errors.Is:
//              ErrInvalidArgument for misuse of an API (absent reference, bad
//              numeric precondition) and ErrNotFound for data-shape problems
//              such as a missing delimiter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Error kinds, trimmed platform codes
//
// Usage:
//   import mdwerror "github.com/msto63/quickx/foundation/core/error"
//
//   err := mdwerror.New("page size must be positive").
//     WithCode(mdwerror.CodeValueOutOfRange).
//     WithDetail("page_size", 0).
//     WithOperation("seqx.Page")
//
//   if errors.Is(err, mdwerror.ErrInvalidArgument) {
//     // caller misuse
//   }
package error
