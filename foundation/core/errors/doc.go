// Package errors builds the structured errors raised by quickx packages.
//
// Package: errors
// Title: Standardized Module Errors
// Description: A fluent ErrorBuilder plus per-module constructors so every
//              package raises errors with the same shape: a code that maps onto
//              an error kind, the module and operation in the details, and a
//              message naming the offending argument.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Constructors for timex, datex, stringx, seqx, mathx and log
//
// Usage:
//   err := errors.NewErrorBuilder(errors.ModuleSeqx).
//     Operation("Batch").
//     Code(mdwerror.CodeValueOutOfRange).
//     Messagef("batch size must be positive, got %d", size).
//     Detail("size", size).
//     Build()
//
//   // or the shorthand
//   err := errors.SeqxOutOfRange("Batch", "size", size, "> 0")
package errors
