// Package core decodes laboratory instrument exports into typed records.
//
// This package is the heart of the importer, containing all decoding logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Input shapes
//
// The package understands three input shapes:
//
//   - Simple tabular dissolution results: one header row, one data row per
//     time point, six or more vessel columns.
//   - Simple tabular particle-size results: one header row, one data row per
//     batch, loosely named percentile columns (d10/d50/d90 and friends).
//   - Multi-section "Mastersizer" instrument dumps: tab-delimited UTF-16
//     exports with a transposed metadata block and a measurement block
//     separated by blank rows.
//
// None of the inputs carry a fixed schema. Column names vary by instrument
// software version and locale, decimal separators may be commas, and headers
// may carry Excel artifacts. Columns are resolved through alias tables
// (exact match first, then substring containment — see [ResolveHeader]),
// rows are decoded with locale-aware numeric parsing, and callers receive
// either a full record slice or a *ParseError that pinpoints the offending
// row.
//
// # Failure policy
//
// Simple tabular formats fail fast: the first malformed data row aborts the
// whole parse and its position is reported. The multi-section format instead
// isolates failures per sample: a sample missing a required percentile is
// logged and skipped, and the parse fails only when no sample survives.
// Both behaviors are load-bearing for the upstream error-report dialogs.
//
// # Purity and concurrency
//
// Every parse call is a pure function of its input string plus the static
// alias tables; no mutable state crosses calls, so files may be parsed
// concurrently without coordination. The package performs no I/O: callers
// supply decoded text (see [DecodeBuffer] for the byte-level entry) and
// consume the returned records in memory.
//
// # Error codes
//
// Technical parse errors are mapped to user-friendly messages with support
// codes using [MapError]:
//
//   - HDR001-HDR002: header resolution errors (missing columns, vessels)
//   - ROW001-ROW002: positioned row errors (missing cell, bad number)
//   - SEC001-SEC002: multi-section structure errors
//   - FILE001: empty or near-empty input
package core
