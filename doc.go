// Package gagyebu provides the record validation, storage, and
// consistency-maintenance engine of a single-user, file-backed household
// ledger. It is designed to be local-first and auditable: every user owns
// exactly two plain-text files that remain human-readable and
// version-controllable.
//
// The core functionalities include:
//   - Ledger Management: recording income and expense entries, keeping the
//     running balance non-negative at every committed state (the solvency
//     invariant), and rewriting the ledger file wholesale on every mutation.
//   - Category Registry: a bidirectional mapping between human-readable
//     standard names (plus synonyms) and stable internal codes (C1, C2, ...),
//     persisted per user and kept consistent with the ledger through
//     deletion cascades.
//   - Settings Persistence: a single per-user settings file multiplexing the
//     category registry and the monthly budget table.
//   - Query Engine: resolving a free-text search term against the
//     date/category/payment space.
//   - Edit Engine: field-by-field mutation of a record through a working
//     copy that re-validates solvency before anything is committed.
//
// This package serves as the foundational logic for the `gg` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package gagyebu
