// Package diag defines the findings produced by consistency rules.
//
// # Model
//
//   - Diagnostic is a (rule, subject, optional message) triple. The subject is
//     either a locale key or a composed usage descriptor, depending on the rule.
//   - Collector groups diagnostics by rule name. One collector is created per
//     run and handed to every rule in turn; there is no shared global state.
//
// # Scope
//
// Package diag does not perform any formatting beyond the stable golden form
// used by tests and snapshot comparisons. Rendering for users lives in
// internal/diagfmt.
package diag
