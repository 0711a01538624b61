// Package lintrules defines the canonical rule codes (PHL-series) enforced by phlint.
//
// Every rule has a stable numeric code and a name, so findings can be filtered in
// configuration files and reported consistently.
//
// # Structure
//
// Rule codes follow the format “PHL<NNN>: <Name>” and are grouped by area:
//
//	001–099  Naming and import discipline
//
// Example:
//
//	lintrules.PHL001QualifiedNamesOnlyForClassName.String() → "PHL001: QualifiedNamesOnlyForClassName"
//
// # Notes
//
//   - Codes are stable; never renumber existing ones.
//   - Configuration refers to a rule either by code ("PHL001") or by name
//     ("QualifiedNamesOnlyForClassName"), matched case-insensitively.
package lintrules
