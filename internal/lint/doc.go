// Package lint dispatches syntax tree nodes to rules and collects violations.
//
// A [Rule] is a plain value: a rule code plus a table of checks keyed by node
// kind. [Lint] walks a tree once, in document order, and hands every node to the
// checks registered for its kind. Violations are accumulated by Lint itself and
// never by rules, so rules can be shared between goroutines linting different
// files.
package lint
