// Package report collects findings of a linter run and renders them.
package report
