package main

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Some directories are never worth linting: dependencies and VCS metadata.
// Users can add their own names or glob patterns on top of them.
type knownExcludes struct {
	names    map[string]struct{}
	patterns []string
}

func newKnownExcludes(custom []string) *knownExcludes {
	predefined := map[string]struct{}{
		"vendor":       {},
		"node_modules": {},
		".git":         {},
		".idea":        {},
	}

	names := maps.Clone(predefined)
	var patterns []string
	for _, c := range custom {
		if strings.ContainsAny(c, "*?[") {
			patterns = append(patterns, c)
			continue
		}
		names[c] = struct{}{}
	}

	return &knownExcludes{names: names, patterns: patterns}
}

// excluded checks a base name of a file or directory.
func (e *knownExcludes) excluded(base string) bool {
	if _, ok := e.names[base]; ok {
		return true
	}

	for _, p := range e.patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}

	return false
}

type knownExtensions struct {
	known []string
}

func newKnownExtensions(custom []string) *knownExtensions {
	known := []string{".php"}
	for _, c := range custom {
		c = strings.ToLower(c)
		if !slices.Contains(known, c) {
			known = append(known, c)
		}
	}

	return &knownExtensions{known: known}
}

func (e *knownExtensions) matches(path string) bool {
	return slices.Contains(e.known, strings.ToLower(filepath.Ext(path)))
}
