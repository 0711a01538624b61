package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/sirkon/phlint/internal/lint"
	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/rules/qualifiednames"
)

// knownRules maps rule codes to their constructors.
type knownRules struct {
	known map[lintrules.Code]func() lint.Rule
}

func newKnownRules() *knownRules {
	return &knownRules{
		known: map[lintrules.Code]func() lint.Rule{
			lintrules.QualifiedNamesOnlyForClassName(): qualifiednames.Rule,
		},
	}
}

// selectRules returns rules in code order: all known ones when enable is empty, only the
// enabled otherwise, minus disabled ones.
func (k *knownRules) selectRules(enable, disable []lintrules.Code) ([]lint.Rule, error) {
	selected := make(map[lintrules.Code]struct{})
	if len(enable) == 0 {
		for code := range k.known {
			selected[code] = struct{}{}
		}
	}
	for _, code := range enable {
		if _, ok := k.known[code]; !ok {
			return nil, fmt.Errorf("rule %s is not implemented", code)
		}
		selected[code] = struct{}{}
	}
	for _, code := range disable {
		delete(selected, code)
	}

	res := make([]lint.Rule, 0, len(selected))
	for _, code := range slices.Sorted(maps.Keys(selected)) {
		res = append(res, k.known[code]())
	}

	return res, nil
}
