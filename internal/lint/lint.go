package lint

import (
	"github.com/sirkon/phlint/internal/phpast"
)

// Lint walks the tree once and returns violations of given rules in document order.
// Violations of different rules for the same node follow the order of rules.
//
// Checks panicking on malformed trees are not recovered: such a panic is a bug of
// the tree producer.
func Lint(tree phpast.Node, rules ...Rule) []Violation {
	var res []Violation
	phpast.Inspect(tree, func(node phpast.Node) bool {
		for _, rule := range rules {
			if !rule.Interested(node.Kind()) {
				continue
			}

			if v, ok := rule.Check(node); ok {
				res = append(res, v)
			}
		}

		return true
	})

	return res
}
