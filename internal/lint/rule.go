package lint

import (
	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/phpast"
)

// Check decides on a single node. It returns the node to blame or nil when there is
// no violation. The blamed node is either the checked one or a part of it that is
// not walked separately, like the parent name of a class declaration. An empty
// message means the rule description is used.
type Check func(node phpast.Node) (blame phpast.Node, message string)

// Rule is a set of checks keyed by the node kind they are interested in.
type Rule struct {
	Code     lintrules.Code
	Handlers map[phpast.Kind]Check
}

// Interested tells if the rule has a check for nodes of the given kind.
func (r Rule) Interested(kind phpast.Kind) bool {
	_, ok := r.Handlers[kind]
	return ok
}

// Check runs the rule against the node. Nodes of kinds the rule has no check for
// are never violations.
func (r Rule) Check(node phpast.Node) (Violation, bool) {
	check, ok := r.Handlers[node.Kind()]
	if !ok {
		return Violation{}, false
	}

	blame, msg := check(node)
	if blame == nil {
		return Violation{}, false
	}

	if msg == "" {
		msg = r.Code.Description()
	}

	return Violation{
		Rule:    r.Code,
		Node:    blame,
		Message: msg,
	}, true
}
