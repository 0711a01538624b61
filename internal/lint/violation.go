package lint

import (
	"fmt"

	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/phpast"
)

// Violation is a single finding. Node is the node blamed for it and must be
// treated as read-only.
type Violation struct {
	Rule    lintrules.Code
	Node    phpast.Node
	Message string
}

// Line returns the line of the offending node.
func (v Violation) Line() int {
	return v.Node.Pos().Line
}

func (v Violation) String() string {
	return fmt.Sprintf("%d: %s: %s", v.Line(), v.Rule, v.Message)
}
