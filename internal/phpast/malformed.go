package phpast

import "fmt"

// MalformedError is a panic value for trees that break the parser contract, like
// a class constant access without the constant name. Such trees are bugs of the
// producer and must not be turned into lint findings.
type MalformedError struct {
	Node   Node
	Reason string
}

// Malformed makes a MalformedError for the given node.
func Malformed(node Node, reason string) *MalformedError {
	return &MalformedError{Node: node, Reason: reason}
}

func (e *MalformedError) Error() string {
	if e.Node == nil {
		return "malformed tree: " + e.Reason
	}

	return fmt.Sprintf("malformed %s node at line %d: %s", e.Node.Kind(), e.Node.Pos().Line, e.Reason)
}
