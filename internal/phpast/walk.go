package phpast

import "fmt"

// Inspect traverses the tree in depth-first document order calling f for every node
// before its children. Children are skipped when f returns false. Nil nodes are
// never passed to f.
func Inspect(node Node, f func(Node) bool) {
	if node == nil {
		return
	}

	if !f(node) {
		return
	}

	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns direct children of the node in source order. It panics with
// [MalformedError] on node types it does not know.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *File:
		return n.Stmts
	case *Group:
		return n.Children
	case *Func:
		return n.Body
	case *Class:
		return n.Body
	case *AnonymousClass:
		return join(n.Args, n.Body)
	case *ClassConstFetch:
		return join(one(n.Class))
	case *StaticPropertyFetch:
		return join(one(n.Class))
	case *StaticCall:
		return join(one(n.Class), n.Args)
	case *New:
		return join(one(n.Class), n.Args)
	case *TraitUse, *NameExpr, *Variable, *Literal:
		return nil
	default:
		panic(Malformed(node, fmt.Sprintf("no children layout for %T", node)))
	}
}

func one(n Node) []Node {
	if n == nil {
		return nil
	}

	return []Node{n}
}

func join(parts ...[]Node) []Node {
	var res []Node
	for _, p := range parts {
		res = append(res, p...)
	}

	return res
}
