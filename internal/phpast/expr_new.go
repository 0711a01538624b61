package phpast

// New represents object instantiation. Class is a *NameExpr for a literal class
// name, an *AnonymousClass for `new class {}`, anything else for dynamic forms
// such as `new $thing` or `new ($factory())`.
type New struct {
	At    Pos
	Class Node
	Args  []Node
}

func (*New) Kind() Kind { return KindNew }
func (n *New) Pos() Pos { return n.At }
func (*New) isNode()    {}
