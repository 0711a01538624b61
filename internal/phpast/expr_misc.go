package phpast

// NameExpr is an identifier in expression position: a class name before `::`,
// after `new`, a constant or function name.
type NameExpr struct {
	At   Pos
	Name *Name
}

// Variable is `$name`. Name is empty for variable-variables like `$$x`.
type Variable struct {
	At   Pos
	Name string
}

// Literal is a scalar literal kept verbatim.
type Literal struct {
	At    Pos
	Value string
}

func (*NameExpr) Kind() Kind { return KindNameExpr }
func (*Variable) Kind() Kind { return KindVariable }
func (*Literal) Kind() Kind  { return KindLiteral }
func (n *NameExpr) Pos() Pos { return n.At }
func (n *Variable) Pos() Pos { return n.At }
func (n *Literal) Pos() Pos  { return n.At }
func (*NameExpr) isNode()    {}
func (*Variable) isNode()    {}
func (*Literal) isNode()     {}
