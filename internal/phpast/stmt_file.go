package phpast

// File is the root of a tree.
type File struct {
	At    Pos
	Path  string
	Stmts []Node
}

// Group stands for any construct that is not modelled by its own node type:
// statements, calls, operators, argument lists and so on. Label keeps the
// parser's name of the construct for debugging.
type Group struct {
	At       Pos
	Label    string
	Children []Node
}

func (*File) Kind() Kind  { return KindFile }
func (*Group) Kind() Kind { return KindGroup }
func (n *File) Pos() Pos  { return n.At }
func (n *Group) Pos() Pos { return n.At }
func (*File) isNode()     {}
func (*Group) isNode()    {}
