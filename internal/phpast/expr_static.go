package phpast

// ClassConstFetch represents class constant access.
//
//	Thing\Things::SOME_CONST // Class: <NameExpr>(Thing\Things), Const: "SOME_CONST"
//	Thing\Things::class      // Class: <NameExpr>(Thing\Things), Const: "class"
//	$obj::CONST              // Class: <Variable>(obj), Const: "CONST"
type ClassConstFetch struct {
	At    Pos
	Class Node
	Const string
}

// StaticPropertyFetch represents static property access.
//
//	Thing\Things::$thing // Class: <NameExpr>(Thing\Things), Prop: "thing"
type StaticPropertyFetch struct {
	At    Pos
	Class Node
	Prop  string
}

// StaticCall represents static method call.
//
//	Thing\Things::get($a) // Class: <NameExpr>(Thing\Things), Method: "get", Args: [<Variable>(a)]
type StaticCall struct {
	At     Pos
	Class  Node
	Method string
	Args   []Node
}

func (*ClassConstFetch) Kind() Kind     { return KindClassConstFetch }
func (*StaticPropertyFetch) Kind() Kind { return KindStaticPropertyFetch }
func (*StaticCall) Kind() Kind          { return KindStaticCall }
func (n *ClassConstFetch) Pos() Pos     { return n.At }
func (n *StaticPropertyFetch) Pos() Pos { return n.At }
func (n *StaticCall) Pos() Pos          { return n.At }
func (*ClassConstFetch) isNode()        {}
func (*StaticPropertyFetch) isNode()    {}
func (*StaticCall) isNode()             {}
