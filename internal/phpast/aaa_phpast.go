package phpast

import "fmt"

// Node is implemented by all syntax tree node types.
type Node interface {
	Kind() Kind
	Pos() Pos
	isNode()
}

// Pos locates a node in its source file.
type Pos struct {
	// Line is 1-based line of the first byte of the node.
	Line int

	// Offset and End are byte offsets of the node, End is exclusive.
	Offset int
	End    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:[%d,%d)", p.Line, p.Offset, p.End)
}

// Kind tags node types.
type Kind int

const (
	KindInvalid Kind = iota
	KindFile
	KindGroup
	KindFunc
	KindNameExpr
	KindVariable
	KindLiteral
	KindClassConstFetch
	KindStaticPropertyFetch
	KindStaticCall
	KindNew
	KindClass
	KindAnonymousClass
	KindTraitUse
)

var kindNames = map[Kind]string{
	KindFile:                "file",
	KindGroup:               "group",
	KindFunc:                "func",
	KindNameExpr:            "name",
	KindVariable:            "variable",
	KindLiteral:             "literal",
	KindClassConstFetch:     "class-const-fetch",
	KindStaticPropertyFetch: "static-property-fetch",
	KindStaticCall:          "static-call",
	KindNew:                 "new",
	KindClass:               "class",
	KindAnonymousClass:      "anonymous-class",
	KindTraitUse:            "trait-use",
}

func (k Kind) String() string {
	v, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}
