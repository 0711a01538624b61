package phpast

// Class is a named class declaration.
//
//	class ImportFacades extends \Tighten\AbstractLinter implements Countable { … }
//	// Name: "ImportFacades", Extends: \Tighten\AbstractLinter, Implements: [Countable]
type Class struct {
	At         Pos
	Name       string
	Extends    *NameExpr // nil when there is no extends clause
	Implements []*Name
	Body       []Node
}

// AnonymousClass is the class part of `new class (…) extends X { … }`.
type AnonymousClass struct {
	At         Pos
	Args       []Node
	Extends    *NameExpr
	Implements []*Name
	Body       []Node
}

// TraitUse is a trait inclusion clause inside a class body.
//
//	use Tighten\AbstractLinter, Countable;
//	// Traits: [Tighten\AbstractLinter, Countable]
type TraitUse struct {
	At     Pos
	Traits []*Name
}

// Func is a function or method declaration. Closures are Groups.
type Func struct {
	At   Pos
	Name string
	Body []Node
}

func (*Class) Kind() Kind          { return KindClass }
func (*AnonymousClass) Kind() Kind { return KindAnonymousClass }
func (*TraitUse) Kind() Kind       { return KindTraitUse }
func (*Func) Kind() Kind           { return KindFunc }
func (n *Class) Pos() Pos          { return n.At }
func (n *AnonymousClass) Pos() Pos { return n.At }
func (n *TraitUse) Pos() Pos       { return n.At }
func (n *Func) Pos() Pos           { return n.At }
func (*Class) isNode()             {}
func (*AnonymousClass) isNode()    {}
func (*TraitUse) isNode()          {}
func (*Func) isNode()              {}
