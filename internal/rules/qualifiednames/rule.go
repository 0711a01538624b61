package qualifiednames

import (
	"strings"

	"github.com/sirkon/phlint/internal/lint"
	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/phpast"
)

// Message is reported for every violation.
const Message = "Fully Qualified Class Names should only be used for accessing class names"

// classNameConst is the pseudo-constant giving a fully qualified class name as a string.
const classNameConst = "class"

// Rule returns PHL001 ready to be passed to [lint.Lint].
func Rule() lint.Rule {
	return lint.Rule{
		Code: lintrules.QualifiedNamesOnlyForClassName(),
		Handlers: map[phpast.Kind]lint.Check{
			phpast.KindClassConstFetch:     checkClassConstFetch,
			phpast.KindStaticPropertyFetch: checkStaticPropertyFetch,
			phpast.KindStaticCall:          checkStaticCall,
			phpast.KindNew:                 checkNew,
			phpast.KindClass:               checkClass,
			phpast.KindAnonymousClass:      checkAnonymousClass,
			phpast.KindTraitUse:            checkTraitUse,
		},
	}
}

func checkClassConstFetch(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.ClassConstFetch)
	if n.Const == "" {
		panic(phpast.Malformed(n, "no constant name"))
	}

	// X::class is resolved at compile time into the "X" string literal.
	if isClassNameConst(n.Const) {
		return nil, ""
	}

	return checkClassRef(n, n.Class)
}

func checkStaticPropertyFetch(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.StaticPropertyFetch)
	return checkClassRef(n, n.Class)
}

func checkStaticCall(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.StaticCall)
	return checkClassRef(n, n.Class)
}

func checkNew(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.New)
	if n.Class == nil {
		panic(phpast.Malformed(n, "no class expression"))
	}

	switch n.Class.(type) {
	case *phpast.AnonymousClass:
		// Nothing is named here. Its extends clause is checked on the class node itself.
		return nil, ""
	case *phpast.NameExpr:
		return checkClassRef(n, n.Class)
	default:
		// new $thing, new ($factory()): the class is unknown until runtime.
		return nil, ""
	}
}

func checkClass(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.Class)
	return checkExtends(n, n.Extends)
}

func checkAnonymousClass(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.AnonymousClass)
	return checkExtends(n, n.Extends)
}

func checkTraitUse(node phpast.Node) (phpast.Node, string) {
	n := node.(*phpast.TraitUse)
	if len(n.Traits) == 0 {
		panic(phpast.Malformed(n, "no traits"))
	}

	for _, trait := range n.Traits {
		if trait == nil {
			panic(phpast.Malformed(n, "nil trait name"))
		}

		if phpast.Classify(trait) == phpast.Qualified {
			return n, Message
		}
	}

	return nil, ""
}

// checkClassRef checks the class part of X::… and new X. The owner is blamed.
func checkClassRef(owner, class phpast.Node) (phpast.Node, string) {
	if class == nil {
		panic(phpast.Malformed(owner, "no class expression"))
	}

	name, ok := class.(*phpast.NameExpr)
	if !ok {
		// $obj::CONST, $class::make() and the like.
		return nil, ""
	}

	if name.Name == nil {
		panic(phpast.Malformed(class, "no name"))
	}

	if phpast.Classify(name.Name) == phpast.Qualified {
		return owner, Message
	}

	return nil, ""
}

// checkExtends blames the parent name, so the violation lands on the extends clause
// line even for class headers spanning several lines.
func checkExtends(class phpast.Node, parent *phpast.NameExpr) (phpast.Node, string) {
	if parent == nil {
		return nil, ""
	}

	if parent.Name == nil {
		panic(phpast.Malformed(class, "no parent name"))
	}

	if phpast.Classify(parent.Name) == phpast.Qualified {
		return parent, Message
	}

	return nil, ""
}

// PHP identifiers of class constants are case-sensitive, but ::class is a keyword.
func isClassNameConst(name string) bool {
	return strings.EqualFold(name, classNameConst)
}
