package phpparse

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/sirkon/phlint/internal/phpast"
)

// converter builds phpast nodes out of a tree-sitter tree.
type converter struct {
	src []byte
}

var literalKinds = map[string]struct{}{
	"string":  {},
	"integer": {},
	"float":   {},
	"boolean": {},
	"null":    {},
	"nowdoc":  {},
}

func (c *converter) node(n *sitter.Node) phpast.Node {
	if n == nil {
		return nil
	}

	kind := n.Kind()
	if _, ok := literalKinds[kind]; ok {
		return &phpast.Literal{At: c.pos(n), Value: c.text(n)}
	}

	switch kind {
	case "name", "qualified_name", "relative_scope":
		return &phpast.NameExpr{At: c.pos(n), Name: phpast.ParseName(c.text(n))}
	case "variable_name":
		return &phpast.Variable{At: c.pos(n), Name: strings.TrimPrefix(c.text(n), "$")}
	case "dynamic_variable_name":
		return &phpast.Variable{At: c.pos(n)}
	case "class_constant_access_expression":
		return c.classConstFetch(n)
	case "scoped_property_access_expression":
		return c.staticPropertyFetch(n)
	case "scoped_call_expression":
		return c.staticCall(n)
	case "object_creation_expression":
		return c.newExpr(n)
	case "anonymous_class":
		return c.anonymousClass(n)
	case "class_declaration":
		return c.class(n)
	case "use_declaration":
		return c.traitUse(n)
	case "function_definition", "method_declaration":
		return c.function(n)
	default:
		return &phpast.Group{At: c.pos(n), Label: kind, Children: c.children(n)}
	}
}

// X::CONST, X::class
func (c *converter) classConstFetch(n *sitter.Node) phpast.Node {
	text := c.text(n)
	return &phpast.ClassConstFetch{
		At:    c.pos(n),
		Class: c.node(c.firstNamed(n)),
		Const: strings.TrimSpace(text[strings.LastIndex(text, "::")+len("::"):]),
	}
}

// X::$prop
func (c *converter) staticPropertyFetch(n *sitter.Node) phpast.Node {
	res := &phpast.StaticPropertyFetch{
		At:    c.pos(n),
		Class: c.node(c.scope(n)),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		res.Prop = strings.TrimPrefix(c.text(name), "$")
	}

	return res
}

// X::method(…)
func (c *converter) staticCall(n *sitter.Node) phpast.Node {
	res := &phpast.StaticCall{
		At:    c.pos(n),
		Class: c.node(c.scope(n)),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		res.Method = c.text(name)
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		res.Args = c.children(args)
	}

	return res
}

// new X(…), new $x, new class(…) {…}
func (c *converter) newExpr(n *sitter.Node) phpast.Node {
	res := &phpast.New{At: c.pos(n)}

	// Older grammar versions inline anonymous classes into the creation expression.
	if c.childOfKind(n, "declaration_list") != nil {
		res.Class = c.anonymousClass(n)
		return res
	}

	c.eachNamed(n, func(child *sitter.Node) {
		switch child.Kind() {
		case "arguments":
			res.Args = c.children(child)
		default:
			if res.Class == nil {
				res.Class = c.node(child)
			}
		}
	})

	return res
}

func (c *converter) anonymousClass(n *sitter.Node) phpast.Node {
	res := &phpast.AnonymousClass{At: c.pos(n)}
	c.eachNamed(n, func(child *sitter.Node) {
		switch child.Kind() {
		case "arguments":
			res.Args = c.children(child)
		case "base_clause":
			res.Extends = c.parent(child)
		case "class_interface_clause":
			res.Implements = c.names(child)
		case "attribute_list", "declaration_list":
			res.Body = append(res.Body, c.children(child)...)
		}
	})

	return res
}

func (c *converter) class(n *sitter.Node) phpast.Node {
	res := &phpast.Class{At: c.pos(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		res.Name = c.text(name)
	}

	c.eachNamed(n, func(child *sitter.Node) {
		switch child.Kind() {
		case "base_clause":
			res.Extends = c.parent(child)
		case "class_interface_clause":
			res.Implements = c.names(child)
		case "attribute_list", "declaration_list":
			// Attributes precede the body, so Body stays in source order.
			res.Body = append(res.Body, c.children(child)...)
		}
	})

	return res
}

// use A\B, C; inside class, trait and enum bodies.
func (c *converter) traitUse(n *sitter.Node) phpast.Node {
	return &phpast.TraitUse{
		At:     c.pos(n),
		Traits: c.names(n),
	}
}

func (c *converter) function(n *sitter.Node) phpast.Node {
	res := &phpast.Func{
		At:   c.pos(n),
		Body: c.children(n),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		res.Name = c.text(name)
	}

	return res
}

// children converts named children except comments.
func (c *converter) children(n *sitter.Node) []phpast.Node {
	var res []phpast.Node
	c.eachNamed(n, func(child *sitter.Node) {
		if v := c.node(child); v != nil {
			res = append(res, v)
		}
	})

	return res
}

func (c *converter) eachNamed(n *sitter.Node, f func(child *sitter.Node)) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		f(child)
	}
}

func (c *converter) firstNamed(n *sitter.Node) *sitter.Node {
	var res *sitter.Node
	c.eachNamed(n, func(child *sitter.Node) {
		if res == nil {
			res = child
		}
	})

	return res
}

func (c *converter) scope(n *sitter.Node) *sitter.Node {
	if scope := n.ChildByFieldName("scope"); scope != nil {
		return scope
	}

	return c.firstNamed(n)
}

func (c *converter) childOfKind(n *sitter.Node, kind string) *sitter.Node {
	var res *sitter.Node
	c.eachNamed(n, func(child *sitter.Node) {
		if res == nil && child.Kind() == kind {
			res = child
		}
	})

	return res
}

// names collects direct name and qualified_name children.
func (c *converter) names(n *sitter.Node) []*phpast.Name {
	var res []*phpast.Name
	c.eachNamed(n, func(child *sitter.Node) {
		switch child.Kind() {
		case "name", "qualified_name":
			res = append(res, phpast.ParseName(c.text(child)))
		}
	})

	return res
}

// parent converts the name of an extends clause.
func (c *converter) parent(n *sitter.Node) *phpast.NameExpr {
	var res *phpast.NameExpr
	c.eachNamed(n, func(child *sitter.Node) {
		if res != nil {
			return
		}
		switch child.Kind() {
		case "name", "qualified_name":
			res = &phpast.NameExpr{At: c.pos(child), Name: phpast.ParseName(c.text(child))}
		}
	})

	return res
}

func (c *converter) pos(n *sitter.Node) phpast.Pos {
	return phpast.Pos{
		Line:   int(n.StartPosition().Row) + 1,
		Offset: int(n.StartByte()),
		End:    int(n.EndByte()),
	}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Utf8Text(c.src)
}
