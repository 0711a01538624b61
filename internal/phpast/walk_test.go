package phpast

import (
	"errors"
	"reflect"
	"testing"
)

func TestInspectPreOrder(t *testing.T) {
	at := func(line int) Pos { return Pos{Line: line} }

	tree := &File{
		At: at(1),
		Stmts: []Node{
			&Class{
				At:      at(3),
				Name:    "A",
				Extends: &NameExpr{At: at(3), Name: ParseName(`X\Y`)},
				Body: []Node{
					&TraitUse{At: at(4), Traits: []*Name{ParseName("T")}},
					&Func{
						At:   at(5),
						Name: "f",
						Body: []Node{
							&StaticCall{
								At:     at(6),
								Class:  &NameExpr{At: at(6), Name: ParseName("Z")},
								Method: "make",
								Args:   []Node{&Variable{At: at(6), Name: "a"}},
							},
						},
					},
				},
			},
			&Group{
				At:    at(9),
				Label: "echo_statement",
				Children: []Node{
					&New{
						At: at(9),
						Class: &AnonymousClass{
							At:   at(9),
							Args: []Node{&Literal{At: at(9), Value: "1"}},
						},
					},
				},
			},
		},
	}

	var got []Kind
	Inspect(tree, func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})

	want := []Kind{
		KindFile,
		KindClass,
		KindTraitUse,
		KindFunc,
		KindStaticCall,
		KindNameExpr,
		KindVariable,
		KindGroup,
		KindNew,
		KindAnonymousClass,
		KindLiteral,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected traversal order\ngot:  %v\nwant: %v", got, want)
	}
}

func TestInspectPrune(t *testing.T) {
	tree := &File{
		Stmts: []Node{
			&Class{Name: "A", Body: []Node{&TraitUse{}}},
			&Literal{Value: "1"},
		},
	}

	var got []Kind
	Inspect(tree, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != KindClass
	})

	want := []Kind{KindFile, KindClass, KindLiteral}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInspectSkipsMissingClassExpression(t *testing.T) {
	var count int
	Inspect(&ClassConstFetch{Const: "X"}, func(Node) bool {
		count++
		return true
	})

	if count != 1 {
		t.Errorf("expected only the fetch itself to be visited, got %d nodes", count)
	}
}

// foreign is a node type Children has no layout for.
type foreign struct{}

func (foreign) Kind() Kind { return KindInvalid }
func (foreign) Pos() Pos   { return Pos{Line: 7} }
func (foreign) isNode()    {}

func TestChildrenUnknownNode(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatal("expected a panic with error")
		}
		var malformed *MalformedError
		if !errors.As(err, &malformed) {
			t.Fatalf("unexpected panic %v", err)
		}
		if malformed.Node.Pos().Line != 7 {
			t.Errorf("unexpected node line %d", malformed.Node.Pos().Line)
		}
	}()

	Inspect(&Group{Children: []Node{foreign{}}}, func(Node) bool { return true })
	t.Fatal("unknown node types must not be walked silently")
}
