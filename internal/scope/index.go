package scope

import (
	"strings"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/phlint/internal/phpast"
)

// AnonymousClass names anonymous classes in scope paths.
const AnonymousClass = "class@anonymous"

// Index finds declarations enclosing a source offset.
type Index struct {
	tree *rbtree.Tree[*declSpan]
}

// New creates an empty index.
func New() *Index {
	return &Index{tree: rbtree.New[*declSpan]()}
}

// Build indexes every declaration of the tree.
func Build(root phpast.Node) *Index {
	idx := New()
	phpast.Inspect(root, func(node phpast.Node) bool {
		switch n := node.(type) {
		case *phpast.Class:
			idx.Add(n.Name, n.At)
		case *phpast.AnonymousClass:
			idx.Add(AnonymousClass, n.At)
		case *phpast.Func:
			idx.Add(n.Name, n.At)
		}
		return true
	})

	return idx
}

// Add registers a declaration with the given span. Empty spans are ignored.
// A declaration must be added before the ones nested into it.
func (idx *Index) Add(name string, pos phpast.Pos) {
	if pos.End <= pos.Offset {
		return
	}

	attachInto(idx.tree, &declSpan{
		start: pos.Offset,
		end:   pos.End,
		name:  name,
	})
}

// Enclosing returns the path of declarations holding the offset, outermost first,
// joined with "::". It is empty for top-level code.
//
//	class A { function f() { X\Y::z(); } } // at X: "A::f"
func (idx *Index) Enclosing(offset int) string {
	top := idx.tree.Search(pointSpan(offset))
	if top == nil {
		return ""
	}

	return strings.Join(descend(top, offset, nil), "::")
}
