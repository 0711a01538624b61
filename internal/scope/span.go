package scope

import (
	"fmt"

	"github.com/sirkon/rbtree"
)

// declSpan stores a [start,end) byte span of a declaration and, if needed,
// a nested RB-tree for spans fully contained in it.
type declSpan struct {
	start int
	end   int
	name  string

	children *rbtree.Tree[*declSpan]
}

// Cmp orders spans as "disjoint by position":
//   - -1 if this span ends before the other starts;
//   - 1 if this span starts after the other ends;
//   - 0 if they overlap in any way, containment included.
func (s *declSpan) Cmp(other *declSpan) int {
	if s.end <= other.start {
		return -1
	}
	if s.start >= other.end {
		return 1
	}
	return 0
}

func (s *declSpan) contains(other *declSpan) bool {
	return s.start <= other.start && s.end >= other.end
}

// attachInto inserts s into t. If the tree already has a span r overlapping s then r
// must contain s, and s goes into r's children. Spans added in pre-order of the
// syntax tree always satisfy this.
func attachInto(t *rbtree.Tree[*declSpan], s *declSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if !r.contains(s) {
		panic(fmt.Sprintf(
			"attachInto: span %q [%d,%d) was added after overlapping %q [%d,%d)",
			s.name, s.start, s.end,
			r.name, r.start, r.end,
		))
	}

	if r.children == nil {
		r.children = rbtree.New[*declSpan]()
	}
	attachInto(r.children, s)
}

// descend collects names from s down to the innermost span holding offset.
func descend(s *declSpan, offset int, path []string) []string {
	if s.name != "" {
		path = append(path, s.name)
	}
	if s.children == nil {
		return path
	}

	child := s.children.Search(pointSpan(offset))
	if child == nil {
		return path
	}

	return descend(child, offset, path)
}

func pointSpan(offset int) *declSpan {
	return &declSpan{start: offset, end: offset + 1}
}
