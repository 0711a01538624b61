package scope

import (
	"strings"
	"testing"

	"github.com/sirkon/phlint/internal/phpast"
)

func span(start, end int) phpast.Pos {
	return phpast.Pos{Line: 1, Offset: start, End: end}
}

func TestIndexEnclosing(t *testing.T) {
	idx := New()

	if got := idx.Enclosing(0); got != "" {
		t.Fatalf("nothing was expected in an empty index, got %q", got)
	}

	idx.Add("Ground", span(0, 200))
	idx.Add("mid1", span(10, 90))
	idx.Add("mid11", span(20, 30))
	idx.Add("mid12", span(40, 80))
	idx.Add("mid13", span(85, 88))
	idx.Add("Mid2", span(110, 190))
	idx.Add("mid21", span(120, 130))
	idx.Add("Later", span(300, 400))

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "ground-start", offset: 0, want: "Ground"},
		{name: "ground-gap", offset: 5, want: "Ground"},
		{name: "ground-last-byte", offset: 199, want: "Ground"},
		{name: "mid1-last-byte", offset: 89, want: "Ground::mid1"},
		{name: "mid11", offset: 25, want: "Ground::mid1::mid11"},
		{name: "mid12-start", offset: 40, want: "Ground::mid1::mid12"},
		{name: "mid12-end", offset: 79, want: "Ground::mid1::mid12"},
		{name: "mid13", offset: 86, want: "Ground::mid1::mid13"},
		{name: "between-mids", offset: 100, want: "Ground"},
		{name: "mid2", offset: 115, want: "Ground::Mid2"},
		{name: "mid21", offset: 125, want: "Ground::Mid2::mid21"},
		{name: "after-ground", offset: 200, want: ""},
		{name: "later", offset: 350, want: "Later"},
		{name: "on-the-left", offset: -1, want: ""},
		{name: "on-the-right", offset: 401, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.Enclosing(tt.offset); got != tt.want {
				t.Errorf("at %d: got %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestIndexIgnoresEmptySpans(t *testing.T) {
	idx := New()
	idx.Add("empty", span(10, 10))

	if got := idx.Enclosing(10); got != "" {
		t.Errorf("got %q for an empty span", got)
	}
}

func TestIndexRejectsPartialOverlap(t *testing.T) {
	idx := New()
	idx.Add("a", span(0, 50))

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "overlapping") {
			t.Fatalf("expected overlap panic, got %v", r)
		}
	}()

	idx.Add("b", span(40, 60))
}

func TestBuild(t *testing.T) {
	// <?php
	// class A {
	//     function f() { X\Y::z(); }
	// }
	// $x = new class {
	//     function g() {}
	// };
	// function h() {}
	call := &phpast.StaticCall{
		At:     phpast.Pos{Line: 3, Offset: 35, End: 44},
		Class:  &phpast.NameExpr{At: phpast.Pos{Line: 3, Offset: 35, End: 38}, Name: phpast.ParseName(`X\Y`)},
		Method: "z",
	}
	tree := &phpast.File{
		At: phpast.Pos{Line: 1, Offset: 0, End: 120},
		Stmts: []phpast.Node{
			&phpast.Class{
				At:   phpast.Pos{Line: 2, Offset: 6, End: 50},
				Name: "A",
				Body: []phpast.Node{
					&phpast.Func{
						At:   phpast.Pos{Line: 3, Offset: 20, End: 48},
						Name: "f",
						Body: []phpast.Node{call},
					},
				},
			},
			&phpast.New{
				At: phpast.Pos{Line: 5, Offset: 56, End: 95},
				Class: &phpast.AnonymousClass{
					At: phpast.Pos{Line: 5, Offset: 60, End: 95},
					Body: []phpast.Node{
						&phpast.Func{At: phpast.Pos{Line: 6, Offset: 72, End: 87}, Name: "g"},
					},
				},
			},
			&phpast.Func{At: phpast.Pos{Line: 8, Offset: 98, End: 113}, Name: "h"},
		},
	}

	idx := Build(tree)

	tests := []struct {
		offset int
		want   string
	}{
		{offset: call.Pos().Offset, want: "A::f"},
		{offset: 10, want: "A"},
		{offset: 75, want: AnonymousClass + "::g"},
		{offset: 62, want: AnonymousClass},
		{offset: 100, want: "h"},
		{offset: 2, want: ""},
		{offset: 115, want: ""},
	}
	for _, tt := range tests {
		if got := idx.Enclosing(tt.offset); got != tt.want {
			t.Errorf("at %d: got %q, want %q", tt.offset, got, tt.want)
		}
	}
}
