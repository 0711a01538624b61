package phpparse

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/sirkon/phlint/internal/phpast"
)

// SyntaxError is returned for sources the grammar cannot parse.
type SyntaxError struct {
	Path string
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: syntax error", e.Path, e.Line)
}

// Parser is not safe for concurrent use.
type Parser struct {
	ts *sitter.Parser
}

// New creates a parser for PHP files, with the <?php … ?> template mode.
func New() (*Parser, error) {
	ts := sitter.NewParser()
	if err := ts.SetLanguage(sitter.NewLanguage(tree_sitter_php.LanguagePHP())); err != nil {
		ts.Close()
		return nil, fmt.Errorf("set php language: %w", err)
	}

	return &Parser{ts: ts}, nil
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.ts.Close()
}

// Parse parses source of the file at path. Errors are *SyntaxError for broken sources.
func (p *Parser) Parse(path string, src []byte) (*phpast.File, error) {
	tree := p.ts.Parse(src, nil)
	if tree == nil {
		return nil, errors.New("tree-sitter returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, &SyntaxError{
			Path: path,
			Line: firstErrorLine(root),
		}
	}

	c := &converter{src: src}
	return &phpast.File{
		At:    c.pos(root),
		Path:  path,
		Stmts: c.children(root),
	}, nil
}

func firstErrorLine(n *sitter.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartPosition().Row) + 1
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		return firstErrorLine(child)
	}

	return int(n.StartPosition().Row) + 1
}
