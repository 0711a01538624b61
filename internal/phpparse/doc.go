// Package phpparse turns PHP source into phpast trees using the tree-sitter PHP
// grammar.
//
// Only constructs that rules look at get their own phpast node types. Everything
// else becomes a phpast.Group keeping the converted named children, so nothing
// below an unknown construct is lost for the traversal.
package phpparse
