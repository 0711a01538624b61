// Package phpast defines the syntax tree the linter works on.
//
// The tree is a closed set of node types: every node implements [Node] through an
// unexported marker method, so no package outside phpast can add new kinds. Nodes
// carry their source position and the attributes rules need to classify a
// construct; anything the linter does not care about is folded into [Group] nodes
// which only keep children.
//
// Trees are produced by a parser collaborator (see internal/phpparse) and are never
// mutated afterwards, so a single tree can be shared read-only by any number of
// rules within one analysis pass.
package phpast
