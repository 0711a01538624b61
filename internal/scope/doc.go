// Package scope maps source offsets to the declarations enclosing them.
//
// Declarations (classes, anonymous classes, functions and methods) are kept in an
// RB-tree of disjoint spans where every span owns a nested tree of the spans it
// contains. Syntax trees never produce partially overlapping declarations, so
// ordering spans "disjoint by position" is enough to find the innermost one.
package scope
