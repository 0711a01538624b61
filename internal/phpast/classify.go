package phpast

import "fmt"

// Qualification is a verdict of Classify.
type Qualification int

const (
	qualificationInvalid Qualification = iota

	// Bare is a single segment name, the one imports bring into scope.
	Bare

	// Qualified is a name of two or more segments, with or without leading separator.
	Qualified
)

func (q Qualification) String() string {
	switch q {
	case Bare:
		return "bare"
	case Qualified:
		return "qualified"
	default:
		return fmt.Sprintf("invalid(%d)", q)
	}
}

// Classify tells whether the name is qualified. The leading separator does not matter:
// `\A\B` and `A\B` are both Qualified, `\A` and `A` are both Bare.
//
// A nil name or a name without segments cannot come out of a parser and is a
// programming error, Classify panics on it.
func Classify(n *Name) Qualification {
	if n == nil || len(n.Parts) == 0 {
		panic(Malformed(nil, "classify a name without segments"))
	}

	if len(n.Parts) > 1 {
		return Qualified
	}

	return Bare
}
