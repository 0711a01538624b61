package phpast

import (
	"strings"
)

// Separator is the namespace separator.
const Separator = `\`

const relativePrefix = "namespace"

// Name is an identifier made of namespace segments.
//
//	\Tighten\AbstractLinter // Parts: ["Tighten", "AbstractLinter"], FullyQualified: true
//	Tighten\AbstractLinter  // Parts: ["Tighten", "AbstractLinter"], FullyQualified: false
//	AbstractLinter          // Parts: ["AbstractLinter"], FullyQualified: false
type Name struct {
	Parts          []string
	FullyQualified bool
}

// ParseName builds a Name out of its source text. Surrounding whitespace is ignored.
// The `namespace\` prefix of namespace-relative names is an operator rather than a
// segment and is dropped:
//
//	namespace\Foo // Parts: ["Foo"]
func ParseName(text string) *Name {
	text = strings.TrimSpace(text)
	n := &Name{
		FullyQualified: strings.HasPrefix(text, Separator),
	}

	for _, part := range strings.Split(text, Separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n.Parts = append(n.Parts, part)
	}

	if !n.FullyQualified && len(n.Parts) > 1 && strings.EqualFold(n.Parts[0], relativePrefix) {
		n.Parts = n.Parts[1:]
	}

	return n
}

func (n *Name) String() string {
	s := strings.Join(n.Parts, Separator)
	if n.FullyQualified {
		return Separator + s
	}

	return s
}
