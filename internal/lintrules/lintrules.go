package lintrules

import (
	"encoding"
	"fmt"
	"strings"
)

// Code represents a phlint rule code.
type Code int

const (
	// NoRule marks reports that do not come from a rule, like syntax errors.
	NoRule Code = iota

	PHL001QualifiedNamesOnlyForClassName
)

type codeInfo struct {
	code        string
	name        string
	description string
}

var codes = map[Code]codeInfo{
	PHL001QualifiedNamesOnlyForClassName: {
		code:        "PHL001",
		name:        "QualifiedNamesOnlyForClassName",
		description: "Fully Qualified Class Names should only be used for accessing class names",
	},
}

// All returns every known code in numeric order.
func All() []Code {
	return []Code{
		PHL001QualifiedNamesOnlyForClassName,
	}
}

// String returns the canonical code and name of the rule.
// Example: "PHL001: QualifiedNamesOnlyForClassName"
func (c Code) String() string {
	v, ok := codes[c]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", c)
	}

	return v.code + ": " + v.name
}

// Code returns the short code like "PHL001".
func (c Code) Code() string {
	v, ok := codes[c]
	if !ok {
		return fmt.Sprintf("PHL???(%d)", c)
	}

	return v.code
}

// Name returns the rule name like "QualifiedNamesOnlyForClassName".
func (c Code) Name() string {
	v, ok := codes[c]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", c)
	}

	return v.name
}

// Description returns the human-readable explanation of the rule.
func (c Code) Description() string {
	v, ok := codes[c]
	if !ok {
		return fmt.Sprintf("unknown-rule(%d)", c)
	}

	return v.description
}

// Valid tells if the code is a known one.
func (c Code) Valid() bool {
	_, ok := codes[c]
	return ok
}

// Lookup finds a code by its short code or name, case-insensitively.
func Lookup(text string) (Code, bool) {
	text = strings.TrimSpace(text)
	for k, v := range codes {
		if strings.EqualFold(v.code, text) || strings.EqualFold(v.name, text) {
			return k, true
		}
	}

	return NoRule, false
}

var (
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ encoding.TextMarshaler   = Code(0)
)

// UnmarshalText for setting values with configs, CLI, etc.
func (c *Code) UnmarshalText(rawtext []byte) error {
	v, ok := Lookup(string(rawtext))
	if !ok {
		return fmt.Errorf("unknown rule %q", rawtext)
	}

	*c = v
	return nil
}

// MarshalText renders the rule name.
func (c Code) MarshalText() ([]byte, error) {
	v, ok := codes[c]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid rule code %d", int(c))
	}

	return []byte(v.name), nil
}

// Constructors.

func QualifiedNamesOnlyForClassName() Code { return PHL001QualifiedNamesOnlyForClassName }
