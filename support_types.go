package main

import (
	"strings"

	"github.com/sirkon/phlint/internal/lintrules"
)

// ruleList is a flag value of comma separated rule codes or names.
type ruleList []lintrules.Code

func (l *ruleList) String() string {
	if l == nil {
		return ""
	}

	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = c.Name()
	}

	return strings.Join(parts, ",")
}

func (l *ruleList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		var c lintrules.Code
		if err := c.UnmarshalText([]byte(part)); err != nil {
			return err
		}
		*l = append(*l, c)
	}

	return nil
}

// exitCode of the process.
type exitCode int

const (
	exitClean      exitCode = 0
	exitViolations exitCode = 1
	exitFailure    exitCode = 2
)
