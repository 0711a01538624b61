package report

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/sirkon/phlint/internal/lintrules"
)

// Reporter collects findings of all linted files. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Stage   Stage
	Rule    lintrules.Code
	File    string
	Line    int
	Scope   string
	Message string
}

// Position locates a report.
type Position struct {
	File  string
	Line  int
	Scope string
}

// Stage marks where a report was generated.
type Stage int

const (
	stageInvalid Stage = iota
	StageParse         // source did not parse
	StageLint          // rule violation
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageLint:
		return "lint"
	default:
		return fmt.Sprintf("unknown-stage(%d)", s)
	}
}

// StageReporter binds a Reporter to a fixed stage.
type StageReporter struct {
	parent *Reporter
	stage  Stage
}

// Stage returns a reporter that sets the given stage for all reports produced through it.
func (r *Reporter) Stage(s Stage) *StageReporter {
	return &StageReporter{parent: r, stage: s}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new finding under the bound stage. An empty message means
// the rule description.
func (sr *StageReporter) Report(rule lintrules.Code, pos Position, message string) {
	if message == "" && rule.Valid() {
		message = rule.Description()
	}
	sr.parent.Report(Report{
		Stage:   sr.stage,
		Rule:    rule,
		File:    pos.File,
		Line:    pos.Line,
		Scope:   pos.Scope,
		Message: message,
	})
}

// Reports returns a snapshot of all collected records ordered by file name.
// Records of the same file keep the order they were reported in.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Report) int {
		return cmp.Compare(a.File, b.File)
	})
	return out
}

// Count returns the number of reports of the given stage.
func (r *Reporter) Count(s Stage) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res int
	for _, rep := range r.reports {
		if rep.Stage == s {
			res++
		}
	}

	return res
}
