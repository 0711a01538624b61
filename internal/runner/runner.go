// Package runner lints sets of files concurrently.
//
// Every file gets its own parser, tree and violation slice. The only things
// shared between goroutines are rules, which are immutable, and the reporter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/phlint/internal/lint"
	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/phpparse"
	"github.com/sirkon/phlint/internal/report"
	"github.com/sirkon/phlint/internal/scope"
)

// Runner lints files with a fixed set of rules.
type Runner struct {
	log     *logrus.Logger
	rules   []lint.Rule
	workers int
}

// New creates a Runner. Non-positive workers means the number of CPUs.
func New(log *logrus.Logger, rules []lint.Rule, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Runner{
		log:     log,
		rules:   rules,
		workers: workers,
	}
}

// Run lints files and returns collected reports. Syntax errors are reported under
// the parse stage and do not stop the run, unreadable files do.
func (r *Runner) Run(ctx context.Context, files []string) (*report.Reporter, error) {
	var rep report.Reporter

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return r.lintFile(file, &rep)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &rep, nil
}

func (r *Runner) lintFile(path string, rep *report.Reporter) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	parser, err := phpparse.New()
	if err != nil {
		return fmt.Errorf("create parser: %w", err)
	}
	defer parser.Close()

	tree, err := parser.Parse(path, src)
	if err != nil {
		var synErr *phpparse.SyntaxError
		if !errors.As(err, &synErr) {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		r.log.WithField("file", path).WithField("line", synErr.Line).Warn("skip file with syntax errors")
		rep.Stage(report.StageParse).Report(lintrules.NoRule, report.Position{
			File: path,
			Line: synErr.Line,
		}, "syntax error")
		return nil
	}

	violations := lint.Lint(tree, r.rules...)
	r.log.WithField("file", path).Debugf("%d violations", len(violations))
	if len(violations) == 0 {
		return nil
	}

	idx := scope.Build(tree)
	lintRep := rep.Stage(report.StageLint)
	for _, v := range violations {
		r.log.WithField("file", path).Debug(v.String())
		lintRep.Report(v.Rule, report.Position{
			File:  path,
			Line:  v.Line(),
			Scope: idx.Enclosing(v.Node.Pos().Offset),
		}, v.Message)
	}

	return nil
}
