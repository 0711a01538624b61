package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sirkon/phlint/internal/config"
	"github.com/sirkon/phlint/internal/lintrules"
	"github.com/sirkon/phlint/internal/report"
	"github.com/sirkon/phlint/internal/runner"
)

const doc = `phlint reports style violations in PHP sources.

Usage:

	phlint [flags] paths...

Exit codes: 0 nothing found, 1 violations found, 2 syntax or operational errors.

Flags:
`

type options struct {
	configPath string
	format     string
	workers    int
	logLevel   string
	enable     ruleList
	disable    ruleList
	listRules  bool
	paths      []string
}

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout, os.Stderr)))
}

func run(args []string, stdout, stderr io.Writer) exitCode {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}
		return exitFailure
	}

	if opts.listRules {
		printRules(stdout)
		return exitClean
	}

	logger := setupLogger(opts.logLevel, stderr)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.WithError(err).Error("load configuration")
		return exitFailure
	}
	if err := applyOptions(cfg, opts); err != nil {
		logger.WithError(err).Error("apply command line options")
		return exitFailure
	}

	rules, err := newKnownRules().selectRules(cfg.Rules.Enable, cfg.Rules.Disable)
	if err != nil {
		logger.WithError(err).Error("select rules")
		return exitFailure
	}
	if len(rules) == 0 {
		logger.Error("no rules selected")
		return exitFailure
	}

	files, err := discoverFiles(
		opts.paths,
		newKnownExtensions(cfg.Extensions),
		newKnownExcludes(cfg.Exclude),
	)
	if err != nil {
		logger.WithError(err).Error("discover files")
		return exitFailure
	}
	logger.Debugf("linting %d files with %d rules", len(files), len(rules))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rep, err := runner.New(logger, rules, cfg.Workers).Run(ctx, files)
	if err != nil {
		logger.WithError(err).Error("lint files")
		return exitFailure
	}

	if err := report.Write(stdout, rep.Reports(), cfg.Format); err != nil {
		logger.WithError(err).Error("write reports")
		return exitFailure
	}

	switch {
	case rep.Count(report.StageParse) > 0:
		return exitFailure
	case rep.Count(report.StageLint) > 0:
		return exitViolations
	default:
		return exitClean
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("phlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, doc)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "Configuration file (default "+config.DefaultPath+" if present)")
	fs.StringVar(&opts.format, "format", "", "Output format (text, json)")
	fs.IntVar(&opts.workers, "workers", 0, "Files linted concurrently (default number of CPUs)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.Var(&opts.enable, "enable", "Comma separated rules to run, by code or name (default all)")
	fs.Var(&opts.disable, "disable", "Comma separated rules to skip, by code or name")
	fs.BoolVar(&opts.listRules, "rules", false, "List known rules and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.paths = fs.Args()
	if len(opts.paths) == 0 {
		opts.paths = []string{"."}
	}

	return opts, nil
}

func printRules(w io.Writer) {
	for _, code := range lintrules.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", code.Code(), code.Name(), code.Description())
	}
}

// applyOptions lets command line flags override the configuration file.
func applyOptions(cfg *config.Config, opts *options) error {
	if opts.format != "" {
		if err := cfg.Format.UnmarshalText([]byte(opts.format)); err != nil {
			return fmt.Errorf("parse format: %w", err)
		}
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if len(opts.enable) > 0 {
		cfg.Rules.Enable = opts.enable
	}
	cfg.Rules.Disable = append(cfg.Rules.Disable, opts.disable...)

	return nil
}

func setupLogger(logLevel string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	return logger
}
