package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/txtar"

	"github.com/sirkon/phlint/internal/lint"
	"github.com/sirkon/phlint/internal/phpparse"
	"github.com/sirkon/phlint/internal/rules/qualifiednames"
)

//go:embed testdata
var lintTestCases embed.FS

// Every testdata/lint/case_*.txtar holds input.php and want with lines of
// expected violations, one per line.
func TestLintCases(t *testing.T) {
	files, err := lintTestCases.ReadDir("testdata/lint")
	if err != nil {
		t.Fatal(fmt.Errorf("list lint cases: %w", err))
	}

	parser, err := phpparse.New()
	if err != nil {
		t.Fatal(fmt.Errorf("create parser: %w", err))
	}
	defer parser.Close()

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(strings.TrimSuffix(file.Name(), ".txtar"), func(t *testing.T) {
			data, err := lintTestCases.ReadFile("testdata/lint/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}

			input, want := splitCase(t, txtar.Parse(data))

			tree, err := parser.Parse("input.php", input)
			if err != nil {
				t.Fatalf("parse input: %s", err)
			}

			var got []int
			for _, v := range lint.Lint(tree, qualifiednames.Rule()) {
				got = append(got, v.Line())
			}

			if !reflect.DeepEqual(want, got) {
				deepequal.SideBySide(t, "violation lines", want, got)
			}
		})
	}
}

func splitCase(t *testing.T, arch *txtar.Archive) ([]byte, []int) {
	t.Helper()

	var (
		input []byte
		want  []int
		found int
	)
	for _, f := range arch.Files {
		switch f.Name {
		case "input.php":
			input = f.Data
			found++
		case "want":
			for _, line := range strings.Fields(string(f.Data)) {
				n, err := strconv.Atoi(line)
				if err != nil {
					t.Fatalf("invalid line number %q in want", line)
				}
				want = append(want, n)
			}
			found++
		default:
			t.Fatalf("unexpected file %q in case archive", f.Name)
		}
	}
	if found != 2 {
		t.Fatal("case archive must have input.php and want")
	}

	return input, want
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Clean.php", "<?php\n\nuse Thing\\Things;\n\nThings::get();\n")
	writeFile(t, dir, "src/Dirty.php", "<?php\n\nclass A\n{\n    public function f()\n    {\n        return Thing\\Things::get();\n    }\n}\n")
	writeFile(t, dir, "vendor/Lib.php", "<?php\n\necho new Vendor\\Thing();\n")
	writeFile(t, dir, "README.md", "Thing\\Things::get();\n")

	tests := []struct {
		name   string
		args   []string
		code   exitCode
		output string
	}{
		{
			name: "text",
			args: []string{filepath.Join(dir, "src")},
			code: exitViolations,
			output: filepath.Join(dir, "src", "Dirty.php") +
				":7: [A::f] PHL001: QualifiedNamesOnlyForClassName: " + qualifiednames.Message + "\n",
		},
		{
			name:   "clean-file",
			args:   []string{filepath.Join(dir, "src", "Clean.php")},
			code:   exitClean,
			output: "",
		},
		{
			name:   "rule-disabled",
			args:   []string{"-disable", "PHL001", filepath.Join(dir, "src")},
			code:   exitFailure,
			output: "",
		},
		{
			name: "json",
			args: []string{"-format", "json", filepath.Join(dir, "src", "Dirty.php")},
			code: exitViolations,
			output: `{"stage":"lint","rule":"QualifiedNamesOnlyForClassName","code":"PHL001","file":` +
				strconv.Quote(filepath.Join(dir, "src", "Dirty.php")) +
				`,"line":7,"scope":"A::f","message":"` + qualifiednames.Message + `"}` + "\n",
		},
		{
			name:   "list-rules",
			args:   []string{"-rules"},
			code:   exitClean,
			output: "PHL001\tQualifiedNamesOnlyForClassName\t" + qualifiednames.Message + "\n",
		},
		{
			name:   "missing-path",
			args:   []string{filepath.Join(dir, "nowhere")},
			code:   exitFailure,
			output: "",
		},
		{
			name:   "unknown-format",
			args:   []string{"-format", "xml", filepath.Join(dir, "src")},
			code:   exitFailure,
			output: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(append([]string{"-config", writeConfig(t, "")}, tt.args...), &stdout, &stderr)
			if code != tt.code {
				t.Errorf("got exit code %d, want %d, stderr:\n%s", code, tt.code, stderr.String())
			}
			if stdout.String() != tt.output {
				t.Errorf("unexpected output\ngot:  %q\nwant: %q", stdout.String(), tt.output)
			}
		})
	}
}

func TestRunSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Broken.php", "<?php\n\nclass {\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, ""), path}, &stdout, &stderr)
	if code != exitFailure {
		t.Errorf("got exit code %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stdout.String(), "parse: syntax error") {
		t.Errorf("syntax error was not reported: %q", stdout.String())
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app/A.php", "<?php\n\necho new Thing\\Thing();\n")
	writeFile(t, dir, "storage/B.php", "<?php\n\necho new Thing\\Thing();\n")
	writeFile(t, dir, "app/view.phtml", "<?php\n\necho new Thing\\Thing();\n")

	cfg := writeConfig(t, "exclude: [storage]\nextensions: [.phtml]\nformat: text\nworkers: 2\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, dir}, &stdout, &stderr)
	if code != exitViolations {
		t.Fatalf("got exit code %d, want %d, stderr:\n%s", code, exitViolations, stderr.String())
	}

	got := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	want := []string{
		filepath.Join(dir, "app", "A.php") + ":3: PHL001: QualifiedNamesOnlyForClassName: " + qualifiednames.Message,
		filepath.Join(dir, "app", "view.phtml") + ":3: PHL001: QualifiedNamesOnlyForClassName: " + qualifiednames.Message,
	}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "output", want, got)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create directory for %s: %s", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}

	return path
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "phlint.yaml", content)
}
