package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mlindh/structlint/rules"
	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// faultyRule lets tests inject panics and errors into a check.
type faultyRule struct {
	structlint.DefaultRule
	name  string
	check func(structlint.Runner) error
}

func (r *faultyRule) Name() string                       { return r.name }
func (r *faultyRule) Link() string                       { return "" }
func (r *faultyRule) Check(runner structlint.Runner) error { return r.check(runner) }

func mustScan(t *testing.T, src string) *source.FileView {
	t.Helper()
	view, err := source.Scan([]byte(src), "main.py")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	return view
}

func TestEngine_CheckFile_Deterministic(t *testing.T) {
	eng, err := New(rules.NewRuleSet(nil), nil)
	if err != nil {
		t.Fatal(err)
	}

	view := mustScan(t, "import typing\nimport os\nx = 1  \ny = 2")

	first := eng.CheckFile(view)
	second := eng.CheckFile(view)

	if len(first) == 0 {
		t.Fatal("expected violations, got none")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("CheckFile not deterministic:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestEngine_CheckFile_SortedByLine(t *testing.T) {
	eng, err := New(rules.NewRuleSet(nil), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Trailing whitespace on lines 1 and 3, missing newline on line 4.
	view := mustScan(t, "a = 1 \nb = 2\nc = 3\t\nd = 4")

	violations := eng.CheckFile(view)
	for i := 1; i < len(violations); i++ {
		if violations[i-1].Range.Start.Line > violations[i].Range.Start.Line {
			t.Errorf("violations out of line order: %v before %v", violations[i-1], violations[i])
		}
	}
}

func TestEngine_CheckFile_PanickingRuleIsolated(t *testing.T) {
	ruleset := &structlint.BuiltinRuleSet{
		Name:    "test",
		Version: "0.0.1",
		Rules: []structlint.Rule{
			&faultyRule{name: "boom", check: func(structlint.Runner) error {
				panic("unexpected state")
			}},
			rules.NewTrailingWhitespaceRule(),
		},
	}
	eng, err := New(ruleset, nil)
	if err != nil {
		t.Fatal(err)
	}

	violations := eng.CheckFile(mustScan(t, "x = 1  \n"))

	var internal, trailing int
	for _, violation := range violations {
		switch violation.Code {
		case structlint.CodeRuleInternalError:
			internal++
			if violation.Rule != "boom" {
				t.Errorf("internal error attributed to %q, want boom", violation.Rule)
			}
			if !strings.Contains(violation.Message, "unexpected state") {
				t.Errorf("message %q should contain the panic value", violation.Message)
			}
		case structlint.CodeTrailingWhitespace:
			trailing++
		}
	}
	if internal != 1 {
		t.Errorf("got %d internal errors, want 1", internal)
	}
	if trailing != 1 {
		t.Errorf("sibling rule produced %d violations, want 1", trailing)
	}
}

func TestEngine_CheckFile_ErroringRule(t *testing.T) {
	ruleset := &structlint.BuiltinRuleSet{
		Name:    "test",
		Version: "0.0.1",
		Rules: []structlint.Rule{
			&faultyRule{name: "broken", check: func(structlint.Runner) error {
				return errors.New("config unusable")
			}},
		},
	}
	eng, err := New(ruleset, nil)
	if err != nil {
		t.Fatal(err)
	}

	violations := eng.CheckFile(mustScan(t, "x = 1\n"))
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
	if violations[0].Code != structlint.CodeRuleInternalError {
		t.Errorf("Code = %q, want %q", violations[0].Code, structlint.CodeRuleInternalError)
	}
	if violations[0].Range.Start.Line != 1 {
		t.Errorf("internal error at line %d, want 1", violations[0].Range.Start.Line)
	}
}

// A rule that emits before faulting contributes only the internal error.
func TestEngine_CheckFile_PartialOutputDiscarded(t *testing.T) {
	emitting := &faultyRule{name: "partial"}
	emitting.check = func(runner structlint.Runner) error {
		view := runner.File()
		_ = runner.EmitViolation(emitting, "PARTIAL", "about to fault", view.LineRange(1))
		panic("midway")
	}
	ruleset := &structlint.BuiltinRuleSet{
		Name:    "test",
		Version: "0.0.1",
		Rules:   []structlint.Rule{emitting},
	}
	eng, err := New(ruleset, nil)
	if err != nil {
		t.Fatal(err)
	}

	violations := eng.CheckFile(mustScan(t, "x = 1\n"))
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
	if violations[0].Code != structlint.CodeRuleInternalError {
		t.Errorf("Code = %q, want %q", violations[0].Code, structlint.CodeRuleInternalError)
	}
}

func TestEngine_Run_MultipleFiles(t *testing.T) {
	eng, err := New(rules.NewRuleSet(nil), nil, WithParallelism(4))
	if err != nil {
		t.Fatal(err)
	}

	inputs := make([]Input, 0, 20)
	for i := 0; i < 10; i++ {
		inputs = append(inputs,
			Input{Path: fmt.Sprintf("clean_%d.py", i), Content: []byte("x = 1\n")},
			Input{Path: fmt.Sprintf("dirty_%d.py", i), Content: []byte("x = 1  \n")},
		)
	}

	report := eng.Run(inputs)

	if len(report.Diagnostics) != 20 {
		t.Fatalf("report covers %d files, want 20", len(report.Diagnostics))
	}
	for i := 0; i < 10; i++ {
		clean := fmt.Sprintf("clean_%d.py", i)
		diagnostics, ok := report.Diagnostics[clean]
		if !ok {
			t.Errorf("%s missing from report", clean)
		}
		if len(diagnostics) != 0 {
			t.Errorf("%s has %d diagnostics, want 0", clean, len(diagnostics))
		}

		dirty := fmt.Sprintf("dirty_%d.py", i)
		if len(report.Diagnostics[dirty]) != 1 {
			t.Errorf("%s has %d diagnostics, want 1", dirty, len(report.Diagnostics[dirty]))
		}
	}
	if report.Passed {
		t.Error("Passed = true, want false (trailing whitespace is ERROR)")
	}
	if got := report.Counts[structlint.CodeTrailingWhitespace]; got != 10 {
		t.Errorf("Counts[TRAILING-WHITESPACE] = %d, want 10", got)
	}
	if got := report.TotalViolations(); got != 10 {
		t.Errorf("TotalViolations() = %d, want 10", got)
	}
}

func TestEngine_Run_ScanError(t *testing.T) {
	eng, err := New(rules.NewRuleSet(nil), nil)
	if err != nil {
		t.Fatal(err)
	}

	report := eng.Run([]Input{
		{Path: "good.py", Content: []byte("x = 1\n")},
		{Path: "bad.bin", Content: []byte{0xff, 0xfe, 0x00}},
	})

	diagnostics := report.Diagnostics["bad.bin"]
	if len(diagnostics) != 1 {
		t.Fatalf("bad.bin has %d diagnostics, want 1", len(diagnostics))
	}
	if diagnostics[0].Code != structlint.CodeScanError {
		t.Errorf("Code = %q, want %q", diagnostics[0].Code, structlint.CodeScanError)
	}
	if report.Passed {
		t.Error("Passed = true, want false")
	}
	if len(report.Diagnostics["good.py"]) != 0 {
		t.Errorf("good.py has diagnostics: %v", report.Diagnostics["good.py"])
	}
}

// Severity overrides change reporting, never detection.
func TestEngine_Run_SeverityOverridePasses(t *testing.T) {
	config := &structlint.Config{
		SeverityOverrides: map[string]structlint.Severity{
			"trailing_whitespace": structlint.WARNING,
		},
	}
	eng, err := New(rules.NewRuleSet(config), config)
	if err != nil {
		t.Fatal(err)
	}

	report := eng.Run([]Input{{Path: "main.py", Content: []byte("x = 1  \n")}})

	if len(report.Diagnostics["main.py"]) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(report.Diagnostics["main.py"]))
	}
	if got := report.Diagnostics["main.py"][0].Severity; got != structlint.WARNING {
		t.Errorf("Severity = %v, want WARNING", got)
	}
	if !report.Passed {
		t.Error("Passed = false, want true (only WARNING findings)")
	}
}

// A well-formed module with only a docstring and ordered imports is clean
// under the full builtin ruleset.
func TestEngine_Run_CleanModule(t *testing.T) {
	eng, err := New(rules.NewRuleSet(nil), nil)
	if err != nil {
		t.Fatal(err)
	}

	src := "\"\"\"Utility helpers.\"\"\"\n" +
		"import json\n" +
		"import os\n" +
		"\n" +
		"import requests\n" +
		"\n" +
		"\n" +
		"def get(url):\n" +
		"    return requests.get(url, timeout=json.loads(os.environ[\"T\"]))\n"

	report := eng.Run([]Input{{Path: "util.py", Content: []byte(src)}})

	if len(report.Diagnostics["util.py"]) != 0 {
		t.Errorf("diagnostics = %v, want none", report.Diagnostics["util.py"])
	}
	if !report.Passed {
		t.Error("Passed = false, want true")
	}
}

func TestEngine_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	eng, err := New(rules.NewRuleSet(nil), nil, WithMetrics(metrics))
	if err != nil {
		t.Fatal(err)
	}

	eng.Run([]Input{
		{Path: "a.py", Content: []byte("x = 1  \n")},
		{Path: "b.py", Content: []byte("x = 1\n")},
	})

	if got := testutil.ToFloat64(metrics.FilesCheckedTotal); got != 2 {
		t.Errorf("structlint_files_checked_total = %v, want 2", got)
	}
	got := testutil.ToFloat64(metrics.ViolationsTotal.WithLabelValues("trailing_whitespace", "ERROR"))
	if got != 1 {
		t.Errorf("structlint_violations_total{rule=trailing_whitespace} = %v, want 1", got)
	}
}
