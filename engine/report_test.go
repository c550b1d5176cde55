package engine

import (
	"sync"
	"testing"

	"github.com/hashicorp/hcl/v2"

	"github.com/mlindh/structlint/structlint"
)

func violationAt(code string, severity structlint.Severity, line int) structlint.Violation {
	pos := hcl.Pos{Line: line, Column: 1}
	return structlint.Violation{
		Code:     code,
		Rule:     "test_rule",
		Severity: severity,
		Message:  "test finding",
		Range:    hcl.Range{Filename: "t.py", Start: pos, End: pos},
	}
}

func TestReporter_EmptyRun(t *testing.T) {
	report := NewReporter().Finalize()
	if !report.Passed {
		t.Error("Passed = false, want true")
	}
	if report.TotalViolations() != 0 {
		t.Errorf("TotalViolations() = %d, want 0", report.TotalViolations())
	}
}

func TestReporter_RecordsCleanFiles(t *testing.T) {
	reporter := NewReporter()
	reporter.Add("clean.py", nil)

	report := reporter.Finalize()
	diagnostics, ok := report.Diagnostics["clean.py"]
	if !ok {
		t.Fatal("clean.py missing from report")
	}
	if len(diagnostics) != 0 {
		t.Errorf("clean.py has %d diagnostics, want 0", len(diagnostics))
	}
	if !report.Passed {
		t.Error("Passed = false, want true")
	}
}

func TestReporter_PassedBySeverity(t *testing.T) {
	reporter := NewReporter()
	reporter.Add("a.py", []structlint.Violation{
		violationAt("TRAILING-WHITESPACE", structlint.WARNING, 1),
		violationAt("FILE-TOO-LONG", structlint.NOTICE, 1),
	})

	report := reporter.Finalize()
	if !report.Passed {
		t.Error("Passed = false, want true (no ERROR findings)")
	}

	reporter.Add("b.py", []structlint.Violation{
		violationAt("MISSING-FINAL-NEWLINE", structlint.ERROR, 3),
	})
	report = reporter.Finalize()
	if report.Passed {
		t.Error("Passed = true, want false after ERROR finding")
	}
}

func TestReporter_Counts(t *testing.T) {
	reporter := NewReporter()
	reporter.Add("a.py", []structlint.Violation{
		violationAt("TRAILING-WHITESPACE", structlint.ERROR, 1),
		violationAt("TRAILING-WHITESPACE", structlint.ERROR, 2),
	})
	reporter.Add("b.py", []structlint.Violation{
		violationAt("TRAILING-WHITESPACE", structlint.ERROR, 5),
		violationAt("IMPORT-ORDER", structlint.ERROR, 2),
	})

	report := reporter.Finalize()
	if got := report.Counts["TRAILING-WHITESPACE"]; got != 3 {
		t.Errorf("Counts[TRAILING-WHITESPACE] = %d, want 3", got)
	}
	if got := report.Counts["IMPORT-ORDER"]; got != 1 {
		t.Errorf("Counts[IMPORT-ORDER] = %d, want 1", got)
	}
	if got := report.TotalViolations(); got != 4 {
		t.Errorf("TotalViolations() = %d, want 4", got)
	}
}

// Finalize snapshots; later Add calls do not mutate an earlier report.
func TestReporter_FinalizeSnapshot(t *testing.T) {
	reporter := NewReporter()
	reporter.Add("a.py", []structlint.Violation{
		violationAt("IMPORT-ORDER", structlint.ERROR, 1),
	})

	before := reporter.Finalize()
	reporter.Add("a.py", []structlint.Violation{
		violationAt("IMPORT-ORDER", structlint.ERROR, 7),
	})

	if len(before.Diagnostics["a.py"]) != 1 {
		t.Errorf("snapshot has %d diagnostics, want 1", len(before.Diagnostics["a.py"]))
	}
	after := reporter.Finalize()
	if len(after.Diagnostics["a.py"]) != 2 {
		t.Errorf("second report has %d diagnostics, want 2", len(after.Diagnostics["a.py"]))
	}
}

func TestReporter_ConcurrentAdd(t *testing.T) {
	reporter := NewReporter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			reporter.Add("shared.py", []structlint.Violation{
				violationAt("TRAILING-WHITESPACE", structlint.ERROR, n+1),
			})
		}(i)
	}
	wg.Wait()

	report := reporter.Finalize()
	if got := len(report.Diagnostics["shared.py"]); got != 50 {
		t.Errorf("shared.py has %d diagnostics, want 50", got)
	}
}
