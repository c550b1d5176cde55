package rules

import (
	"testing"

	"github.com/mlindh/structlint/helper"
	"github.com/mlindh/structlint/structlint"
)

func TestFinalNewline_Terminated(t *testing.T) {
	runner := helper.TestRunner(t, "main.py", "x = 1\n", nil)
	if err := NewFinalNewlineRule().Check(runner); err != nil {
		t.Fatal(err)
	}
	helper.AssertNoViolations(t, runner.Violations)
}

func TestFinalNewline_CRLFTerminated(t *testing.T) {
	runner := helper.TestRunner(t, "main.py", "x = 1\r\n", nil)
	if err := NewFinalNewlineRule().Check(runner); err != nil {
		t.Fatal(err)
	}
	helper.AssertNoViolations(t, runner.Violations)
}

func TestFinalNewline_Missing(t *testing.T) {
	runner := helper.TestRunner(t, "main.py", "x = 1\ny = 2", nil)
	if err := NewFinalNewlineRule().Check(runner); err != nil {
		t.Fatal(err)
	}

	helper.AssertViolationsWithoutRange(t, []structlint.Violation{
		{
			Code:     structlint.CodeMissingFinalNewline,
			Rule:     "final_newline",
			Severity: structlint.ERROR,
			Message:  "file does not end with a newline",
		},
	}, runner.Violations)

	if len(runner.Violations) == 1 {
		if got := runner.Violations[0].Range.Start.Line; got != 2 {
			t.Errorf("violation at line %d, want 2", got)
		}
	}
}

// An empty file has nothing to terminate.
func TestFinalNewline_EmptyFile(t *testing.T) {
	runner := helper.TestRunner(t, "main.py", "", nil)
	if err := NewFinalNewlineRule().Check(runner); err != nil {
		t.Fatal(err)
	}
	helper.AssertNoViolations(t, runner.Violations)
}
