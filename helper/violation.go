package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"

	"github.com/mlindh/structlint/structlint"
)

// AssertViolations compares expected and actual violations.
// It ignores violation order and byte positions in ranges.
//
// Example:
//
//	helper.AssertViolations(t, []structlint.Violation{
//	    {Code: structlint.CodeTrailingWhitespace, Rule: "trailing_whitespace", ...},
//	}, runner.Violations)
func AssertViolations(t *testing.T, want, got []structlint.Violation) {
	t.Helper()

	opts := []cmp.Option{
		// Ignore byte positions (only compare line/column)
		cmpopts.IgnoreFields(hcl.Pos{}, "Byte"),
		// Ignore violation order
		cmpopts.SortSlices(violationLess),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
}

// AssertViolationsWithoutRange compares violations ignoring the Range
// field entirely. Use this when exact source locations are not important
// for the test.
func AssertViolationsWithoutRange(t *testing.T, want, got []structlint.Violation) {
	t.Helper()

	opts := []cmp.Option{
		// Ignore Range field entirely
		cmpopts.IgnoreFields(structlint.Violation{}, "Range"),
		// Ignore violation order
		cmpopts.SortSlices(violationLess),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoViolations verifies that no violations were emitted.
func AssertNoViolations(t *testing.T, got []structlint.Violation) {
	t.Helper()
	if len(got) > 0 {
		t.Errorf("expected no violations, got %d:", len(got))
		for i, violation := range got {
			t.Errorf("  [%d] %s: %s", i, violation.Code, violation.Message)
		}
	}
}

func violationLess(a, b structlint.Violation) bool {
	if a.Range.Start.Line != b.Range.Start.Line {
		return a.Range.Start.Line < b.Range.Start.Line
	}
	if a.Code != b.Code {
		return a.Code < b.Code
	}
	return a.Message < b.Message
}
