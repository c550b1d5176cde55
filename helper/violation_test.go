package helper

import (
	"testing"

	"github.com/hashicorp/hcl/v2"

	"github.com/mlindh/structlint/structlint"
)

func TestAssertViolations_OrderIndependent(t *testing.T) {
	a := structlint.Violation{
		Code: "A", Rule: "r", Severity: structlint.ERROR, Message: "first",
		Range: hcl.Range{Filename: "t.py", Start: hcl.Pos{Line: 1, Column: 1}, End: hcl.Pos{Line: 1, Column: 2}},
	}
	b := structlint.Violation{
		Code: "B", Rule: "r", Severity: structlint.ERROR, Message: "second",
		Range: hcl.Range{Filename: "t.py", Start: hcl.Pos{Line: 2, Column: 1}, End: hcl.Pos{Line: 2, Column: 2}},
	}

	AssertViolations(t, []structlint.Violation{a, b}, []structlint.Violation{b, a})
}

func TestAssertViolations_IgnoresBytePositions(t *testing.T) {
	want := structlint.Violation{
		Code: "A", Rule: "r", Severity: structlint.ERROR, Message: "m",
		Range: hcl.Range{Filename: "t.py", Start: hcl.Pos{Line: 1, Column: 1}, End: hcl.Pos{Line: 1, Column: 2}},
	}
	got := want
	got.Range.Start.Byte = 42
	got.Range.End.Byte = 43

	AssertViolations(t, []structlint.Violation{want}, []structlint.Violation{got})
}

func TestAssertViolationsWithoutRange(t *testing.T) {
	want := structlint.Violation{Code: "A", Rule: "r", Severity: structlint.ERROR, Message: "m"}
	got := want
	got.Range = hcl.Range{Filename: "t.py", Start: hcl.Pos{Line: 9, Column: 9}}

	AssertViolationsWithoutRange(t, []structlint.Violation{want}, []structlint.Violation{got})
}

func TestAssertNoViolations_Empty(t *testing.T) {
	AssertNoViolations(t, nil)
	AssertNoViolations(t, []structlint.Violation{})
}
