package rules

import (
	"fmt"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// LineEndingsRule flags files that mix LF and CRLF terminators. The
// violation is reported at the first line whose terminator differs from
// the file's first terminated line.
type LineEndingsRule struct {
	structlint.DefaultRule
}

// NewLineEndingsRule returns a new LineEndingsRule.
func NewLineEndingsRule() *LineEndingsRule {
	return &LineEndingsRule{}
}

// Name returns the rule name.
func (r *LineEndingsRule) Name() string {
	return "line_endings"
}

// Severity returns WARNING; mixed endings are usually a tooling artifact
// rather than a blocking defect.
func (r *LineEndingsRule) Severity() structlint.Severity {
	return structlint.WARNING
}

// Link returns the rule documentation URL.
func (r *LineEndingsRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/line_endings.md"
}

// Check runs the rule against the file under check.
func (r *LineEndingsRule) Check(runner structlint.Runner) error {
	view := runner.File()

	first := source.TermNone
	lfCount, crlfCount := 0, 0
	var mixedAt *source.PhysicalLine

	for _, line := range view.Lines {
		switch line.Terminator {
		case source.TermLF:
			lfCount++
		case source.TermCRLF:
			crlfCount++
		default:
			continue
		}
		if first == source.TermNone {
			first = line.Terminator
			continue
		}
		if line.Terminator != first && mixedAt == nil {
			mixedAt = line
		}
	}

	if mixedAt == nil {
		return nil
	}
	return runner.EmitViolation(r, structlint.CodeMixedLineEndings,
		fmt.Sprintf("mixed line endings: %d CRLF, %d LF", crlfCount, lfCount),
		view.LineRange(mixedAt.Index))
}
