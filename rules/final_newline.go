package rules

import (
	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// FinalNewlineRule flags a non-empty file whose last physical line
// carries no terminator. Empty files are exempt (nothing to terminate).
type FinalNewlineRule struct {
	structlint.DefaultRule
}

// NewFinalNewlineRule returns a new FinalNewlineRule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{}
}

// Name returns the rule name.
func (r *FinalNewlineRule) Name() string {
	return "final_newline"
}

// Link returns the rule documentation URL.
func (r *FinalNewlineRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/final_newline.md"
}

// Check runs the rule against the file under check.
func (r *FinalNewlineRule) Check(runner structlint.Runner) error {
	view := runner.File()
	if view.LineCount() == 0 {
		return nil
	}
	last := view.Line(view.LineCount())
	if last.Terminator != source.TermNone {
		return nil
	}
	return runner.EmitViolation(r, structlint.CodeMissingFinalNewline,
		"file does not end with a newline",
		view.LineRange(last.Index))
}
