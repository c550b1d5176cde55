package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/mlindh/structlint/structlint"
)

// TrailingWhitespaceRule flags space/tab characters immediately before a
// line terminator. Pure per-line check with no cross-line state; lines
// consisting only of whitespace are flagged like any other.
type TrailingWhitespaceRule struct {
	structlint.DefaultRule
}

// NewTrailingWhitespaceRule returns a new TrailingWhitespaceRule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{}
}

// Name returns the rule name.
func (r *TrailingWhitespaceRule) Name() string {
	return "trailing_whitespace"
}

// Link returns the rule documentation URL.
func (r *TrailingWhitespaceRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/trailing_whitespace.md"
}

// Check runs the rule against the file under check.
func (r *TrailingWhitespaceRule) Check(runner structlint.Runner) error {
	view := runner.File()
	for _, line := range view.Lines {
		if line.TrailingWhitespace == 0 {
			continue
		}
		cols := utf8.RuneCountInString(line.Content)
		err := runner.EmitViolation(r, structlint.CodeTrailingWhitespace,
			fmt.Sprintf("trailing whitespace (%d characters)", line.TrailingWhitespace),
			view.ColumnRange(line.Index, cols-line.TrailingWhitespace+1, cols+1))
		if err != nil {
			return err
		}
	}
	return nil
}
