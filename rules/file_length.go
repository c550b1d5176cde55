package rules

import (
	"fmt"
	"strings"

	"github.com/mlindh/structlint/structlint"
)

// DefaultMaxLines is the default maximum number of code lines per file,
// excluding blank and comment-only lines.
const DefaultMaxLines = 380

// FileLengthRule flags files whose code-line count exceeds a budget.
// Blank lines and comment-only lines do not count against the budget.
type FileLengthRule struct {
	structlint.DefaultRule
	commentPrefixes []string
}

// NewFileLengthRule returns a new FileLengthRule.
func NewFileLengthRule() *FileLengthRule {
	return &FileLengthRule{
		commentPrefixes: []string{"#", "//"},
	}
}

// Name returns the rule name.
func (r *FileLengthRule) Name() string {
	return "file_length"
}

// Severity returns WARNING; an oversized file is advisory, not blocking.
func (r *FileLengthRule) Severity() structlint.Severity {
	return structlint.WARNING
}

// Link returns the rule documentation URL.
func (r *FileLengthRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/file_length.md"
}

// Check runs the rule against the file under check.
func (r *FileLengthRule) Check(runner structlint.Runner) error {
	var config struct {
		MaxLines        int      `hcl:"max_lines,optional"`
		CommentPrefixes []string `hcl:"comment_prefixes,optional"`
	}
	if err := runner.DecodeRuleConfig(r.Name(), &config); err != nil {
		return err
	}
	maxLines := DefaultMaxLines
	if config.MaxLines > 0 {
		maxLines = config.MaxLines
	}
	commentPrefixes := r.commentPrefixes
	if len(config.CommentPrefixes) > 0 {
		commentPrefixes = config.CommentPrefixes
	}

	view := runner.File()
	codeLines := 0
	for _, line := range view.Lines {
		if line.IsBlank() {
			continue
		}
		trimmed := strings.TrimLeft(line.Content, " \t")
		if hasAnyPrefix(trimmed, commentPrefixes) {
			continue
		}
		codeLines++
	}

	if codeLines <= maxLines {
		return nil
	}
	return runner.EmitViolation(r, structlint.CodeFileTooLong,
		fmt.Sprintf("file has %d code lines (max %d, excluding comments and blank lines)", codeLines, maxLines),
		view.LineRange(1))
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
