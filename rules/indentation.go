package rules

import (
	"fmt"
	"strings"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// IndentationConsistencyRule detects tab/space mixing in leading
// whitespace. It emits MIXED-INDENT-SAME-LINE when a single line's
// leading whitespace contains both kinds, and MIXED-INDENT-BLOCK when a
// line's indentation kind conflicts with the kind established for its
// enclosing block or for siblings at the same depth.
//
// The rule operates purely on leading whitespace. Content past the first
// non-whitespace character is never inspected, so whitespace inside
// string literals cannot trigger it.
type IndentationConsistencyRule struct {
	structlint.DefaultRule
	commentPrefixes []string
}

// indentLevel records one open indentation level: the literal width that
// established it, its whitespace kind, and the establishing line.
// reported suppresses repeated findings against the same level.
type indentLevel struct {
	width    int
	kind     byte
	line     int
	reported bool
}

// NewIndentationConsistencyRule returns a new IndentationConsistencyRule.
func NewIndentationConsistencyRule() *IndentationConsistencyRule {
	return &IndentationConsistencyRule{
		commentPrefixes: []string{"#", "//"},
	}
}

// Name returns the rule name.
func (r *IndentationConsistencyRule) Name() string {
	return "indentation_consistency"
}

// Link returns the rule documentation URL.
func (r *IndentationConsistencyRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/indentation_consistency.md"
}

// Check runs the rule against the file under check.
func (r *IndentationConsistencyRule) Check(runner structlint.Runner) error {
	var config struct {
		CommentPrefixes []string `hcl:"comment_prefixes,optional"`
	}
	if err := runner.DecodeRuleConfig(r.Name(), &config); err != nil {
		return err
	}
	commentPrefixes := r.commentPrefixes
	if len(config.CommentPrefixes) > 0 {
		commentPrefixes = config.CommentPrefixes
	}

	view := runner.File()
	var stack []indentLevel

	for _, line := range view.Lines {
		hasTab, hasSpace := line.IndentKinds()
		width := line.IndentWidth()

		// Rule (a): both kinds within one leading run. Checked on every
		// physical line, blank ones included; the kind is ambiguous, so
		// the line is excluded from depth tracking.
		if hasTab && hasSpace {
			if err := runner.EmitViolation(r, structlint.CodeMixedIndentSameLine,
				"indentation mixes tabs and spaces on the same line",
				view.ColumnRange(line.Index, 1, width+1)); err != nil {
				return err
			}
			continue
		}

		// Blank and comment-only lines never establish or close a level.
		if line.IsBlank() || isCommentOnly(line, commentPrefixes) {
			continue
		}

		if width == 0 {
			stack = stack[:0]
			continue
		}

		kind := byte(' ')
		if hasTab {
			kind = '\t'
		}

		// Close levels deeper than this line.
		var popped *indentLevel
		for len(stack) > 0 && stack[len(stack)-1].width > width {
			popped = &stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}

		switch {
		case len(stack) > 0 && stack[len(stack)-1].width == width:
			// Sibling at an open level.
			top := &stack[len(stack)-1]
			if top.kind != kind && !top.reported {
				top.reported = true
				if err := r.emitBlockViolation(runner, view, line, kind, top); err != nil {
					return err
				}
			}

		case popped != nil:
			// Dedent to a width matching no open level. The line
			// nominally belongs to the closed level; reopen it so later
			// siblings compare against it.
			if popped.kind != kind && !popped.reported {
				popped.reported = true
				if err := r.emitBlockViolation(runner, view, line, kind, popped); err != nil {
					return err
				}
			}
			stack = append(stack, *popped)

		default:
			// Indent establishing a deeper level.
			level := indentLevel{width: width, kind: kind, line: line.Index}
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind != kind && !top.reported {
					level.reported = true
					if err := r.emitBlockViolation(runner, view, line, kind, top); err != nil {
						return err
					}
				}
			}
			stack = append(stack, level)
		}
	}

	return nil
}

func (r *IndentationConsistencyRule) emitBlockViolation(runner structlint.Runner, view *source.FileView, line *source.PhysicalLine, kind byte, enclosing *indentLevel) error {
	return runner.EmitViolation(r, structlint.CodeMixedIndentBlock,
		fmt.Sprintf("line is indented with %s but the enclosing block established %s indentation at line %d",
			kindName(kind), kindName(enclosing.kind), enclosing.line),
		view.ColumnRange(line.Index, 1, line.IndentWidth()+1))
}

func kindName(kind byte) string {
	if kind == '\t' {
		return "tabs"
	}
	return "spaces"
}

func isCommentOnly(line *source.PhysicalLine, prefixes []string) bool {
	trimmed := strings.TrimLeft(line.Content, " \t")
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
