package structlint

import "github.com/hashicorp/hcl/v2"

// Diagnostic codes emitted by the builtin ruleset and the engine.
// Violations carry one of these in their Code field; report counts are
// keyed by code.
const (
	// CodeMixedIndentSameLine flags a leading-whitespace run mixing tabs
	// and spaces on a single line.
	CodeMixedIndentSameLine = "MIXED-INDENT-SAME-LINE"
	// CodeMixedIndentBlock flags a line whose indentation kind conflicts
	// with the kind established for its enclosing block.
	CodeMixedIndentBlock = "MIXED-INDENT-BLOCK"
	// CodeTrailingWhitespace flags space/tab characters before a line
	// terminator.
	CodeTrailingWhitespace = "TRAILING-WHITESPACE"
	// CodeMissingFinalNewline flags a non-empty file whose last line has
	// no terminator.
	CodeMissingFinalNewline = "MISSING-FINAL-NEWLINE"
	// CodeImportOrder flags import statements out of group or
	// alphabetical order.
	CodeImportOrder = "IMPORT-ORDER"
	// CodeFileTooLong flags a file exceeding its code-line budget.
	CodeFileTooLong = "FILE-TOO-LONG"
	// CodeMixedLineEndings flags a file containing both LF and CRLF
	// terminators.
	CodeMixedLineEndings = "MIXED-LINE-ENDINGS"
	// CodeRuleInternalError records a rule that faulted while checking a
	// file. Emitted by the engine, never by rules themselves.
	CodeRuleInternalError = "RULE-INTERNAL-ERROR"
	// CodeScanError records a file whose content could not be scanned.
	CodeScanError = "SCAN-ERROR"
)

// Violation is one structural finding. Immutable once created.
//
// The Range always references a line that exists in the originating
// FileView; whole-file findings use line 1.
type Violation struct {
	// Code is the diagnostic code, one of the Code* constants for
	// builtin rules.
	Code string
	// Rule is the name of the rule that emitted the violation.
	Rule string
	// Severity is the effective severity after any configured override.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Range is the source location, with 1-based line and column.
	Range hcl.Range
}
