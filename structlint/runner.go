package structlint

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/mlindh/structlint/source"
)

// Runner provides access to the file under check during rule execution.
//
// Rules read-only borrow the FileView and report findings through
// EmitViolation. A rule may emit violations under more than one
// diagnostic code (the indentation rule distinguishes same-line mixing
// from block-level mixing), so the code is passed explicitly rather than
// derived from the rule name.
type Runner interface {
	// File returns the scanned view of the file under check.
	// The view is immutable and shared between rules; rules must not
	// modify it.
	File() *source.FileView

	// EmitViolation reports a finding from the rule. The severity is
	// resolved by the runner from the rule's default and any configured
	// override; detection logic never changes with severity.
	//
	// Example:
	//
	//	if line.TrailingWhitespace > 0 {
	//	    runner.EmitViolation(r, structlint.CodeTrailingWhitespace,
	//	        "trailing whitespace", view.LineRange(line.Index))
	//	}
	EmitViolation(rule Rule, code string, message string, issueRange hcl.Range) error

	// DecodeRuleConfig retrieves and decodes the rule's configuration.
	// The target should be a pointer to a struct with hcl tags.
	// Does nothing if no configuration is provided for the rule.
	//
	// Example:
	//
	//	type MyRuleConfig struct {
	//	    MaxLines int `hcl:"max_lines,optional"`
	//	}
	//	var config MyRuleConfig
	//	if err := runner.DecodeRuleConfig("my_rule", &config); err != nil {
	//	    return err
	//	}
	DecodeRuleConfig(ruleName string, target any) error
}
