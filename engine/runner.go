package engine

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// FileRunner is the concrete structlint.Runner used by the engine: it
// exposes one immutable FileView to rules and collects the violations
// they emit. A fresh FileRunner is built per (rule, file) pair so a
// faulting rule can never leak partial results.
type FileRunner struct {
	view       *source.FileView
	config     *structlint.Config
	violations []structlint.Violation
}

// Ensure FileRunner implements structlint.Runner.
var _ structlint.Runner = (*FileRunner)(nil)

// NewFileRunner returns a runner over view. config may be nil.
func NewFileRunner(view *source.FileView, config *structlint.Config) *FileRunner {
	return &FileRunner{view: view, config: config}
}

// File returns the scanned view of the file under check.
func (r *FileRunner) File() *source.FileView {
	return r.view
}

// EmitViolation records a finding. The severity is the rule's default
// unless the configuration overrides it; overrides never change
// detection, only reporting.
func (r *FileRunner) EmitViolation(rule structlint.Rule, code, message string, issueRange hcl.Range) error {
	severity := rule.Severity()
	if r.config != nil {
		if override, ok := r.config.SeverityOverrides[rule.Name()]; ok {
			severity = override
		}
	}
	r.violations = append(r.violations, structlint.Violation{
		Code:     code,
		Rule:     rule.Name(),
		Severity: severity,
		Message:  message,
		Range:    issueRange,
	})
	return nil
}

// DecodeRuleConfig decodes the rule's HCL configuration body into
// target. Does nothing when no body is configured for the rule.
func (r *FileRunner) DecodeRuleConfig(ruleName string, target any) error {
	if r.config == nil {
		return nil
	}
	ruleConfig, ok := r.config.Rules[ruleName]
	if !ok || ruleConfig.Body == nil {
		return nil
	}
	if diags := gohcl.DecodeBody(ruleConfig.Body, nil, target); diags.HasErrors() {
		return diags
	}
	return nil
}

// Violations returns the findings collected so far, in emission order.
func (r *FileRunner) Violations() []structlint.Violation {
	return r.violations
}
