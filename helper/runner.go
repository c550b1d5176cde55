// Package helper provides testing utilities for rule authors.
// Use TestRunner to test rules without running the engine.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    runner := helper.TestRunner(t, "main.py", "x = 1   \n", nil)
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertViolations(t, []structlint.Violation{
//	        {Code: structlint.CodeTrailingWhitespace, Rule: "my_rule"},
//	    }, runner.Violations)
//	}
package helper

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// Runner is a mock structlint.Runner for testing.
// Use TestRunner to create an instance.
type Runner struct {
	t      *testing.T
	view   *source.FileView
	config *structlint.Config
	// Violations contains all violations emitted during rule execution.
	Violations []structlint.Violation
}

// Ensure Runner implements structlint.Runner.
var _ structlint.Runner = (*Runner)(nil)

// TestRunner creates a new Runner over src for testing. config may be
// nil. The test fails immediately if src does not scan.
//
// Example:
//
//	runner := helper.TestRunner(t, "main.py", "import os\nimport sys\n", nil)
//	rule := rules.NewImportOrderRule(nil)
//	if err := rule.Check(runner); err != nil {
//	    t.Fatal(err)
//	}
//	helper.AssertNoViolations(t, runner.Violations)
func TestRunner(t *testing.T, path, src string, config *structlint.Config) *Runner {
	t.Helper()

	view, err := source.Scan([]byte(src), path)
	if err != nil {
		t.Fatalf("failed to scan %s: %s", path, err)
	}
	return &Runner{
		t:          t,
		view:       view,
		config:     config,
		Violations: make([]structlint.Violation, 0),
	}
}

// File returns the scanned view of the file under check.
func (r *Runner) File() *source.FileView {
	return r.view
}

// EmitViolation records a finding, resolving severity overrides the same
// way the engine runner does.
func (r *Runner) EmitViolation(rule structlint.Rule, code, message string, issueRange hcl.Range) error {
	severity := rule.Severity()
	if r.config != nil {
		if override, ok := r.config.SeverityOverrides[rule.Name()]; ok {
			severity = override
		}
	}
	r.Violations = append(r.Violations, structlint.Violation{
		Code:     code,
		Rule:     rule.Name(),
		Severity: severity,
		Message:  message,
		Range:    issueRange,
	})
	return nil
}

// DecodeRuleConfig decodes the rule's configuration body into target.
func (r *Runner) DecodeRuleConfig(ruleName string, target any) error {
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

// RuleConfigBody parses src as HCL and returns its body, for building
// rule configurations in tests.
//
// Example:
//
//	cfg := &structlint.Config{
//	    Rules: map[string]*structlint.RuleConfig{
//	        "file_length": {
//	            Name:    "file_length",
//	            Enabled: true,
//	            Body:    helper.RuleConfigBody(t, "max_lines = 10\n"),
//	        },
//	    },
//	}
func RuleConfigBody(t *testing.T, src string) hcl.Body {
	t.Helper()

	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "config.hcl")
	if diags.HasErrors() {
		t.Fatalf("failed to parse rule config: %s", diags.Error())
	}
	return file.Body
}
