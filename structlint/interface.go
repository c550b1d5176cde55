package structlint

// Rule is the interface that all structural checks implement.
//
// Rule authors typically embed DefaultRule to get default implementations
// for Enabled() and Severity(), then implement the remaining methods.
//
// Example:
//
//	type MyRule struct {
//	    structlint.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "my_rule" }
//	func (r *MyRule) Link() string { return "https://example.com/my_rule" }
//	func (r *MyRule) Check(runner structlint.Runner) error {
//	    view := runner.File()
//	    for _, line := range view.Lines {
//	        // Inspect structural properties and emit violations
//	    }
//	    return nil
//	}
type Rule interface {
	// Name returns the unique name of the rule.
	// Convention: lowercase with underscores (e.g., "trailing_whitespace").
	Name() string

	// Enabled returns whether the rule is enabled by default.
	// Most rules return true; embed DefaultRule for this behavior.
	Enabled() bool

	// Severity returns the default severity for violations.
	// Most rules return ERROR; embed DefaultRule for this behavior.
	Severity() Severity

	// Link returns a URL to documentation about the rule.
	// Should explain what the rule checks and how to resolve violations.
	Link() string

	// Check executes the rule against the file accessible via runner.
	// Call runner.EmitViolation() for each finding.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// RuleSet is a collection of rules checked together. The builtin ruleset
// and external ruleset plugins both satisfy this interface; plugins
// typically embed BuiltinRuleSet and override methods as needed.
//
// Example:
//
//	type MyRuleSet struct {
//	    structlint.BuiltinRuleSet
//	}
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &MyRuleSet{
//	            BuiltinRuleSet: structlint.BuiltinRuleSet{
//	                Name:    "myrules",
//	                Version: "0.1.0",
//	                Rules:   []structlint.Rule{&MyRule{}},
//	            },
//	        },
//	    })
//	}
type RuleSet interface {
	// RuleSetName returns the name of the ruleset (e.g., "structlint").
	RuleSetName() string

	// RuleSetVersion returns the version of the ruleset (e.g., "0.1.0").
	RuleSetVersion() string

	// RuleNames returns the names of all rules in this ruleset.
	RuleNames() []string

	// VersionConstraint returns the host version constraint (e.g., ">= 0.1.0").
	VersionConstraint() string

	// ApplyGlobalConfig applies the global engine configuration,
	// resolving per-rule enablement and severity overrides.
	ApplyGlobalConfig(*Config) error

	// NewRunner optionally wraps the runner with custom behavior.
	// Return the runner unchanged if no customization is needed.
	NewRunner(Runner) (Runner, error)

	// BuiltinImpl returns the embedded BuiltinRuleSet.
	// Used internally for rule iteration.
	BuiltinImpl() *BuiltinRuleSet
}
