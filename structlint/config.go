package structlint

import "github.com/hashicorp/hcl/v2"

// Config represents the global engine configuration. It is consumed, not
// produced, by the core: the collaborator that owns configuration files
// parses them and hands the result in here. Treat as immutable once
// passed to the engine.
type Config struct {
	// Rules maps rule names to their configuration.
	Rules map[string]*RuleConfig
	// DisabledByDefault indicates if rules are disabled by default.
	// When true, rules must be explicitly enabled.
	DisabledByDefault bool
	// Only enables only these rules if set.
	// Takes precedence over individual rule configurations.
	Only []string
	// SeverityOverrides maps rule names to a severity replacing the
	// rule's default. Overrides change reporting, never detection.
	SeverityOverrides map[string]Severity
	// StdlibModules, when non-empty, replaces the default known-stdlib
	// name set used by the import order rule's classification.
	StdlibModules []string
	// PluginDir is the directory where ruleset plugins are installed.
	PluginDir string
}

// RuleConfig represents configuration for a single rule.
type RuleConfig struct {
	// Name is the rule name.
	Name string
	// Enabled indicates if the rule is enabled.
	Enabled bool
	// Body is the raw HCL body for rule-specific configuration.
	// Rules can decode this using runner.DecodeRuleConfig().
	Body hcl.Body
}
