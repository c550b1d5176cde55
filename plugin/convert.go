// Package plugin provides the entry point for structlint ruleset plugins.
//
// This file contains the wire types shipped across the plugin boundary
// and their conversions to and from the native structlint types.

package plugin

import (
	"github.com/mlindh/structlint/structlint"
)

// WireConfig mirrors structlint.Config with only the fields that
// serialize across the plugin boundary. Rule config HCL bodies are not
// shipped; plugins decode their own configuration host-side before the
// config is converted.
type WireConfig struct {
	Rules             map[string]WireRuleConfig
	DisabledByDefault bool
	Only              []string
	SeverityOverrides map[string]structlint.Severity
	StdlibModules     []string
}

// WireRuleConfig mirrors structlint.RuleConfig without the HCL body.
type WireRuleConfig struct {
	Name    string
	Enabled bool
}

// toWireConfig converts structlint.Config to its wire form.
func toWireConfig(config *structlint.Config) *WireConfig {
	if config == nil {
		return nil
	}

	rules := make(map[string]WireRuleConfig, len(config.Rules))
	for name, ruleConfig := range config.Rules {
		rules[name] = WireRuleConfig{
			Name:    ruleConfig.Name,
			Enabled: ruleConfig.Enabled,
		}
	}

	return &WireConfig{
		Rules:             rules,
		DisabledByDefault: config.DisabledByDefault,
		Only:              config.Only,
		SeverityOverrides: config.SeverityOverrides,
		StdlibModules:     config.StdlibModules,
	}
}

// fromWireConfig converts a wire config back to structlint.Config.
func fromWireConfig(config *WireConfig) *structlint.Config {
	if config == nil {
		return nil
	}

	rules := make(map[string]*structlint.RuleConfig, len(config.Rules))
	for name, ruleConfig := range config.Rules {
		rules[name] = &structlint.RuleConfig{
			Name:    ruleConfig.Name,
			Enabled: ruleConfig.Enabled,
			// Body is not shipped across the boundary
		}
	}

	return &structlint.Config{
		Rules:             rules,
		DisabledByDefault: config.DisabledByDefault,
		Only:              config.Only,
		SeverityOverrides: config.SeverityOverrides,
		StdlibModules:     config.StdlibModules,
	}
}
