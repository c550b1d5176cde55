// Package rules provides the builtin structural ruleset.
//
// Each rule checks one structural property of a scanned file: the
// composition of leading whitespace, trailing whitespace, the final
// terminator, the ordering of import statements, the code-line budget,
// and the uniformity of line endings. Rules operate on the FileView
// produced by the source package and never parse language syntax.
package rules

import (
	"github.com/mlindh/structlint/structlint"
)

// RuleSetVersion is the version of the builtin ruleset.
const RuleSetVersion = "0.1.0"

// NewRuleSet returns the builtin ruleset with all structural rules
// registered. cfg may be nil; it is consulted for the import order
// rule's stdlib partition. Call ApplyGlobalConfig (the engine does this)
// before asking for enabled rules.
func NewRuleSet(cfg *structlint.Config) *structlint.BuiltinRuleSet {
	return &structlint.BuiltinRuleSet{
		Name:    "structlint",
		Version: RuleSetVersion,
		Rules: []structlint.Rule{
			NewIndentationConsistencyRule(),
			NewTrailingWhitespaceRule(),
			NewFinalNewlineRule(),
			NewImportOrderRule(cfg),
			NewFileLengthRule(),
			NewLineEndingsRule(),
		},
	}
}
