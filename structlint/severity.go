// Package structlint provides the core vocabulary of the structural
// style-compliance engine.
//
// This package contains the types and interfaces shared by the engine,
// the builtin ruleset, and external ruleset plugins. The naming and
// structure follow the conventions of lint plugin SDKs for ecosystem
// familiarity.
//
// Key types:
//   - Severity: violation severity levels (ERROR, WARNING, NOTICE)
//   - Violation: one structural finding with its diagnostic code and range
//   - DefaultRule: embeddable struct providing default Rule method implementations
//   - Rule: interface implemented by each structural check
//   - Runner: interface providing file access and violation emission
//   - RuleSet: interface for rule registration and enumeration
//   - BuiltinRuleSet: embeddable struct providing default RuleSet implementations
package structlint

// Severity represents the severity level of a violation.
type Severity int

const (
	// ERROR indicates a violation that fails the overall report.
	ERROR Severity = iota + 1
	// WARNING indicates a violation that is reported but does not fail
	// the report.
	WARNING
	// NOTICE indicates an informational finding.
	NOTICE
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARNING:
		return "WARNING"
	case NOTICE:
		return "NOTICE"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity string. Unknown values default to
// WARNING so a misspelled override never silently upgrades a finding
// to ERROR.
func ParseSeverity(s string) Severity {
	switch s {
	case "error", "ERROR":
		return ERROR
	case "warning", "WARNING", "warn":
		return WARNING
	case "notice", "NOTICE", "info":
		return NOTICE
	default:
		return WARNING
	}
}
