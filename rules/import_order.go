package rules

import (
	"fmt"
	"strings"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// ImportKind classifies an import statement by the origin of the module
// it names.
type ImportKind int

const (
	// KindStdlib is a standard-library module.
	KindStdlib ImportKind = iota
	// KindThirdParty is an external package.
	KindThirdParty
	// KindLocal is a relative import (module name starting with a dot).
	KindLocal
)

// String returns the human-readable group name.
func (k ImportKind) String() string {
	switch k {
	case KindStdlib:
		return "stdlib"
	case KindThirdParty:
		return "third-party"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

// ImportStatement is one recognized import line.
type ImportStatement struct {
	// Line is the 1-based line index of the statement.
	Line int
	// Module is the first module name the statement imports.
	Module string
	// Kind is the statement's classification.
	Kind ImportKind
}

// ImportOrderRule validates that import statements are grouped
// (stdlib, then third-party, then local) and alphabetically ordered
// within each group.
//
// Statements are recognized by prefix match, not by parsing. Scanning
// stops at the first line that is neither an import, a blank line, a
// comment, nor a docstring delimiter, so imports placed below real code
// are out of the rule's jurisdiction.
type ImportOrderRule struct {
	structlint.DefaultRule
	stdlib map[string]struct{}
}

// importOrderConfig is the rule-specific configuration decoded from the
// rule's HCL body.
type importOrderConfig struct {
	// Prefixes replaces the recognized import statement prefixes.
	Prefixes []string `hcl:"prefixes,optional"`
	// ExtraStdlibModules extends the stdlib partition.
	ExtraStdlibModules []string `hcl:"extra_stdlib_modules,optional"`
}

var defaultImportPrefixes = []string{"import ", "from "}

// NewImportOrderRule returns a new ImportOrderRule. When
// cfg.StdlibModules is non-empty it replaces the default known-stdlib
// name set; otherwise the bundled Python stdlib table is used.
func NewImportOrderRule(cfg *structlint.Config) *ImportOrderRule {
	r := &ImportOrderRule{stdlib: make(map[string]struct{})}
	if cfg != nil && len(cfg.StdlibModules) > 0 {
		for _, name := range cfg.StdlibModules {
			r.stdlib[name] = struct{}{}
		}
	} else {
		for name := range pythonStdlib {
			r.stdlib[name] = struct{}{}
		}
	}
	return r
}

// Name returns the rule name.
func (r *ImportOrderRule) Name() string {
	return "import_order"
}

// Link returns the rule documentation URL.
func (r *ImportOrderRule) Link() string {
	return "https://github.com/mlindh/structlint/blob/main/docs/rules/import_order.md"
}

// Check runs the rule against the file under check.
func (r *ImportOrderRule) Check(runner structlint.Runner) error {
	var config importOrderConfig
	if err := runner.DecodeRuleConfig(r.Name(), &config); err != nil {
		return err
	}
	prefixes := defaultImportPrefixes
	if len(config.Prefixes) > 0 {
		prefixes = config.Prefixes
	}
	stdlib := r.stdlib
	if len(config.ExtraStdlibModules) > 0 {
		stdlib = make(map[string]struct{}, len(r.stdlib)+len(config.ExtraStdlibModules))
		for name := range r.stdlib {
			stdlib[name] = struct{}{}
		}
		for _, name := range config.ExtraStdlibModules {
			stdlib[name] = struct{}{}
		}
	}

	view := runner.File()
	imports := collectImports(view, prefixes, stdlib)

	for i := 0; i+1 < len(imports); i++ {
		prev, next := imports[i], imports[i+1]
		switch {
		case next.Kind < prev.Kind:
			err := runner.EmitViolation(r, structlint.CodeImportOrder,
				fmt.Sprintf("%s import %q after %s import %q; expected order: stdlib, third-party, local",
					next.Kind, next.Module, prev.Kind, prev.Module),
				view.LineRange(next.Line))
			if err != nil {
				return err
			}
		case next.Kind == prev.Kind && prev.Module > next.Module:
			// Exact duplicates are left in original relative order.
			err := runner.EmitViolation(r, structlint.CodeImportOrder,
				fmt.Sprintf("import %q should come before %q", next.Module, prev.Module),
				view.LineRange(next.Line))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// collectImports gathers recognized import statements in file order,
// skipping blank lines, comments, and docstring delimiters, and stopping
// at the first real statement.
func collectImports(view *source.FileView, prefixes []string, stdlib map[string]struct{}) []ImportStatement {
	var imports []ImportStatement
	for _, line := range view.Lines {
		trimmed := strings.TrimSpace(line.Content)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if isDocstringDelimiter(trimmed) {
			continue
		}
		module, ok := parseImport(trimmed, prefixes)
		if !ok {
			break
		}
		imports = append(imports, ImportStatement{
			Line:   line.Index,
			Module: module,
			Kind:   classifyModule(module, stdlib),
		})
	}
	return imports
}

// parseImport extracts the first module name from an import-like line.
func parseImport(trimmed string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		rest, ok := strings.CutPrefix(trimmed, prefix)
		if !ok {
			continue
		}
		// The first token names the module; tolerate trailing commas and
		// semicolon-joined statements.
		rest = strings.TrimLeft(rest, " \t")
		end := strings.IndexAny(rest, " \t,;")
		if end >= 0 {
			rest = rest[:end]
		}
		if rest == "" {
			continue
		}
		return rest, true
	}
	return "", false
}

// classifyModule partitions a module name into stdlib, third-party, or
// local. Classification looks at the top-level package name only.
func classifyModule(module string, stdlib map[string]struct{}) ImportKind {
	if strings.HasPrefix(module, ".") {
		return KindLocal
	}
	top := module
	if i := strings.IndexByte(top, '.'); i >= 0 {
		top = top[:i]
	}
	if _, ok := stdlib[top]; ok {
		return KindStdlib
	}
	return KindThirdParty
}

func isDocstringDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") ||
		strings.HasSuffix(trimmed, `"""`) || strings.HasSuffix(trimmed, "'''")
}
