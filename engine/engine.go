// Package engine runs rulesets over scanned files and aggregates the
// results into a report.
//
// The engine is the core described by the external API surface:
//
//	eng, err := engine.New(rules.NewRuleSet(cfg), cfg)
//	report := eng.Run([]engine.Input{{Path: "a.py", Content: raw}})
//
// Files are independent scan units checked in parallel; within one file
// rules run sequentially against the same read-only FileView. Violations
// are stable-sorted by (line, code, column) before aggregation, so the
// final diagnostic order never depends on scheduling. A faulting rule
// degrades to a single RULE-INTERNAL-ERROR diagnostic and a file that
// fails to scan degrades to a single SCAN-ERROR diagnostic; neither
// aborts the run.
package engine

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// Input is one unit of work for Run: a path identifier and the already
// loaded raw bytes. Reading files from disk is the collaborator's
// responsibility; the engine performs no I/O.
type Input struct {
	Path    string
	Content []byte
}

// Engine owns an ordered ruleset and evaluates it against file views.
type Engine struct {
	ruleset     *structlint.BuiltinRuleSet
	config      *structlint.Config
	logger      hclog.Logger
	metrics     *Metrics
	parallelism int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics attaches engine metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(e *Engine) { e.metrics = metrics }
}

// WithParallelism bounds the number of files checked concurrently.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// New returns an Engine for the given ruleset and configuration.
// config may be nil; it is applied to the ruleset before the first
// check, resolving enablement and severity overrides.
func New(ruleset *structlint.BuiltinRuleSet, config *structlint.Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		ruleset:     ruleset,
		config:      config,
		logger:      hclog.NewNullLogger(),
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := ruleset.ApplyGlobalConfig(config); err != nil {
		return nil, fmt.Errorf("applying config: %w", err)
	}
	return e, nil
}

// CheckFile evaluates every enabled rule against view and returns the
// combined violations, stable-sorted by (line, code, column). Running
// CheckFile twice on the same view yields identical sequences.
func (e *Engine) CheckFile(view *source.FileView) []structlint.Violation {
	start := time.Now()
	var violations []structlint.Violation
	for _, rule := range e.ruleset.EnabledRules() {
		violations = append(violations, e.checkRule(rule, view)...)
	}
	sortViolations(violations)

	if e.metrics != nil {
		e.metrics.observeCheck(time.Since(start), violations)
	}
	e.logger.Debug("checked file",
		"path", view.Path, "lines", view.LineCount(), "violations", len(violations))
	return violations
}

// checkRule runs one rule in isolation. A panic or an error from the
// rule becomes exactly one RULE-INTERNAL-ERROR at line 1, discarding the
// rule's partial output so sibling rules are unaffected.
func (e *Engine) checkRule(rule structlint.Rule, view *source.FileView) (violations []structlint.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("rule panicked",
				"rule", rule.Name(), "path", view.Path, "panic", rec)
			violations = []structlint.Violation{e.internalError(rule.Name(), view, fmt.Sprintf("%v", rec))}
		}
	}()

	runner := NewFileRunner(view, e.config)
	if err := rule.Check(runner); err != nil {
		e.logger.Error("rule failed",
			"rule", rule.Name(), "path", view.Path, "error", err)
		return []structlint.Violation{e.internalError(rule.Name(), view, err.Error())}
	}
	return runner.Violations()
}

func (e *Engine) internalError(ruleName string, view *source.FileView, detail string) structlint.Violation {
	if e.metrics != nil {
		e.metrics.RuleFailuresTotal.WithLabelValues(ruleName).Inc()
	}
	pos := hcl.Pos{Line: 1, Column: 1, Byte: 0}
	return structlint.Violation{
		Code:     structlint.CodeRuleInternalError,
		Rule:     ruleName,
		Severity: structlint.ERROR,
		Message:  fmt.Sprintf("rule %s failed: %s", ruleName, detail),
		Range:    hcl.Range{Filename: view.Path, Start: pos, End: pos},
	}
}

// Run scans and checks every input, fanning files out over a bounded
// worker group, and returns the aggregate report. Run never fails as a
// whole: a file whose content cannot be scanned contributes a single
// SCAN-ERROR diagnostic and the batch continues.
func (e *Engine) Run(inputs []Input) *Report {
	reporter := NewReporter()
	var group errgroup.Group
	group.SetLimit(e.parallelism)

	for _, input := range inputs {
		input := input
		group.Go(func() error {
			reporter.Add(input.Path, e.runOne(input))
			return nil
		})
	}
	// Workers only report; none returns an error.
	_ = group.Wait()

	return reporter.Finalize()
}

func (e *Engine) runOne(input Input) []structlint.Violation {
	if e.metrics != nil {
		e.metrics.FilesCheckedTotal.Inc()
	}
	view, err := source.Scan(input.Content, input.Path)
	if err != nil {
		e.logger.Warn("scan failed", "path", input.Path, "error", err)
		pos := hcl.Pos{Line: 1, Column: 1, Byte: 0}
		return []structlint.Violation{{
			Code:     structlint.CodeScanError,
			Rule:     "scanner",
			Severity: structlint.ERROR,
			Message:  err.Error(),
			Range:    hcl.Range{Filename: input.Path, Start: pos, End: pos},
		}}
	}
	return e.CheckFile(view)
}

// sortViolations orders violations by line, then code, then column.
// The sort is stable so equal keys keep their detection order.
func sortViolations(violations []structlint.Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Range.Start.Line != b.Range.Start.Line {
			return a.Range.Start.Line < b.Range.Start.Line
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Range.Start.Column < b.Range.Start.Column
	})
}
