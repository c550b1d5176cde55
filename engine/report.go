package engine

import (
	"sync"

	"github.com/mlindh/structlint/structlint"
)

// Diagnostic is a violation bound to its originating file path, ready
// for reporting. Immutable once created.
type Diagnostic struct {
	// Path identifies the originating file.
	Path string
	structlint.Violation
}

// Report is the aggregate result of a run.
type Report struct {
	// Passed is false iff any diagnostic has severity ERROR.
	Passed bool
	// Diagnostics maps file paths to their diagnostics in detection order.
	Diagnostics map[string][]Diagnostic
	// Counts maps diagnostic codes to the number of occurrences.
	Counts map[string]int
}

// TotalViolations returns the number of diagnostics across all files.
func (r *Report) TotalViolations() int {
	total := 0
	for _, count := range r.Counts {
		total += count
	}
	return total
}

// Reporter accumulates diagnostics across files. Add may be called from
// any number of goroutines; each call is one exclusive-access critical
// section, so per-file detection order is preserved.
type Reporter struct {
	mu          sync.Mutex
	diagnostics map[string][]Diagnostic
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{diagnostics: make(map[string][]Diagnostic)}
}

// Add records the violations detected for one file. Paths with zero
// violations are still recorded so the report lists every checked file.
func (r *Reporter) Add(path string, violations []structlint.Violation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	diagnostics := r.diagnostics[path]
	for _, violation := range violations {
		diagnostics = append(diagnostics, Diagnostic{Path: path, Violation: violation})
	}
	r.diagnostics[path] = diagnostics
}

// Finalize computes the aggregate report. The Reporter can keep
// accumulating afterwards; Finalize snapshots the state at call time.
func (r *Reporter) Finalize() *Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := &Report{
		Passed:      true,
		Diagnostics: make(map[string][]Diagnostic, len(r.diagnostics)),
		Counts:      make(map[string]int),
	}
	for path, diagnostics := range r.diagnostics {
		report.Diagnostics[path] = append([]Diagnostic(nil), diagnostics...)
		for _, diagnostic := range diagnostics {
			report.Counts[diagnostic.Code]++
			if diagnostic.Severity == structlint.ERROR {
				report.Passed = false
			}
		}
	}
	return report
}
