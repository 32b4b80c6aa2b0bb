package timon

import "github.com/spietras/timon-interpreter/internal/values"

// Value is the runtime value type produced by evaluation: one of Integer,
// String, Date, Time, DateTime, or Timedelta.
type Value = values.Value

// Result contains the outcome of evaluating a program.
type Result struct {
	// Value is the value carried by the program's `return`, or nil if the
	// program ran to completion without one.
	Value values.Value

	// Output accumulates everything the program wrote with `print`,
	// newline-separated.
	Output string

	// Diagnostics collects lexical warnings recovered during
	// evaluation (unclosed comments or strings, for example). A fatal
	// lexical, syntactic, or execution error is instead returned as the
	// error from Eval.
	Diagnostics []Diagnostic
}

// Diagnostic is a non-fatal issue surfaced alongside a successful Result.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Severity indicates how seriously a Diagnostic should be treated.
type Severity int

const (
	// Warning indicates a recovered issue that did not block evaluation.
	Warning Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}
