package lp

import "fmt"

// DiagKind classifies an advisory diagnostic. Diagnostics never fail a
// parse; they are informational, the way the teacher's -warn flag surfaces
// unused-symbol advisories without rejecting the file.
type DiagKind int

const (
	// DiagTypeBoundConflict fires when a type declaration overrides bounds
	// set by an earlier declaration (e.g. Binary after an explicit upper).
	DiagTypeBoundConflict DiagKind = iota
	// DiagZeroCoefficient fires on an explicit zero coefficient.
	DiagZeroCoefficient
	// DiagSOSSkipped fires when an SOS set repeats a weight; the set is
	// still recorded with every entry.
	DiagSOSSkipped
	// DiagUnparsedRegion fires when a section leaves unparsed trailing
	// content behind, mirroring the original's log_unparsed_content.
	DiagUnparsedRegion
)

// Diagnostic is a single advisory emitted during a parse.
type Diagnostic struct {
	Kind    DiagKind
	Offset  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("lp: warning: %s (offset %d)", d.Message, d.Offset)
}

// DiagnosticSink receives advisory diagnostics during a parse. A nil sink
// discards all diagnostics.
type DiagnosticSink interface {
	Diagnose(Diagnostic)
}

// DiagnosticFunc adapts a function to a DiagnosticSink.
type DiagnosticFunc func(Diagnostic)

func (f DiagnosticFunc) Diagnose(d Diagnostic) { f(d) }

// CollectingSink accumulates diagnostics in order, for callers (such as
// cmd/lpvet) that want to inspect them after a parse completes.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (s *CollectingSink) Diagnose(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}
