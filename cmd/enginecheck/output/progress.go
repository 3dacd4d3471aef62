package output

import "math"

// ProgressReporter renders analysis progress on the console.
//
// It accumulates increments into a running percentage and prints ticks at
// detailed verbosity only, so piped or quiet output stays clean. It
// implements the analyzer's progress sink; reports can never fail the run.
type ProgressReporter struct {
	console *Console
	percent float64
}

// NewProgressReporter creates a progress reporter writing to console.
func NewProgressReporter(console *Console) *ProgressReporter {
	return &ProgressReporter{console: console}
}

// Report implements analyze.ProgressSink.
func (p *ProgressReporter) Report(increment float64, message string) {
	p.percent = math.Min(p.percent+increment, 100)
	p.console.Detail("[%3.0f%%] %s", p.percent, message)
}
