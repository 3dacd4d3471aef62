package analyze

// ProgressSink receives coarse, advisory progress reports. Reports are
// fire-and-forget: implementations have no way to fail the analysis, which
// treats progress strictly as a side channel.
type ProgressSink interface {
	// Report adds increment percentage points of progress with a short
	// status message.
	Report(increment float64, message string)
}

// nullSink discards progress reports.
type nullSink struct{}

func (nullSink) Report(increment float64, message string) {}

// SinkFunc adapts a function to the ProgressSink interface.
type SinkFunc func(increment float64, message string)

// Report implements ProgressSink.
func (f SinkFunc) Report(increment float64, message string) {
	f(increment, message)
}
