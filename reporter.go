package gloss

// Reporter receives user-facing progress output from the pipelines.
// It is passed explicitly so the matching and chunking logic can be
// tested without capturing console state.
type Reporter interface {
	// Statusf reports transient progress (scanning, extracting).
	Statusf(format string, args ...any)

	// Infof reports a notable event (terms found, file written).
	Infof(format string, args ...any)

	// Warnf reports a recoverable per-item problem (skipped file,
	// unparseable model reply).
	Warnf(format string, args ...any)
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) Statusf(string, ...any) {}
func (NopReporter) Infof(string, ...any)   {}
func (NopReporter) Warnf(string, ...any)   {}
