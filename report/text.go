package report

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Config stores configuration of text reporter.
type Config struct {
	// DerivedMetrics enables printing latency and bandwidth next to raw counters.
	DerivedMetrics bool
}

// NewTextReporter creates reporter printing one field per line.
func NewTextReporter(w io.Writer, config Config) *TextReporter {
	return &TextReporter{
		w:      w,
		config: config,
	}
}

// TextReporter prints results in the format expected by spreadsheet post-processing.
type TextReporter struct {
	w              io.Writer
	config         Config
	ticksPerSecond uint64
}

// Start prints the banner.
func (tr *TextReporter) Start(_ context.Context, ticksPerSecond uint64) error {
	tr.ticksPerSecond = ticksPerSecond
	return tr.printf("Starting to pChase benchmark\nClock, 1 sec (%d ticks):\n", ticksPerSecond)
}

// Report prints measurement.
func (tr *TextReporter) Report(_ context.Context, m Measurement) error {
	if err := tr.printHeader(m); err != nil {
		return err
	}
	if err := tr.printf("  ... Finished\nSummary: \n"+
		"  Start ticks      = %d\n"+
		"  End ticks        = %d\n"+
		"  Elapsed ticks    = %d\n"+
		"  NumOfOperation   = %d\n"+
		"  NumOfIteration   = %d\n",
		m.StartTick, m.EndTick, m.Elapsed(), m.Operations, m.Iterations); err != nil {
		return err
	}

	if tr.config.DerivedMetrics {
		if err := tr.printf(
			"  Latency          = %d (ps)\n"+
				"  Bandwidth        = %d (B/s)\n",
			Latency(m, tr.ticksPerSecond), Bandwidth(m, tr.ticksPerSecond)); err != nil {
			return err
		}
	}

	return tr.printf("\n")
}

// Skip prints the reason of skipping the configuration.
func (tr *TextReporter) Skip(_ context.Context, m Measurement) error {
	if err := tr.printHeader(m); err != nil {
		return err
	}
	return tr.printf("  ... Skipped: %s\n\n", m.SkipReason)
}

// Finish prints the footer.
func (tr *TextReporter) Finish(_ context.Context) error {
	return tr.printf("pChase benchmark finished! Thank you \n")
}

func (tr *TextReporter) printHeader(m Measurement) error {
	return tr.printf("  Case_%d\n"+
		"  -- Chain Memory size = %d (Bytes)\n"+
		"  -- Page entry size   = %d (Bytes)\n"+
		"  -- Page table size   = %d (Bytes)\n",
		m.Case, m.ChainSize, m.LineSize, m.PageSize)
}

func (tr *TextReporter) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(tr.w, format, args...)
	return errors.WithStack(err)
}
