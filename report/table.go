package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var tableColumns = []string{
	"case", "chain_size", "line_size", "page_size", "links_per_chain", "start", "end", "elapsed", "operations",
	"iterations", "visits", "digest", "skip_reason",
}

// NewTableReporter creates reporter printing one tab-separated row per configuration.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{
		w: w,
	}
}

// TableReporter prints results as tab-separated table.
type TableReporter struct {
	w io.Writer
}

// Start prints the header row.
func (tr *TableReporter) Start(_ context.Context, _ uint64) error {
	_, err := fmt.Fprintln(tr.w, strings.Join(tableColumns, "\t"))
	return errors.WithStack(err)
}

// Report prints measurement row.
func (tr *TableReporter) Report(_ context.Context, m Measurement) error {
	return tr.row(m, "")
}

// Skip prints row of skipped configuration.
func (tr *TableReporter) Skip(_ context.Context, m Measurement) error {
	return tr.row(m, strings.ReplaceAll(m.SkipReason.Error(), "\t", " "))
}

// Finish does nothing.
func (tr *TableReporter) Finish(_ context.Context) error {
	return nil
}

func (tr *TableReporter) row(m Measurement, reason string) error {
	_, err := fmt.Fprintf(tr.w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%016x\t%s\n",
		m.Case, m.ChainSize, m.LineSize, m.PageSize, m.LinksPerChain, m.StartTick, m.EndTick, m.Elapsed(),
		m.Operations, m.Iterations, m.Visits, m.ChainDigest, reason)
	return errors.WithStack(err)
}
