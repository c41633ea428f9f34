package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/logger"
	"github.com/outofforest/pchase/report"
)

var measurement = report.Measurement{
	Case:          7,
	ChainSize:     8192,
	LineSize:      32,
	PageSize:      4096,
	LinksPerChain: 1024,
	StartTick:     1000,
	EndTick:       3560,
	Operations:    256,
	Iterations:    100,
	Visits:        25600,
	ChainDigest:   0xabcdef,
}

func TestTextReporter(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	buf := &bytes.Buffer{}
	r := report.NewTextReporter(buf, report.Config{})
	requireT.NoError(r.Start(ctx, 1_000_000))
	requireT.NoError(r.Report(ctx, measurement))
	requireT.NoError(r.Finish(ctx))

	requireT.Equal(`Starting to pChase benchmark
Clock, 1 sec (1000000 ticks):
  Case_7
  -- Chain Memory size = 8192 (Bytes)
  -- Page entry size   = 32 (Bytes)
  -- Page table size   = 4096 (Bytes)
  ... Finished
Summary: 
  Start ticks      = 1000
  End ticks        = 3560
  Elapsed ticks    = 2560
  NumOfOperation   = 256
  NumOfIteration   = 100

pChase benchmark finished! Thank you 
`, buf.String())
}

func TestTextReporterDerivedMetrics(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	buf := &bytes.Buffer{}
	r := report.NewTextReporter(buf, report.Config{DerivedMetrics: true})
	requireT.NoError(r.Start(ctx, 1_000_000))
	requireT.NoError(r.Report(ctx, measurement))

	requireT.Contains(buf.String(), "  NumOfIteration   = 100\n  Latency          = 100000 (ps)\n")
	requireT.Contains(buf.String(), "  Bandwidth        = 320000000 (B/s)\n")
}

func TestTextReporterSkip(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	m := measurement
	m.SkipReason = errors.New("page is smaller than line")

	buf := &bytes.Buffer{}
	r := report.NewTextReporter(buf, report.Config{})
	requireT.NoError(r.Skip(ctx, m))

	requireT.True(strings.HasPrefix(buf.String(), "  Case_7\n"))
	requireT.Contains(buf.String(), "  ... Skipped: page is smaller than line\n")
	requireT.NotContains(buf.String(), "Elapsed")
}

func TestTableReporter(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	m := measurement
	m.Case = 8
	m.SkipReason = errors.New("bad\tconfig")

	buf := &bytes.Buffer{}
	r := report.NewTableReporter(buf)
	requireT.NoError(r.Start(ctx, 1_000_000))
	requireT.NoError(r.Report(ctx, measurement))
	requireT.NoError(r.Skip(ctx, m))
	requireT.NoError(r.Finish(ctx))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	requireT.Len(lines, 3)

	header := strings.Split(lines[0], "\t")
	for _, line := range lines[1:] {
		requireT.Len(strings.Split(line, "\t"), len(header))
	}
	requireT.Equal("7\t8192\t32\t4096\t1024\t1000\t3560\t2560\t256\t100\t25600\t0000000000abcdef\t", lines[1])
	requireT.True(strings.HasSuffix(lines[2], "\tbad config"))
}

type recordingReporter struct {
	calls []string
	err   error
}

func (rr *recordingReporter) Start(_ context.Context, _ uint64) error {
	rr.calls = append(rr.calls, "start")
	return rr.err
}

func (rr *recordingReporter) Report(_ context.Context, _ report.Measurement) error {
	rr.calls = append(rr.calls, "report")
	return rr.err
}

func (rr *recordingReporter) Skip(_ context.Context, _ report.Measurement) error {
	rr.calls = append(rr.calls, "skip")
	return rr.err
}

func (rr *recordingReporter) Finish(_ context.Context) error {
	rr.calls = append(rr.calls, "finish")
	return rr.err
}

func TestMulti(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	r1 := &recordingReporter{}
	r2 := &recordingReporter{}
	r := report.Multi(r1, nil, r2)

	requireT.NoError(r.Start(ctx, 1))
	requireT.NoError(r.Report(ctx, measurement))
	requireT.NoError(r.Skip(ctx, measurement))
	requireT.NoError(r.Finish(ctx))

	expected := []string{"start", "report", "skip", "finish"}
	requireT.Equal(expected, r1.calls)
	requireT.Equal(expected, r2.calls)
}

func TestMultiStopsOnError(t *testing.T) {
	requireT := require.New(t)
	ctx := context.Background()

	errTest := errors.New("test")
	r1 := &recordingReporter{err: errTest}
	r2 := &recordingReporter{}

	requireT.ErrorIs(report.Multi(r1, r2).Report(ctx, measurement), errTest)
	requireT.Empty(r2.calls)
}

func TestLogReporter(t *testing.T) {
	requireT := require.New(t)
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))

	m := measurement
	r := report.NewLogReporter()
	requireT.NoError(r.Start(ctx, 1))
	requireT.NoError(r.Report(ctx, m))
	m.SkipReason = errors.New("test")
	requireT.NoError(r.Skip(ctx, m))
	requireT.NoError(r.Finish(ctx))
}

func TestMetrics(t *testing.T) {
	requireT := require.New(t)

	requireT.EqualValues(100_000, report.Latency(measurement, 1_000_000))
	requireT.EqualValues(320_000_000, report.Bandwidth(measurement, 1_000_000))

	m := measurement
	m.EndTick = m.StartTick
	requireT.Zero(report.Latency(m, 1_000_000))
	requireT.Zero(report.Bandwidth(m, 1_000_000))

	m = measurement
	m.Visits = 0
	requireT.Zero(report.Latency(m, 1_000_000))
}
