package report

import (
	"context"

	"github.com/samber/lo"
)

// Measurement is the result of one configuration.
type Measurement struct {
	Case          uint64
	ChainSize     uint64
	LineSize      uint64
	PageSize      uint64
	LinksPerChain uint64

	StartTick   uint64
	EndTick     uint64
	Operations  uint64
	Iterations  uint64
	Visits      uint64
	ChainDigest uint64

	// SkipReason is set if configuration was not measured.
	SkipReason error
}

// Elapsed returns number of ticks taken by the measured region.
func (m Measurement) Elapsed() uint64 {
	return m.EndTick - m.StartTick
}

// Skipped tells if configuration was skipped.
func (m Measurement) Skipped() bool {
	return m.SkipReason != nil
}

// Reporter receives results of the sweep.
type Reporter interface {
	Start(ctx context.Context, ticksPerSecond uint64) error
	Report(ctx context.Context, m Measurement) error
	Skip(ctx context.Context, m Measurement) error
	Finish(ctx context.Context) error
}

// Multi returns reporter forwarding results to all the reporters.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(lo.Filter(reporters, func(r Reporter, _ int) bool {
		return r != nil
	}))
}

type multiReporter []Reporter

func (mr multiReporter) Start(ctx context.Context, ticksPerSecond uint64) error {
	return mr.each(func(r Reporter) error {
		return r.Start(ctx, ticksPerSecond)
	})
}

func (mr multiReporter) Report(ctx context.Context, m Measurement) error {
	return mr.each(func(r Reporter) error {
		return r.Report(ctx, m)
	})
}

func (mr multiReporter) Skip(ctx context.Context, m Measurement) error {
	return mr.each(func(r Reporter) error {
		return r.Skip(ctx, m)
	})
}

func (mr multiReporter) Finish(ctx context.Context) error {
	return mr.each(func(r Reporter) error {
		return r.Finish(ctx)
	})
}

func (mr multiReporter) each(fn func(r Reporter) error) error {
	for _, r := range mr {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}
