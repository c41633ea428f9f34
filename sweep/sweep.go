package sweep

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/mass"
	"github.com/outofforest/pchase/alloc"
	"github.com/outofforest/pchase/chain"
	"github.com/outofforest/pchase/clock"
	"github.com/outofforest/pchase/params"
	"github.com/outofforest/pchase/report"
	"github.com/outofforest/pchase/types"
)

// CounterScope defines the lifetime of the operation counter.
type CounterScope int

const (
	// PerConfiguration resets the counter for every configuration.
	PerConfiguration CounterScope = iota

	// RunWide accumulates the counter over the entire sweep.
	RunWide
)

// Config stores configuration of the sweep.
type Config struct {
	ChainSize    uint64
	LineSizes    []uint64
	PageSizes    []uint64
	Iterations   uint64
	NodeSize     uint64
	CounterScope CounterScope

	Allocator alloc.Allocator
	Clock     clock.Clock
	Reporter  report.Reporter
}

// DefaultConfig returns configuration of the fixed 5x5 grid.
func DefaultConfig(allocator alloc.Allocator, clk clock.Clock, reporter report.Reporter) Config {
	return Config{
		ChainSize:    types.ChainSize,
		LineSizes:    types.LineSizes,
		PageSizes:    types.PageSizes,
		Iterations:   types.NumOfIterations,
		NodeSize:     types.NodeSize,
		CounterScope: PerConfiguration,
		Allocator:    allocator,
		Clock:        clk,
		Reporter:     reporter,
	}
}

// Run measures all the configurations in row-major order: line size in the outer loop, page size in the inner one.
// Degenerate configurations are skipped, allocation failure aborts the sweep.
func Run(ctx context.Context, config Config) ([]*report.Measurement, error) {
	if config.Allocator == nil || config.Clock == nil || config.Reporter == nil {
		return nil, errors.New("allocator, clock and reporter must be provided")
	}
	if config.Iterations == 0 {
		return nil, errors.New("number of iterations must be positive")
	}

	log := logger.Get(ctx)

	numOfCases := uint64(len(config.LineSizes) * len(config.PageSizes))
	measurements := mass.New[report.Measurement](lo.Max([]uint64{numOfCases, 1}))
	results := make([]*report.Measurement, 0, numOfCases)

	if err := config.Reporter.Start(ctx, config.Clock.TicksPerSecond()); err != nil {
		return nil, err
	}

	runCounter := lo.ToPtr[uint64](0)
	for j, lineSize := range config.LineSizes {
		for k, pageSize := range config.PageSizes {
			if err := ctx.Err(); err != nil {
				return results, errors.WithStack(err)
			}

			m := measurements.New()
			*m = report.Measurement{
				Case:       uint64(j*len(config.PageSizes) + k + 1),
				ChainSize:  config.ChainSize,
				LineSize:   lineSize,
				PageSize:   pageSize,
				Iterations: config.Iterations,
			}
			results = append(results, m)

			p, err := params.Derive(config.ChainSize, lineSize, pageSize, config.NodeSize)
			if err != nil {
				var dErr *params.DegenerateError
				if !errors.As(err, &dErr) {
					return results, err
				}

				m.SkipReason = dErr
				if err := config.Reporter.Skip(ctx, *m); err != nil {
					return results, err
				}
				continue
			}

			counter := runCounter
			if config.CounterScope == PerConfiguration {
				counter = lo.ToPtr[uint64](0)
			}

			log.Debug("Measuring configuration",
				zap.Uint64("case", m.Case),
				zap.Uint64("lineSize", lineSize),
				zap.Uint64("pageSize", pageSize),
				zap.Uint64("linksPerChain", p.LinksPerChain))

			if err := measure(config, p, counter, m); err != nil {
				return results, errors.WithMessagef(err, "case %d failed", m.Case)
			}

			if err := config.Reporter.Report(ctx, *m); err != nil {
				return results, err
			}
		}
	}

	return results, config.Reporter.Finish(ctx)
}

func measure(config Config, p params.Params, counter *uint64, m *report.Measurement) error {
	arena, deallocFunc, err := config.Allocator.Allocate(p.LinksPerChain)
	if err != nil {
		return errors.WithMessagef(err, "allocating arena of %d nodes failed", p.LinksPerChain)
	}
	defer deallocFunc()

	arena.Reset()

	start := config.Clock.Now()

	root, err := chain.Build(arena, p, counter)
	if err != nil {
		return err
	}
	visits := chain.Traverse(arena, root, config.Iterations)

	end := config.Clock.Now()

	if expected := config.Iterations * p.LinesPerChain; visits != expected {
		return errors.Errorf("traversal visited %d links, expected %d", visits, expected)
	}

	length, err := chain.Walk(arena, root, p.LinesPerChain)
	if err != nil {
		return err
	}
	if length != p.LinesPerChain {
		return errors.Errorf("chain contains %d links, expected %d", length, p.LinesPerChain)
	}

	m.LinksPerChain = p.LinksPerChain
	m.StartTick = uint64(start)
	m.EndTick = uint64(end)
	m.Operations = *counter
	m.Visits = visits
	m.ChainDigest = chain.Digest(arena, root)

	return nil
}
