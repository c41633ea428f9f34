package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/outofforest/logger"
)

// NewLogReporter creates reporter logging results through the logger stored in the context.
func NewLogReporter() LogReporter {
	return LogReporter{}
}

// LogReporter logs results.
type LogReporter struct{}

// Start logs the clock resolution.
func (lr LogReporter) Start(ctx context.Context, ticksPerSecond uint64) error {
	logger.Get(ctx).Info("Sweep started", zap.Uint64("ticksPerSecond", ticksPerSecond))
	return nil
}

// Report logs measurement.
func (lr LogReporter) Report(ctx context.Context, m Measurement) error {
	logger.Get(ctx).Info("Configuration measured",
		zap.Uint64("case", m.Case),
		zap.Uint64("lineSize", m.LineSize),
		zap.Uint64("pageSize", m.PageSize),
		zap.Uint64("linksPerChain", m.LinksPerChain),
		zap.Uint64("elapsed", m.Elapsed()),
		zap.Uint64("operations", m.Operations),
		zap.Uint64("visits", m.Visits),
		zap.Uint64("digest", m.ChainDigest),
	)
	return nil
}

// Skip logs skipped configuration.
func (lr LogReporter) Skip(ctx context.Context, m Measurement) error {
	logger.Get(ctx).Warn("Configuration skipped",
		zap.Uint64("case", m.Case),
		zap.Uint64("lineSize", m.LineSize),
		zap.Uint64("pageSize", m.PageSize),
		zap.Error(m.SkipReason),
	)
	return nil
}

// Finish logs the end of the sweep.
func (lr LogReporter) Finish(ctx context.Context) error {
	logger.Get(ctx).Info("Sweep finished")
	return nil
}
