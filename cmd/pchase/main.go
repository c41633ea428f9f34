package main

import (
	"bytes"
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/pchase/alloc"
	"github.com/outofforest/pchase/clock"
	"github.com/outofforest/pchase/report"
	"github.com/outofforest/pchase/sweep"
)

func main() {
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))

	// Table is printed after the text report so the two don't interleave.
	table := &bytes.Buffer{}

	config := sweep.DefaultConfig(
		alloc.NewMmapAllocator(alloc.DefaultConfig),
		clock.NewNanosecondClock(),
		report.Multi(
			report.NewTextReporter(os.Stdout, report.Config{DerivedMetrics: true}),
			report.NewTableReporter(table),
			report.NewLogReporter(),
		),
	)

	group := parallel.NewGroup(ctx)
	group.Spawn("sweep", parallel.Exit, func(ctx context.Context) error {
		_, err := sweep.Run(ctx, config)
		return err
	})

	if err := group.Wait(); err != nil {
		logger.Get(ctx).Error("Benchmark failed", zap.Error(err))
		os.Exit(1)
	}

	if _, err := table.WriteTo(os.Stdout); err != nil {
		logger.Get(ctx).Error("Printing table failed", zap.Error(err))
		os.Exit(1)
	}
}
