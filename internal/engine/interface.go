package engine

import (
	"context"

	"codeberg.org/mutker/signalctl/internal/aggregate"
	"codeberg.org/mutker/signalctl/internal/metric"
)

// Service is the wire-independent boundary an external protocol
// adapter calls. Every operation is a bounded synchronous computation
// over at most the store's capacity.
type Service interface {
	// Ingest stores one measurement and returns the stored record
	// with its derived fields. The only operation that can fail on
	// caller input.
	Ingest(ctx context.Context, reading metric.Reading) (metric.Record, error)

	// Summary reports windowed statistics. A non-positive window
	// selects the configured default.
	Summary(ctx context.Context, windowMinutes int) (aggregate.SummaryReport, error)

	// Average reports windowed field means. A non-positive window
	// selects the configured default.
	Average(ctx context.Context, windowMinutes int) (aggregate.AverageReport, error)

	// Simulate generates and ingests synthetic records. A
	// non-positive base frequency selects the default; a
	// non-positive sample count is a validation error.
	Simulate(ctx context.Context, numSamples int, baseFrequency float64) ([]metric.Record, error)
}
