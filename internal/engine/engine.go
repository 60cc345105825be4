package engine

import (
	"context"
	"time"

	"codeberg.org/mutker/signalctl/internal/aggregate"
	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/logger"
	"codeberg.org/mutker/signalctl/internal/metric"
	"codeberg.org/mutker/signalctl/internal/scoring"
	"codeberg.org/mutker/signalctl/internal/simulate"
	"codeberg.org/mutker/signalctl/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type service struct {
	cfg        Config
	history    store.History
	aggregator *aggregate.Aggregator
	simulator  *simulate.Simulator
}

// Option adjusts the engine at construction time.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock injects the time source shared by the store and the
// aggregator, so window cutoffs and record stamps agree.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds the engine: scorer, bounded store, window aggregator and
// simulator wired together. Passing a nil registerer leaves the store
// instrumentation unregistered.
func New(cfg Config, reg prometheus.Registerer, opts ...Option) (Service, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	scorer, err := scoring.New(cfg.Scoring)
	if err != nil {
		return nil, errFactory.Wrap(ErrInitEngine, err)
	}

	st, err := store.New(store.Config{Capacity: cfg.Capacity}, scorer, reg, store.WithClock(o.now))
	if err != nil {
		return nil, errFactory.Wrap(ErrInitEngine, err)
	}

	agg, err := aggregate.New(
		aggregate.Config{HealthyThreshold: cfg.HealthyThreshold},
		st,
		aggregate.WithClock(o.now),
	)
	if err != nil {
		return nil, errFactory.Wrap(ErrInitEngine, err)
	}

	var simOpts []simulate.Option
	if cfg.Seed != 0 {
		simOpts = append(simOpts, simulate.WithSeed(cfg.Seed))
	}

	logger.Debug().
		Int("capacity", cfg.Capacity).
		Int("window_minutes", cfg.WindowMinutes).
		Float64("healthy_threshold", cfg.HealthyThreshold).
		Msg("Engine initialized")

	return &service{
		cfg:        cfg,
		history:    st,
		aggregator: agg,
		simulator:  simulate.New(st, simOpts...),
	}, nil
}

func (s *service) Ingest(ctx context.Context, reading metric.Reading) (metric.Record, error) {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return metric.Record{}, errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	rec, err := s.history.Ingest(reading)
	if err != nil {
		return metric.Record{}, err
	}

	logger.Debug().
		Float64("snr", rec.SNR).
		Float64("quality_score", rec.QualityScore).
		Msg("Record ingested")

	return rec, nil
}

func (s *service) Summary(ctx context.Context, windowMinutes int) (aggregate.SummaryReport, error) {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return aggregate.SummaryReport{}, errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	rep := s.aggregator.Summary(s.window(windowMinutes))

	logger.Debug().
		Int("count", rep.Count).
		Int("window_minutes", rep.WindowMinutes).
		Msg("Summary computed")

	return rep, nil
}

func (s *service) Average(ctx context.Context, windowMinutes int) (aggregate.AverageReport, error) {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return aggregate.AverageReport{}, errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	rep := s.aggregator.Average(s.window(windowMinutes))

	logger.Debug().
		Int("count", rep.Count).
		Int("window_minutes", rep.WindowMinutes).
		Msg("Average computed")

	return rep, nil
}

func (s *service) Simulate(ctx context.Context, numSamples int, baseFrequency float64) ([]metric.Record, error) {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return nil, errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	if baseFrequency <= 0 {
		baseFrequency = simulate.DefaultBaseFrequency
	}

	recs, err := s.simulator.Generate(numSamples, baseFrequency)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("samples", len(recs)).
		Float64("base_frequency", baseFrequency).
		Msg("Synthetic records ingested")

	return recs, nil
}

// window maps the adapter's "omitted" zero value to the configured
// default while leaving explicit positive windows untouched.
func (s *service) window(minutes int) int {
	if minutes <= 0 {
		return s.cfg.WindowMinutes
	}

	return minutes
}
