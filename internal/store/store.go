package store

import (
	"sync"
	"time"

	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/logger"
	"codeberg.org/mutker/signalctl/internal/metric"
	"codeberg.org/mutker/signalctl/internal/scoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store is the bounded, oldest-first metrics history. Ingestion and
// eviction happen atomically under the write lock; read operations
// hand out copied snapshots so a concurrent eviction is never
// observed mid-read.
type Store struct {
	mu      sync.RWMutex
	records []metric.Record
	cfg     Config
	scorer  *scoring.Scorer
	now     func() time.Time
	last    time.Time

	ingested prometheus.Counter
	evicted  prometheus.Counter
	length   prometheus.Gauge
}

// Option adjusts a Store at construction time.
type Option func(*Store)

// WithClock injects the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store. Passing a nil registerer leaves the
// instrumentation unregistered.
func New(cfg Config, scorer *scoring.Scorer, reg prometheus.Registerer, opts ...Option) (*Store, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	factory := promauto.With(reg)
	s := &Store{
		records: make([]metric.Record, 0, cfg.Capacity),
		cfg:     cfg,
		scorer:  scorer,
		now:     time.Now,
		ingested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "signalctl",
			Subsystem: "store",
			Name:      "records_ingested_total",
			Help:      "Records accepted into the history.",
		}),
		evicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "signalctl",
			Subsystem: "store",
			Name:      "records_evicted_total",
			Help:      "Oldest records dropped to hold the capacity bound.",
		}),
		length: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "signalctl",
			Subsystem: "store",
			Name:      "records",
			Help:      "Records currently held.",
		}),
	}

	for _, opt := range opts {
		opt(s)
	}

	logger.Debug().Int("capacity", cfg.Capacity).Msg("Metrics store initialized")

	return s, nil
}

// Ingest validates the reading, derives SNR and quality score, stamps
// the record and appends it, evicting the oldest record when the
// history would exceed capacity. The store is unchanged when
// validation fails.
func (s *Store) Ingest(reading metric.Reading) (metric.Record, error) {
	if err := reading.Validate(); err != nil {
		return metric.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	if ts.Before(s.last) {
		ts = s.last
	}
	s.last = ts

	rec := metric.New(reading, ts)
	rec.QualityScore = s.scorer.Score(rec)

	s.records = append(s.records, rec)
	s.ingested.Inc()

	if len(s.records) > s.cfg.Capacity {
		s.records = s.records[1:]
		s.evicted.Inc()
	}
	s.length.Set(float64(len(s.records)))

	return rec, nil
}

// All returns a copy of the full history, oldest-first.
func (s *Store) All() []metric.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]metric.Record, len(s.records))
	copy(out, s.records)

	return out
}

// Since returns the records with timestamps at or after cutoff,
// oldest-first. Records are stamped in timestamp order, so a backward
// scan can stop at the first record older than the cutoff.
func (s *Store) Since(cutoff time.Time) []metric.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := len(s.records)
	for i > 0 && !s.records[i-1].Timestamp.Before(cutoff) {
		i--
	}

	out := make([]metric.Record, len(s.records)-i)
	copy(out, s.records[i:])

	return out
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
