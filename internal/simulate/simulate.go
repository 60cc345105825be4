package simulate

import (
	"math"
	"math/rand"
	"time"

	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/metric"
)

// Defaults applied by callers when the sample count or base frequency
// is omitted.
const (
	DefaultSamples       = 10
	DefaultBaseFrequency = 1000.0
)

const (
	// maxSamples bounds a single generation call so every engine
	// operation stays a bounded computation.
	maxSamples = 10000

	frequencyJitter = 50.0
)

// Sink receives generated readings. Satisfied by *store.Store, so
// synthetic records travel the same ingestion path as real ones.
type Sink interface {
	Ingest(reading metric.Reading) (metric.Record, error)
}

// Simulator produces plausible synthetic records for exercising the
// store without a live signal source.
type Simulator struct {
	sink Sink
	rng  *rand.Rand
}

// Option adjusts a Simulator at construction time.
type Option func(*Simulator)

// WithSeed fixes the random source for reproducible output.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func New(sink Sink, opts ...Option) *Simulator {
	s := &Simulator{
		sink: sink,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate ingests numSamples synthetic readings whose frequency
// jitters around baseFrequency and whose remaining fields are drawn
// from plausible ranges, spreading quality scores across the scale.
// The stored records are returned.
func (s *Simulator) Generate(numSamples int, baseFrequency float64) ([]metric.Record, error) {
	errFactory := errors.New()

	if numSamples <= 0 {
		return nil, errFactory.WithMessage(ErrInvalidSamples, "num_samples must be positive").
			WithData(numSamples)
	}
	if numSamples > maxSamples {
		return nil, errFactory.WithMessage(ErrInvalidSamples, "num_samples exceeds generation limit").
			WithData(numSamples)
	}

	out := make([]metric.Record, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		reading := metric.Reading{
			SignalStrength: s.uniform(0.5, 2.5),
			NoiseLevel:     s.uniform(0.05, 0.55),
			Frequency:      baseFrequency + s.uniform(-frequencyJitter, frequencyJitter),
			Amplitude:      s.uniform(0.1, 2.0),
			Phase:          s.uniform(0, 2*math.Pi),
			Distortion:     s.uniform(0, 0.3),
			Latency:        s.uniform(0, 0.5),
			Throughput:     s.uniform(0, 10),
			ErrorRate:      s.uniform(0, 0.3),
		}

		rec, err := s.sink.Ingest(reading)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
