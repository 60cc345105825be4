package scoring_test

import (
	"math"
	"testing"
	"time"

	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/metric"
	"codeberg.org/mutker/signalctl/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T) *scoring.Scorer {
	t.Helper()
	s, err := scoring.New(scoring.DefaultConfig())
	require.NoError(t, err)
	return s
}

func record(r metric.Reading) metric.Record {
	return metric.New(r, time.Unix(1700000000, 0))
}

func TestScoreWithinBounds(t *testing.T) {
	s := newScorer(t)

	tests := []struct {
		name    string
		reading metric.Reading
	}{
		{"all zero optionals", metric.Reading{SignalStrength: 1.5, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1.2}},
		{"extreme distortion", metric.Reading{SignalStrength: 1, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1, Distortion: 5}},
		{"negative error rate", metric.Reading{SignalStrength: 1, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1, ErrorRate: -1}},
		{"huge throughput", metric.Reading{SignalStrength: 1, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1, Throughput: 1e12}},
		{"huge latency", metric.Reading{SignalStrength: 1, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1, Latency: 3600}},
		{"degenerate noise", metric.Reading{SignalStrength: 1, NoiseLevel: 0, Frequency: 1000, Amplitude: 1}},
		{"negative amplitude", metric.Reading{SignalStrength: 1, NoiseLevel: 0.1, Frequency: 1000, Amplitude: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := s.Score(record(tt.reading))
			assert.False(t, math.IsNaN(score), "score must never be NaN")
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestScoreKnownScenario(t *testing.T) {
	s := newScorer(t)

	rec := record(metric.Reading{
		SignalStrength: 1.5,
		NoiseLevel:     0.1,
		Frequency:      1000.0,
		Amplitude:      1.2,
	})
	score := s.Score(rec)

	// snr 23.52 dB -> 58.8; distortion/latency/error all perfect;
	// throughput 0 -> 0; amplitude 1.2 -> 60.
	assert.InDelta(t, 73.64, score, 0.01)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestScoreRewardsBetterSignal(t *testing.T) {
	s := newScorer(t)

	poor := s.Score(record(metric.Reading{
		SignalStrength: 0.5, NoiseLevel: 0.5, Frequency: 1000, Amplitude: 0.2,
		Distortion: 0.9, Latency: 0.9, ErrorRate: 0.9,
	}))
	good := s.Score(record(metric.Reading{
		SignalStrength: 2.5, NoiseLevel: 0.05, Frequency: 1000, Amplitude: 1.8,
		Throughput: 9,
	}))

	assert.Greater(t, good, poor)
}

func TestScoreUndefinedSNRScoresWorst(t *testing.T) {
	s := newScorer(t)

	withSNR := record(metric.Reading{SignalStrength: 2, NoiseLevel: 0.1, Frequency: 1000, Amplitude: 1})
	noSNR := record(metric.Reading{SignalStrength: 2, NoiseLevel: 0, Frequency: 1000, Amplitude: 1})

	assert.Greater(t, s.Score(withSNR), s.Score(noSNR))
}

func TestConfigValidate(t *testing.T) {
	cfg := scoring.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Latency = scoring.Range{Min: 1, Max: 1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, scoring.ErrInvalidRange))

	_, err = scoring.New(cfg)
	require.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 73.64, scoring.Round2(73.6449), 1e-9)
	assert.InDelta(t, 73.65, scoring.Round2(73.6461), 1e-9)
}
