package scoring

import (
	"math"

	"codeberg.org/mutker/signalctl/internal/metric"
)

// Weight constants for the composite quality score.
// They must sum to 1.0.
const (
	weightSNR        = 0.30
	weightDistortion = 0.20
	weightLatency    = 0.15
	weightErrorRate  = 0.15
	weightThroughput = 0.10
	weightAmplitude  = 0.10
)

// Scorer maps a record's raw and derived fields to a 0-100 quality
// indicator. Scoring is a pure computation and never fails; inputs
// outside their expected ranges are clamped.
type Scorer struct {
	cfg Config
}

func New(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Scorer{cfg: cfg}, nil
}

// Score computes the weighted composite quality score for a record.
// The result is always within [0, 100].
func (s *Scorer) Score(rec metric.Record) float64 {
	snrScore := normalize(rec.SNR, s.cfg.SNR)
	distortionScore := 100 - clamp(rec.Distortion*100, 0, 100)
	latencyScore := 100 - normalize(rec.Latency, s.cfg.Latency)
	errorRateScore := 100 - clamp(rec.ErrorRate*100, 0, 100)
	throughputScore := normalize(rec.Throughput, s.cfg.Throughput)
	amplitudeScore := normalize(rec.Amplitude, s.cfg.Amplitude)

	score := snrScore*weightSNR +
		distortionScore*weightDistortion +
		latencyScore*weightLatency +
		errorRateScore*weightErrorRate +
		throughputScore*weightThroughput +
		amplitudeScore*weightAmplitude

	// Final clamp guards against misconfigured ranges.
	return Round2(clamp(score, 0, 100))
}

// normalize maps v linearly from r onto [0, 100], clamped at both ends.
func normalize(v float64, r Range) float64 {
	return clamp((v-r.Min)/(r.Max-r.Min)*100, 0, 100)
}

// clamp restricts v to [lo, hi]. NaN collapses to lo so an undefined
// sub-metric scores as worst-case instead of poisoning the sum.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Round2 rounds to two decimals for stable serialized output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
