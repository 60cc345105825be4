package metric

import (
	"math"
	"time"

	"codeberg.org/mutker/signalctl/internal/errors"
)

// Reading holds one raw signal measurement as submitted by a caller.
// SignalStrength, NoiseLevel, Frequency and Amplitude are required;
// the remaining fields default to zero.
type Reading struct {
	SignalStrength float64 `json:"signal_strength"`
	NoiseLevel     float64 `json:"noise_level"`
	Frequency      float64 `json:"frequency"`
	Amplitude      float64 `json:"amplitude"`
	Phase          float64 `json:"phase"`
	Distortion     float64 `json:"distortion"`
	Latency        float64 `json:"latency"`
	Throughput     float64 `json:"throughput"`
	ErrorRate      float64 `json:"error_rate"`
}

// Record is a stored observation: the raw reading plus the fields
// derived at ingestion time. Records are never mutated after creation.
type Record struct {
	Reading
	Timestamp    time.Time `json:"timestamp"`
	SNR          float64   `json:"snr"`
	QualityScore float64   `json:"quality_score"`
}

// requiredFields maps field names to accessors, in validation order.
var requiredFields = []struct {
	name  string
	value func(Reading) float64
}{
	{"signal_strength", func(r Reading) float64 { return r.SignalStrength }},
	{"noise_level", func(r Reading) float64 { return r.NoiseLevel }},
	{"frequency", func(r Reading) float64 { return r.Frequency }},
	{"amplitude", func(r Reading) float64 { return r.Amplitude }},
}

// Validate checks that all required fields carry finite numeric values.
func (r Reading) Validate() error {
	errFactory := errors.New()

	for _, f := range requiredFields {
		v := f.value(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errFactory.WithMessage(ErrInvalidReading, "required field is not a finite number").
				WithData(f.name)
		}
	}

	return nil
}

// New builds a Record from a reading, stamping it with the given
// capture time and deriving the signal-to-noise ratio. The quality
// score is filled in by the store before the record is published.
func New(r Reading, timestamp time.Time) Record {
	return Record{
		Reading:   r,
		Timestamp: timestamp,
		SNR:       SNR(r.SignalStrength, r.NoiseLevel),
	}
}

// SNR returns the signal-to-noise ratio in decibels. A non-positive
// noise level makes the ratio undefined; NaN is returned rather than
// an error so degenerate measurements still ingest.
func SNR(signalStrength, noiseLevel float64) float64 {
	if noiseLevel <= 0 {
		return math.NaN()
	}

	return 20 * math.Log10(signalStrength/noiseLevel)
}
