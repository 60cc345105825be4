package scoring

import "codeberg.org/mutker/signalctl/internal/errors"

// Range is the acceptable span a raw sub-metric is normalized over.
type Range struct {
	Min float64
	Max float64
}

// Config holds the normalization ranges for the range-mapped
// sub-metrics. Distortion and error rate are fixed to [0,1] by their
// definitions and carry no range here.
type Config struct {
	SNR        Range // decibels
	Latency    Range // seconds, inverted (lower is better)
	Throughput Range
	Amplitude  Range
}

func DefaultConfig() Config {
	return Config{
		SNR:        Range{Min: 0, Max: 40},
		Latency:    Range{Min: 0, Max: 1},
		Throughput: Range{Min: 0, Max: 10},
		Amplitude:  Range{Min: 0, Max: 2},
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	ranges := []struct {
		name string
		r    Range
	}{
		{"snr", c.SNR},
		{"latency", c.Latency},
		{"throughput", c.Throughput},
		{"amplitude", c.Amplitude},
	}

	for _, entry := range ranges {
		if entry.r.Min >= entry.r.Max {
			return errFactory.WithMessage(ErrInvalidRange, "range min must be below max").
				WithData(entry.name)
		}
	}

	return nil
}
