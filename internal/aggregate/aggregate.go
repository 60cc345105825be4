package aggregate

import (
	"math"
	"time"

	"codeberg.org/mutker/signalctl/internal/metric"
)

// Source is the read side of the metrics history the aggregator
// filters. Satisfied by *store.Store.
type Source interface {
	Since(cutoff time.Time) []metric.Record
	Len() int
}

// fields lists every numeric field reported on, with its wire name.
var fields = []struct {
	name  string
	value func(metric.Record) float64
}{
	{"signal_strength", func(r metric.Record) float64 { return r.SignalStrength }},
	{"noise_level", func(r metric.Record) float64 { return r.NoiseLevel }},
	{"snr", func(r metric.Record) float64 { return r.SNR }},
	{"quality_score", func(r metric.Record) float64 { return r.QualityScore }},
	{"latency", func(r metric.Record) float64 { return r.Latency }},
	{"throughput", func(r metric.Record) float64 { return r.Throughput }},
	{"error_rate", func(r metric.Record) float64 { return r.ErrorRate }},
	{"distortion", func(r metric.Record) float64 { return r.Distortion }},
	{"amplitude", func(r metric.Record) float64 { return r.Amplitude }},
	{"frequency", func(r metric.Record) float64 { return r.Frequency }},
}

// Aggregator answers windowed read-only queries against a Source.
// No operation here can fail; an empty window yields count 0 and NaN
// statistics rather than zeroes that would imply a real reading.
type Aggregator struct {
	source Source
	cfg    Config
	now    func() time.Time
}

// Option adjusts an Aggregator at construction time.
type Option func(*Aggregator)

// WithClock injects the time source that anchors window cutoffs.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

func New(cfg Config, source Source, opts ...Option) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Aggregator{
		source: source,
		cfg:    cfg,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Select returns the records whose timestamps fall within
// [now - windowMinutes, now], oldest-first. The lower boundary is
// closed: a record stamped exactly at the cutoff is included.
func (a *Aggregator) Select(windowMinutes int) []metric.Record {
	cutoff := a.now().Add(-time.Duration(windowMinutes) * time.Minute)

	return a.source.Since(cutoff)
}

// Summary computes count, per-field min/max/mean and the healthy
// ratio for the selected window.
func (a *Aggregator) Summary(windowMinutes int) SummaryReport {
	recs := a.Select(windowMinutes)

	rep := SummaryReport{
		Count:             len(recs),
		TotalMeasurements: a.source.Len(),
		WindowMinutes:     windowMinutes,
		HealthyRatio:      math.NaN(),
		Stats:             make(map[string]FieldStats, len(fields)),
	}

	if len(recs) == 0 {
		nan := math.NaN()
		for _, f := range fields {
			rep.Stats[f.name] = FieldStats{Min: nan, Max: nan, Mean: nan}
		}

		return rep
	}

	for _, f := range fields {
		stats := FieldStats{Min: f.value(recs[0]), Max: f.value(recs[0])}
		sum := 0.0
		for _, rec := range recs {
			v := f.value(rec)
			stats.Min = math.Min(stats.Min, v)
			stats.Max = math.Max(stats.Max, v)
			sum += v
		}
		stats.Mean = sum / float64(len(recs))
		rep.Stats[f.name] = stats
	}

	healthy := 0
	for _, rec := range recs {
		if rec.QualityScore > a.cfg.HealthyThreshold {
			healthy++
		}
	}
	rep.HealthyRatio = float64(healthy) / float64(len(recs))
	rep.LastUpdated = recs[len(recs)-1].Timestamp

	return rep
}

// Average computes the arithmetic mean of every numeric field for the
// selected window.
func (a *Aggregator) Average(windowMinutes int) AverageReport {
	recs := a.Select(windowMinutes)

	rep := AverageReport{
		Timestamp:     a.now(),
		Count:         len(recs),
		WindowMinutes: windowMinutes,
		Means:         make(map[string]float64, len(fields)),
	}

	if len(recs) == 0 {
		for _, f := range fields {
			rep.Means[f.name] = math.NaN()
		}

		return rep
	}

	for _, f := range fields {
		sum := 0.0
		for _, rec := range recs {
			sum += f.value(rec)
		}
		rep.Means[f.name] = sum / float64(len(recs))
	}

	return rep
}
