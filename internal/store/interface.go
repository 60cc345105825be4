package store

import (
	"time"

	"codeberg.org/mutker/signalctl/internal/metric"
)

// History is the surface of the bounded metrics history. Ingest is the
// only mutating operation; reads return copied snapshots.
type History interface {
	Ingest(reading metric.Reading) (metric.Record, error)
	All() []metric.Record
	Since(cutoff time.Time) []metric.Record
	Len() int
}
