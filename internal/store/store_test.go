package store_test

import (
	"math"
	"testing"
	"time"

	"codeberg.org/mutker/signalctl/internal/errors"
	"codeberg.org/mutker/signalctl/internal/metric"
	"codeberg.org/mutker/signalctl/internal/scoring"
	"codeberg.org/mutker/signalctl/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T, capacity int, clock *testClock) *store.Store {
	t.Helper()

	scorer, err := scoring.New(scoring.DefaultConfig())
	require.NoError(t, err)

	s, err := store.New(store.Config{Capacity: capacity}, scorer, nil, store.WithClock(clock.Now))
	require.NoError(t, err)

	return s
}

func validReading() metric.Reading {
	return metric.Reading{
		SignalStrength: 1.5,
		NoiseLevel:     0.1,
		Frequency:      1000.0,
		Amplitude:      1.2,
	}
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	scorer, err := scoring.New(scoring.DefaultConfig())
	require.NoError(t, err)

	_, err = store.New(store.Config{Capacity: 0}, scorer, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, store.ErrInvalidConfig))
}

func TestIngestDerivesFields(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 10, clock)

	rec, err := s.Ingest(validReading())
	require.NoError(t, err)

	assert.Equal(t, clock.now, rec.Timestamp)
	assert.InDelta(t, 23.52, rec.SNR, 0.01)
	assert.Greater(t, rec.QualityScore, 0.0)
	assert.Less(t, rec.QualityScore, 100.0)
	assert.Equal(t, 1, s.Len())
}

func TestIngestValidationLeavesStoreUnchanged(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 10, clock)

	bad := validReading()
	bad.NoiseLevel = math.NaN()

	_, err := s.Ingest(bad)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrValidation))
	assert.Zero(t, s.Len())
}

func TestCapacityBoundAndFIFOEviction(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 1000, clock)

	first := validReading()
	first.Frequency = 1.0 // marker for the record that must be evicted

	_, err := s.Ingest(first)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		clock.Advance(time.Millisecond)
		_, err := s.Ingest(validReading())
		require.NoError(t, err)
	}

	assert.Equal(t, 1000, s.Len(), "length must never exceed capacity")

	all := s.All()
	require.Len(t, all, 1000)
	for _, rec := range all {
		assert.NotEqual(t, 1.0, rec.Frequency, "oldest record must have been evicted")
	}

	// Oldest-first ordering survives eviction.
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.Before(all[i-1].Timestamp))
	}
}

func TestTimestampsMonotonicWithFrozenClock(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 10, clock)

	a, err := s.Ingest(validReading())
	require.NoError(t, err)
	b, err := s.Ingest(validReading())
	require.NoError(t, err)

	assert.False(t, b.Timestamp.Before(a.Timestamp))
}

func TestSinceClosedBoundary(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 10, clock)

	old, err := s.Ingest(validReading())
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	recent, err := s.Ingest(validReading())
	require.NoError(t, err)

	// Cutoff exactly at the old record: closed interval includes it.
	got := s.Since(old.Timestamp)
	assert.Len(t, got, 2)

	// Cutoff just past it excludes it.
	got = s.Since(old.Timestamp.Add(time.Nanosecond))
	require.Len(t, got, 1)
	assert.Equal(t, recent.Timestamp, got[0].Timestamp)

	// Cutoff in the future selects nothing.
	assert.Empty(t, s.Since(clock.now.Add(time.Hour)))
}

func TestAllReturnsSnapshotCopy(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	s := newTestStore(t, 10, clock)

	_, err := s.Ingest(validReading())
	require.NoError(t, err)

	snapshot := s.All()
	require.Len(t, snapshot, 1)
	snapshot[0].Frequency = -1

	assert.Equal(t, 1000.0, s.All()[0].Frequency, "mutating a snapshot must not touch the store")
}
