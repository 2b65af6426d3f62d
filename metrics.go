package phonetype

import (
	"sync/atomic"
	"time"
)

// Metrics tracks parse outcomes using lock-free atomic operations.
// All methods are safe for concurrent use. A Metrics is optional
// instrumentation: the constructors themselves never record anything.
type Metrics struct {
	parsesTotal atomic.Uint64
	parsesOK    atomic.Uint64

	// Timing (stored as nanoseconds)
	parseTimeTotal atomic.Uint64
	parseTimeMin   atomic.Uint64
	parseTimeMax   atomic.Uint64

	// Failure counts by kind
	invalidFormat     atomic.Uint64
	missingPlusPrefix atomic.Uint64
	invalidCharacter  atomic.Uint64
	emptyNumber       atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first value becomes the minimum
	m.parseTimeMin.Store(^uint64(0))
	return m
}

// RecordParse records a completed construction attempt. err is the
// error returned by the constructor, nil on success.
func (m *Metrics) RecordParse(duration time.Duration, err error) {
	m.parsesTotal.Add(1)
	if err == nil {
		m.parsesOK.Add(1)
	} else {
		switch Kind(err) {
		case KindInvalidFormat:
			m.invalidFormat.Add(1)
		case KindMissingPlusPrefix:
			m.missingPlusPrefix.Add(1)
		case KindInvalidCharacter:
			m.invalidCharacter.Add(1)
		case KindEmptyNumber:
			m.emptyNumber.Add(1)
		}
	}

	ns := uint64(duration.Nanoseconds())
	m.parseTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.parseTimeMin.Load()
		if ns >= old {
			break
		}
		if m.parseTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.parseTimeMax.Load()
		if ns <= old {
			break
		}
		if m.parseTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// ParsesTotal returns the total number of construction attempts.
func (m *Metrics) ParsesTotal() uint64 {
	return m.parsesTotal.Load()
}

// ParsesOK returns the number of successful constructions.
func (m *Metrics) ParsesOK() uint64 {
	return m.parsesOK.Load()
}

// SuccessRate returns the fraction of successful constructions
// (0.0 to 1.0).
func (m *Metrics) SuccessRate() float64 {
	total := m.parsesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.parsesOK.Load()) / float64(total)
}

// Failures returns the failure count for an error kind.
func (m *Metrics) Failures(kind ErrorKind) uint64 {
	switch kind {
	case KindInvalidFormat:
		return m.invalidFormat.Load()
	case KindMissingPlusPrefix:
		return m.missingPlusPrefix.Load()
	case KindInvalidCharacter:
		return m.invalidCharacter.Load()
	case KindEmptyNumber:
		return m.emptyNumber.Load()
	default:
		return 0
	}
}

// AverageParseTime returns the average construction duration.
func (m *Metrics) AverageParseTime() time.Duration {
	total := m.parsesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.parseTimeTotal.Load() / total)
}

// MinParseTime returns the minimum construction duration.
func (m *Metrics) MinParseTime() time.Duration {
	minVal := m.parseTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxParseTime returns the maximum construction duration.
func (m *Metrics) MaxParseTime() time.Duration {
	return time.Duration(m.parseTimeMax.Load())
}
