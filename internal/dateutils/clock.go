package dateutils

import "time"

// Clock abstracts the current time so the fallback tier of ParseDate and
// the streak calculations stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	Time time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
