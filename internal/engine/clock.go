package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Store stamps ticks with it and the Ticker reads it on every period.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. It backs one-shot renderings
// (CLI, HTTP pages) where "now" is captured once per request.
type FixedClock time.Time

// Now returns the captured instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
