package shared

import "time"

// Clock supplies the current date for ship date estimates. Injecting it
// keeps the allocation engine deterministic under test.
type Clock interface {
	Today() time.Time
}

// SystemClock reports the wall-clock date truncated to midnight UTC
type SystemClock struct{}

// Today returns the current date
func (SystemClock) Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// FixedClock reports a constant date, for tests and replays
type FixedClock struct {
	Date time.Time
}

// Today returns the fixed date
func (c FixedClock) Today() time.Time {
	return c.Date
}
