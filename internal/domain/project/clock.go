package project

import "time"

// Clock returns the current time. The aggregate never reads the wall clock
// directly; callers choose the clock at construction.
type Clock func() time.Time

// SystemClock returns the current UTC time truncated to microseconds, the
// precision PostgreSQL timestamps keep.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
