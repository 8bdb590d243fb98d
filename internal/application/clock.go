package application

import "time"

// Clock supplies the current instant. Services take it as a dependency
// so temporal state filtering is deterministic under test.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time {
	return time.Now().UTC()
}
