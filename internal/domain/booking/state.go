package booking

import (
	"time"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// State is a listing filter token: either a temporal bucket relative to
// the current instant (CURRENT/PAST/FUTURE) or a status bucket
// (WAITING/REJECTED). ALL selects everything.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState matches a raw token against the recognized set.
// Matching is exact and case-sensitive; anything else fails with
// UnsupportedStateError.
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(raw), nil
	default:
		return "", domain.NewUnsupportedStateError(raw)
	}
}

// Matches reports whether the booking falls into the state's bucket at
// the given instant. Temporal buckets compare strictly, so a booking
// whose boundary equals now is in no temporal bucket.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return b.Start().Before(now) && b.End().After(now)
	case StatePast:
		return b.Start().Before(now) && b.End().Before(now)
	case StateFuture:
		return b.Start().After(now) && b.End().After(now)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	default:
		return true
	}
}

// Filter returns the bookings matching the state at the given instant,
// preserving the relative order of the input.
func (s State) Filter(bookings []*Booking, now time.Time) []*Booking {
	filtered := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if s.Matches(b, now) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
