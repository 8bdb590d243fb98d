package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// Booking is the aggregate root for the booking domain: one reservation
// request on one item by one user over a time interval.
type Booking struct {
	id       uuid.UUID
	start    time.Time
	end      time.Time
	itemID   uuid.UUID
	bookerID uuid.UUID
	status   Status

	createdAt time.Time
}

// NewBooking creates a new Booking with status=WAITING.
//
// The time range must be strictly positive: end must be after start,
// which rejects equal timestamps and inverted ranges alike.
func NewBooking(itemID, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if itemID == uuid.Nil {
		return nil, domain.NewBadRequestError("item ID is required")
	}
	if bookerID == uuid.Nil {
		return nil, domain.NewBadRequestError("booker ID is required")
	}
	if !end.After(start) {
		return nil, domain.NewBadRequestError("booking end must be after start")
	}

	return &Booking{
		id:        uuid.New(),
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    StatusWaiting,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	start, end time.Time,
	itemID, bookerID uuid.UUID,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    status,
		createdAt: createdAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Start returns the reservation start time.
func (b *Booking) Start() time.Time { return b.start }

// End returns the reservation end time.
func (b *Booking) End() time.Time { return b.end }

// ItemID returns the reserved item's identifier.
func (b *Booking) ItemID() uuid.UUID { return b.itemID }

// BookerID returns the requesting user's identifier.
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }

// Status returns the current approval status.
func (b *Booking) Status() Status { return b.status }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// Decide resolves a WAITING booking to APPROVED or REJECTED.
func (b *Booking) Decide(approved bool) error {
	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewBadRequestError("booking already " + b.status.String())
	}
	b.status = target
	return nil
}
