package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for booking aggregates.
type Repository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByBooker retrieves bookings requested by a user, ordered by
	// start descending, with offset pagination.
	FindByBooker(ctx context.Context, bookerID uuid.UUID, offset, limit int) ([]*Booking, error)

	// FindByOwner retrieves bookings on every item owned by a user,
	// globally ordered by start descending, with offset pagination.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// UpdateStatusIfWaiting atomically sets the booking's status to
	// target only while its current status is WAITING, and reports
	// whether a row was updated. This is the storage-level guard that
	// makes concurrent approval requests safe.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, target Status) (bool, error)

	// NextBooking returns the earliest approved booking on the item
	// starting after the given instant, or nil if there is none.
	NextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)

	// LastBooking returns the latest approved booking on the item
	// starting before the given instant, or nil if there is none.
	LastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)

	// HasFinishedBooking reports whether the user has any booking on
	// the item that already ended at the given instant. Used for
	// comment eligibility.
	HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}
