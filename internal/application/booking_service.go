package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareit-platform/shareit-server/internal/domain"
	"github.com/shareit-platform/shareit-server/internal/domain/booking"
	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
	"github.com/shareit-platform/shareit-server/internal/events"
)

// CreateBookingRequest holds the data needed to request a new booking.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingService is the booking lifecycle engine. It enforces every
// booking invariant and mediates all booking mutations and reads.
//
// Authorization failures are reported as not-found, never as forbidden:
// a caller probing another user's booking learns nothing about whether
// it exists.
type BookingService struct {
	bookings  booking.Repository
	items     item.Repository
	users     user.Repository
	publisher events.Publisher
	logger    *zap.Logger
	now       Clock
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings booking.Repository,
	items item.Repository,
	users user.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
	now Clock,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Create validates and persists a new booking with status WAITING.
//
// Checks run in order: item exists, end after start, item available,
// booker is not the item's owner (reported as not-found), booker
// exists. The first failed check wins.
func (s *BookingService) Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	bk, err := booking.NewBooking(req.ItemID, bookerID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if !it.Available() {
		return nil, domain.NewBadRequestError("item is not available for booking")
	}
	if it.OwnerID() == bookerID {
		// An owner booking their own item is told the item does not
		// exist, same as any other caller without visibility.
		return nil, domain.NewNotFoundError("item", req.ItemID.String())
	}

	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("item_id", it.ID().String()),
		zap.String("booker_id", bookerID.String()),
	)

	s.publishEvent(ctx, events.BookingRequested, bk.ID().String(), events.BookingRequestedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    it.OwnerID(),
		BookerID:   bookerID,
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: s.now(),
	})

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

// Approve resolves a waiting booking to APPROVED or REJECTED. Only the
// item's owner may call it, and only while the booking is WAITING: an
// already-approved booking fails with a bad-request regardless of the
// requested direction.
func (s *BookingService) Approve(ctx context.Context, userID, bookingID uuid.UUID, approved bool) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != userID {
		return nil, domain.NewNotFoundError("booking", bookingID.String())
	}

	if bk.Status() == booking.StatusApproved {
		return nil, domain.NewBadRequestError("booking already approved")
	}

	target := booking.StatusRejected
	if approved {
		target = booking.StatusApproved
	}

	// The conditional update only fires while the row still holds
	// WAITING, so two concurrent approvals cannot both win and a
	// rejected booking stays rejected.
	updated, err := s.bookings.UpdateStatusIfWaiting(ctx, bk.ID(), target)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !updated {
		return nil, domain.NewBadRequestError("booking already decided")
	}

	if err := bk.Decide(approved); err != nil {
		return nil, err
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking decided",
		zap.String("booking_id", bk.ID().String()),
		zap.String("status", bk.Status().String()),
	)

	eventType := events.BookingRejected
	if approved {
		eventType = events.BookingApproved
	}
	s.publishEvent(ctx, eventType, bk.ID().String(), events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    it.OwnerID(),
		BookerID:   bk.BookerID(),
		Status:     bk.Status().String(),
		OccurredAt: s.now(),
	})

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

// GetByID retrieves a booking. Only the item's owner and the original
// booker have visibility; anyone else gets not-found.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != userID && bk.BookerID() != userID {
		return nil, domain.NewNotFoundError("booking", bookingID.String())
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

// ListForBooker returns the renter's view: the user's own bookings,
// start descending, paginated, then narrowed by the state filter.
func (s *BookingService) ListForBooker(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.FindByBooker(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for booker: %w", err)
	}

	filtered := st.Filter(list, s.now())
	return s.hydrate(ctx, filtered, booker)
}

// ListForOwner returns the owner's view: every booking on every item
// the user owns, globally ordered start descending, paginated, then
// narrowed by the state filter.
func (s *BookingService) ListForOwner(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.FindByOwner(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for owner: %w", err)
	}

	filtered := st.Filter(list, s.now())
	return s.hydrate(ctx, filtered, nil)
}

// hydrate maps bookings to DTOs with their items and bookers embedded.
// When booker is non-nil it is used for every booking (renter's view);
// otherwise bookers are batch-loaded.
func (s *BookingService) hydrate(ctx context.Context, list []*booking.Booking, booker *user.User) ([]BookingDTO, error) {
	itemIDs := make([]uuid.UUID, 0, len(list))
	bookerIDs := make([]uuid.UUID, 0, len(list))
	for _, bk := range list {
		itemIDs = append(itemIDs, bk.ItemID())
		bookerIDs = append(bookerIDs, bk.BookerID())
	}

	itemsByID, err := s.items.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for bookings: %w", err)
	}

	var usersByID map[uuid.UUID]*user.User
	if booker == nil {
		usersByID, err = s.users.FindByIDs(ctx, bookerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookers for bookings: %w", err)
		}
	}

	dtos := make([]BookingDTO, len(list))
	for i, bk := range list {
		b := booker
		if b == nil {
			b = usersByID[bk.BookerID()]
		}
		dtos[i] = toBookingDTO(bk, itemsByID[bk.ItemID()], b)
	}
	return dtos, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("shareit-server", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.Publish(ctx, events.TopicBookingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
