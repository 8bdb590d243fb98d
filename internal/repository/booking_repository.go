package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shareit-platform/shareit-server/internal/domain"
	bookingDomain "github.com/shareit-platform/shareit-server/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table. The interval
// columns are named start_date/end_date since "end" is a reserved word.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate time.Time `gorm:"column:start_date;not null;index"`
	EndDate   time.Time `gorm:"column:end_date;not null"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BookerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByBooker retrieves bookings requested by a user, start descending.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID uuid.UUID, offset, limit int) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("booker_id = ?", bookerID).
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by booker: %w", err)
	}
	return toDomainBookings(models)
}

// FindByOwner retrieves bookings across every item owned by a user,
// globally ordered start descending.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("bookings.start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by owner: %w", err)
	}
	return toDomainBookings(models)
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// UpdateStatusIfWaiting atomically moves the booking out of WAITING.
// The WHERE clause carries the state guard, so of two concurrent
// approval requests exactly one sees RowsAffected == 1.
func (r *GormBookingRepository) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, target bookingDomain.Status) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", id, bookingDomain.StatusWaiting.String()).
		Update("status", target.String())
	if result.Error != nil {
		return false, fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// NextBooking returns the earliest approved booking on the item
// starting after now, or nil if there is none.
func (r *GormBookingRepository) NextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, error) {
	return r.edgeBooking(ctx, itemID, "start_date > ?", "start_date ASC", now)
}

// LastBooking returns the latest approved booking on the item starting
// before now, or nil if there is none.
func (r *GormBookingRepository) LastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, error) {
	return r.edgeBooking(ctx, itemID, "start_date < ?", "start_date DESC", now)
}

func (r *GormBookingRepository) edgeBooking(ctx context.Context, itemID uuid.UUID, cond, order string, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, bookingDomain.StatusApproved.String()).
		Where(cond, now).
		Order(order).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find edge booking: %w", err)
	}
	return toDomainBooking(&model)
}

// HasFinishedBooking reports whether the user has any booking on the
// item that already ended.
func (r *GormBookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("booker_id = ? AND item_id = ? AND end_date < ?", bookerID, itemID, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count finished bookings: %w", err)
	}
	return count > 0, nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		StartDate: bk.Start(),
		EndDate:   bk.End(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		Status:    bk.Status().String(),
		CreatedAt: bk.CreatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.StartDate,
		m.EndDate,
		m.ItemID,
		m.BookerID,
		status,
		m.CreatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}
