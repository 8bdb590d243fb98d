package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain/booking"
	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/request"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
)

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookingRefDTO is the slim booking reference embedded in item views
// as the next or last booking.
type BookingRefDTO struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// CommentDTO is the response representation of an item comment.
type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the response representation of an item. NextBooking and
// LastBooking are populated only on owner-facing views.
type ItemDTO struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	RequestID   *uuid.UUID     `json:"request_id,omitempty"`
	NextBooking *BookingRefDTO `json:"next_booking,omitempty"`
	LastBooking *BookingRefDTO `json:"last_booking,omitempty"`
	Comments    []CommentDTO   `json:"comments,omitempty"`
}

// BookingDTO is the response representation of a booking, hydrated with
// its item and booker.
type BookingDTO struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
	BookerID uuid.UUID `json:"booker_id"`
	Item     *ItemDTO  `json:"item,omitempty"`
	Booker   *UserDTO  `json:"booker,omitempty"`
}

// RequestDTO is the response representation of an item request,
// together with the listings created in answer to it.
type RequestDTO struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	RequestorID uuid.UUID `json:"requestor_id"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func toItemDTO(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
}

func toBookingRefDTO(b *booking.Booking) *BookingRefDTO {
	if b == nil {
		return nil
	}
	return &BookingRefDTO{
		ID:       b.ID(),
		BookerID: b.BookerID(),
		Start:    b.Start(),
		End:      b.End(),
	}
}

func toBookingDTO(b *booking.Booking, it *item.Item, booker *user.User) BookingDTO {
	dto := BookingDTO{
		ID:       b.ID(),
		Start:    b.Start(),
		End:      b.End(),
		Status:   b.Status().String(),
		BookerID: b.BookerID(),
	}
	if it != nil {
		itemDTO := toItemDTO(it)
		dto.Item = &itemDTO
	}
	if booker != nil {
		userDTO := toUserDTO(booker)
		dto.Booker = &userDTO
	}
	return dto
}

func toRequestDTO(r *request.ItemRequest, items []*item.Item) RequestDTO {
	itemDTOs := make([]ItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = toItemDTO(it)
	}
	return RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequestorID: r.RequestorID(),
		Created:     r.Created(),
		Items:       itemDTOs,
	}
}
