package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// Item is a thing listed for sharing. The booking core treats it as
// read-only: ownership and identity are fixed at creation.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID

	createdAt time.Time
}

// NewItem creates a new item listing for the given owner.
func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewBadRequestError("owner ID is required")
	}
	if name == "" {
		return nil, domain.NewBadRequestError("item name is required")
	}
	if description == "" {
		return nil, domain.NewBadRequestError("item description is required")
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, createdAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the listing user's identifier.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// RequestID returns the item request this listing answers, or nil.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// ApplyUpdate merges a partial update: nil fields keep their current value.
func (i *Item) ApplyUpdate(name, description *string, available *bool, requestID *uuid.UUID) {
	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	if requestID != nil {
		i.requestID = requestID
	}
}
