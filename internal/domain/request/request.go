package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// ItemRequest is a wish for an item nobody has listed yet. Listings
// created in answer to it carry its id in their requestID field.
type ItemRequest struct {
	id          uuid.UUID
	description string
	requestorID uuid.UUID
	created     time.Time
}

// NewItemRequest creates a new item request for the given requestor.
func NewItemRequest(requestorID uuid.UUID, description string, created time.Time) (*ItemRequest, error) {
	if description == "" {
		return nil, domain.NewBadRequestError("request description is required")
	}
	return &ItemRequest{
		id:          uuid.New(),
		description: description,
		requestorID: requestorID,
		created:     created,
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id uuid.UUID, description string, requestorID uuid.UUID, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

// ID returns the request's unique identifier.
func (r *ItemRequest) ID() uuid.UUID { return r.id }

// Description returns what the requestor is looking for.
func (r *ItemRequest) Description() string { return r.description }

// RequestorID returns the requesting user's identifier.
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }

// Created returns the creation timestamp.
func (r *ItemRequest) Created() time.Time { return r.created }
