package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for item requests.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequest, error)

	// FindByRequestor retrieves a user's own requests, oldest first.
	FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*ItemRequest, error)

	// FindOthers retrieves requests from every other user, newest
	// first, with offset pagination.
	FindOthers(ctx context.Context, requestorID uuid.UUID, offset, limit int) ([]*ItemRequest, error)

	Save(ctx context.Context, r *ItemRequest) error
}
