package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for item listings.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Item, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*Item, error)

	// Search matches available items whose name or description contains
	// the text, case-insensitively. A blank text matches nothing.
	Search(ctx context.Context, text string) ([]*Item, error)

	Save(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)
}
