package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// Comment is feedback left on an item by a user who actually rented it.
type Comment struct {
	id       uuid.UUID
	text     string
	itemID   uuid.UUID
	authorID uuid.UUID
	created  time.Time
}

// NewComment creates a comment on an item. Eligibility (the author must
// have a finished booking on the item) is enforced by the item service,
// not here.
func NewComment(itemID, authorID uuid.UUID, text string, created time.Time) (*Comment, error) {
	if text == "" {
		return nil, domain.NewBadRequestError("comment text is required")
	}
	return &Comment{
		id:       uuid.New(),
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id uuid.UUID, text string, itemID, authorID uuid.UUID, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() uuid.UUID { return c.id }

// Text returns the comment text.
func (c *Comment) Text() string { return c.text }

// ItemID returns the commented item's identifier.
func (c *Comment) ItemID() uuid.UUID { return c.itemID }

// AuthorID returns the comment author's identifier.
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }

// Created returns the creation timestamp.
func (c *Comment) Created() time.Time { return c.created }
