package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareit-platform/shareit-server/internal/domain"
	"github.com/shareit-platform/shareit-server/internal/domain/booking"
	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
)

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// UpdateItemRequest holds a partial item update; nil fields are untouched.
type UpdateItemRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Available   *bool      `json:"available"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// CreateCommentRequest holds the text of a new item comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemService orchestrates item listing use cases.
type ItemService struct {
	items    item.Repository
	comments item.CommentRepository
	users    user.Repository
	bookings booking.Repository
	logger   *zap.Logger
	now      Clock
}

// NewItemService creates a new ItemService.
func NewItemService(
	items item.Repository,
	comments item.CommentRepository,
	users user.Repository,
	bookings booking.Repository,
	logger *zap.Logger,
	now Clock,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		users:    users,
		bookings: bookings,
		logger:   logger,
		now:      now,
	}
}

// Create lists a new item for the given owner.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	available := false
	if req.Available != nil {
		available = *req.Available
	}
	it, err := item.NewItem(ownerID, req.Name, req.Description, available, req.RequestID)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item created",
		zap.String("item_id", it.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)

	result := toItemDTO(it)
	return &result, nil
}

// Update applies a partial update. Only the owner may update; a
// non-owner is told the item does not exist.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != ownerID {
		return nil, domain.NewNotFoundError("item", itemID.String())
	}

	it.ApplyUpdate(req.Name, req.Description, req.Available, req.RequestID)
	if err := s.items.Update(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	result := toItemDTO(it)
	return &result, nil
}

// GetByID retrieves an item with its comments. The owner additionally
// sees the item's nearest approved bookings on either side of now.
func (s *ItemService) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	dto := toItemDTO(it)
	if it.OwnerID() == userID {
		if err := s.attachBookingWindow(ctx, &dto); err != nil {
			return nil, err
		}
	}
	if err := s.attachComments(ctx, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ListByOwner retrieves every item the user owns, each with its booking
// window and comments.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	list, err := s.items.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items by owner: %w", err)
	}

	dtos := make([]ItemDTO, len(list))
	for i, it := range list {
		dto := toItemDTO(it)
		if err := s.attachBookingWindow(ctx, &dto); err != nil {
			return nil, err
		}
		if err := s.attachComments(ctx, &dto); err != nil {
			return nil, err
		}
		dtos[i] = dto
	}
	return dtos, nil
}

// Search matches available items by text in name or description. A
// blank query returns an empty list.
func (s *ItemService) Search(ctx context.Context, text string) ([]ItemDTO, error) {
	if text == "" {
		return []ItemDTO{}, nil
	}
	list, err := s.items.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	dtos := make([]ItemDTO, len(list))
	for i, it := range list {
		dtos[i] = toItemDTO(it)
	}
	return dtos, nil
}

// AddComment creates a comment by a user who has a finished booking on
// the item; anyone else gets a bad-request.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	eligible, err := s.bookings.HasFinishedBooking(ctx, authorID, itemID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to check comment eligibility: %w", err)
	}
	if !eligible {
		return nil, domain.NewBadRequestError("user has no finished booking on this item")
	}

	c, err := item.NewComment(itemID, authorID, req.Text, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return &CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: author.Name(),
		Created:    c.Created(),
	}, nil
}

func (s *ItemService) attachBookingWindow(ctx context.Context, dto *ItemDTO) error {
	next, err := s.bookings.NextBooking(ctx, dto.ID, s.now())
	if err != nil {
		return fmt.Errorf("failed to load next booking: %w", err)
	}
	last, err := s.bookings.LastBooking(ctx, dto.ID, s.now())
	if err != nil {
		return fmt.Errorf("failed to load last booking: %w", err)
	}
	dto.NextBooking = toBookingRefDTO(next)
	dto.LastBooking = toBookingRefDTO(last)
	return nil
}

func (s *ItemService) attachComments(ctx context.Context, dto *ItemDTO) error {
	list, err := s.comments.FindByItem(ctx, dto.ID)
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	authorIDs := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		authorIDs = append(authorIDs, c.AuthorID())
	}
	authors, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return fmt.Errorf("failed to load comment authors: %w", err)
	}

	dtos := make([]CommentDTO, len(list))
	for i, c := range list {
		name := ""
		if a, ok := authors[c.AuthorID()]; ok {
			name = a.Name()
		}
		dtos[i] = CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: name,
			Created:    c.Created(),
		}
	}
	dto.Comments = dtos
	return nil
}
