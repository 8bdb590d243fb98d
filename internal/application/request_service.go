package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/request"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
)

// CreateRequestRequest holds the description of a new item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestService orchestrates item-request use cases.
type RequestService struct {
	requests request.Repository
	items    item.Repository
	users    user.Repository
	logger   *zap.Logger
	now      Clock
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests request.Repository,
	items item.Repository,
	users user.Repository,
	logger *zap.Logger,
	now Clock,
) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		logger:   logger,
		now:      now,
	}
}

// Create posts a new item request for the given user.
func (s *RequestService) Create(ctx context.Context, requestorID uuid.UUID, req CreateRequestRequest) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	r, err := request.NewItemRequest(requestorID, req.Description, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}

	s.logger.Info("item request created",
		zap.String("request_id", r.ID().String()),
		zap.String("requestor_id", requestorID.String()),
	)

	result := toRequestDTO(r, nil)
	return &result, nil
}

// ListOwn retrieves the user's own requests, oldest first, each with
// the listings created in answer to it.
func (s *RequestService) ListOwn(ctx context.Context, requestorID uuid.UUID) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}
	list, err := s.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own requests: %w", err)
	}
	return s.withItems(ctx, list)
}

// ListOthers retrieves requests from other users, newest first, paginated.
func (s *RequestService) ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	list, err := s.requests.FindOthers(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list other users' requests: %w", err)
	}
	return s.withItems(ctx, list)
}

// GetByID retrieves one request with its answering listings. Any
// existing user may look.
func (s *RequestService) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByRequestID(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load items for request: %w", err)
	}
	result := toRequestDTO(r, items)
	return &result, nil
}

func (s *RequestService) withItems(ctx context.Context, list []*request.ItemRequest) ([]RequestDTO, error) {
	dtos := make([]RequestDTO, len(list))
	for i, r := range list {
		items, err := s.items.FindByRequestID(ctx, r.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load items for request: %w", err)
		}
		dtos[i] = toRequestDTO(r, items)
	}
	return dtos, nil
}
