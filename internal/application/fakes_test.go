package application_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
	"github.com/shareit-platform/shareit-server/internal/domain/booking"
	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/request"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
	"github.com/shareit-platform/shareit-server/internal/events"
)

// In-memory repository fakes implementing the domain contracts,
// including the ordering and pagination the gorm implementations
// provide, so service tests exercise the real query semantics.

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*user.User, error) {
	result := make(map[uuid.UUID]*user.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	list := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt().Before(list[j].CreatedAt()) })
	return list, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return domain.NewNotFoundError("user", u.ID().String())
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*item.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*item.Item)}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item", id.String())
	}
	return it, nil
}

func (r *fakeItemRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*item.Item, error) {
	result := make(map[uuid.UUID]*item.Item)
	for _, id := range ids {
		if it, ok := r.items[id]; ok {
			result[id] = it
		}
	}
	return result, nil
}

func (r *fakeItemRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*item.Item, error) {
	var list []*item.Item
	for _, it := range r.items {
		if it.OwnerID() == ownerID {
			list = append(list, it)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt().Before(list[j].CreatedAt()) })
	return list, nil
}

func (r *fakeItemRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]*item.Item, error) {
	var list []*item.Item
	for _, it := range r.items {
		if it.RequestID() != nil && *it.RequestID() == requestID {
			list = append(list, it)
		}
	}
	return list, nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string) ([]*item.Item, error) {
	var list []*item.Item
	for _, it := range r.items {
		if it.Available() && (containsFold(it.Name(), text) || containsFold(it.Description(), text)) {
			list = append(list, it)
		}
	}
	return list, nil
}

func (r *fakeItemRepo) Save(_ context.Context, it *item.Item) error {
	r.items[it.ID()] = it
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, it *item.Item) error {
	if _, ok := r.items[it.ID()]; !ok {
		return domain.NewNotFoundError("item", it.ID().String())
	}
	r.items[it.ID()] = it
	return nil
}

type fakeBookingRepo struct {
	bookings []*booking.Booking
	items    *fakeItemRepo
}

func newFakeBookingRepo(items *fakeItemRepo) *fakeBookingRepo {
	return &fakeBookingRepo{items: items}
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, domain.NewNotFoundError("booking", id.String())
}

func (r *fakeBookingRepo) FindByBooker(_ context.Context, bookerID uuid.UUID, offset, limit int) ([]*booking.Booking, error) {
	var list []*booking.Booking
	for _, b := range r.bookings {
		if b.BookerID() == bookerID {
			list = append(list, b)
		}
	}
	return paginateStartDesc(list, offset, limit), nil
}

func (r *fakeBookingRepo) FindByOwner(_ context.Context, ownerID uuid.UUID, offset, limit int) ([]*booking.Booking, error) {
	var list []*booking.Booking
	for _, b := range r.bookings {
		it, ok := r.items.items[b.ItemID()]
		if ok && it.OwnerID() == ownerID {
			list = append(list, b)
		}
	}
	return paginateStartDesc(list, offset, limit), nil
}

func (r *fakeBookingRepo) Save(_ context.Context, b *booking.Booking) error {
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeBookingRepo) UpdateStatusIfWaiting(_ context.Context, id uuid.UUID, target booking.Status) (bool, error) {
	for i, b := range r.bookings {
		if b.ID() != id {
			continue
		}
		if b.Status() != booking.StatusWaiting {
			return false, nil
		}
		r.bookings[i] = booking.ReconstructBooking(
			b.ID(), b.Start(), b.End(), b.ItemID(), b.BookerID(), target, b.CreatedAt(),
		)
		return true, nil
	}
	return false, nil
}

func (r *fakeBookingRepo) NextBooking(_ context.Context, itemID uuid.UUID, now time.Time) (*booking.Booking, error) {
	var next *booking.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || b.Status() != booking.StatusApproved || !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next, nil
}

func (r *fakeBookingRepo) LastBooking(_ context.Context, itemID uuid.UUID, now time.Time) (*booking.Booking, error) {
	var last *booking.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || b.Status() != booking.StatusApproved || !b.Start().Before(now) {
			continue
		}
		if last == nil || b.Start().After(last.Start()) {
			last = b
		}
	}
	return last, nil
}

func (r *fakeBookingRepo) HasFinishedBooking(_ context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.BookerID() == bookerID && b.ItemID() == itemID && b.End().Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func paginateStartDesc(list []*booking.Booking, offset, limit int) []*booking.Booking {
	sort.Slice(list, func(i, j int) bool { return list[i].Start().After(list[j].Start()) })
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list
}

type fakeCommentRepo struct {
	comments []*item.Comment
}

func (r *fakeCommentRepo) Save(_ context.Context, c *item.Comment) error {
	r.comments = append(r.comments, c)
	return nil
}

func (r *fakeCommentRepo) FindByItem(_ context.Context, itemID uuid.UUID) ([]*item.Comment, error) {
	var list []*item.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			list = append(list, c)
		}
	}
	return list, nil
}

type fakeRequestRepo struct {
	requests []*request.ItemRequest
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*request.ItemRequest, error) {
	for _, req := range r.requests {
		if req.ID() == id {
			return req, nil
		}
	}
	return nil, domain.NewNotFoundError("item request", id.String())
}

func (r *fakeRequestRepo) FindByRequestor(_ context.Context, requestorID uuid.UUID) ([]*request.ItemRequest, error) {
	var list []*request.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() == requestorID {
			list = append(list, req)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Created().Before(list[j].Created()) })
	return list, nil
}

func (r *fakeRequestRepo) FindOthers(_ context.Context, requestorID uuid.UUID, offset, limit int) ([]*request.ItemRequest, error) {
	var list []*request.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() != requestorID {
			list = append(list, req)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Created().After(list[j].Created()) })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeRequestRepo) Save(_ context.Context, req *request.ItemRequest) error {
	r.requests = append(r.requests, req)
	return nil
}

type publishedEvent struct {
	Topic string
	Key   string
	Event events.CloudEvent
}

type fakePublisher struct {
	published []publishedEvent
}

func (p *fakePublisher) Publish(_ context.Context, topic, key string, event events.CloudEvent) error {
	p.published = append(p.published, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
