package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-platform/shareit-server/internal/application"
	"github.com/shareit-platform/shareit-server/internal/domain"
	"github.com/shareit-platform/shareit-server/internal/domain/item"
	"github.com/shareit-platform/shareit-server/internal/domain/user"
	"github.com/shareit-platform/shareit-server/internal/events"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	svc       *application.BookingService
	users     *fakeUserRepo
	items     *fakeItemRepo
	bookings  *fakeBookingRepo
	publisher *fakePublisher

	owner  *user.User
	booker *user.User
	item   *item.Item
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	users := newFakeUserRepo()
	items := newFakeItemRepo()
	bookings := newFakeBookingRepo(items)
	publisher := &fakePublisher{}

	svc := application.NewBookingService(
		bookings, items, users, publisher, zap.NewNop(),
		func() time.Time { return testNow },
	)

	owner, err := user.NewUser("Alice", "alice@example.com")
	require.NoError(t, err)
	booker, err := user.NewUser("Bob", "bob@example.com")
	require.NoError(t, err)
	require.NoError(t, users.Save(context.Background(), owner))
	require.NoError(t, users.Save(context.Background(), booker))

	it, err := item.NewItem(owner.ID(), "Drill", "Cordless drill", true, nil)
	require.NoError(t, err)
	require.NoError(t, items.Save(context.Background(), it))

	return &bookingFixture{
		svc:       svc,
		users:     users,
		items:     items,
		bookings:  bookings,
		publisher: publisher,
		owner:     owner,
		booker:    booker,
		item:      it,
	}
}

func (f *bookingFixture) createRequest() application.CreateBookingRequest {
	return application.CreateBookingRequest{
		ItemID: f.item.ID(),
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("creates a waiting booking and publishes an event", func(t *testing.T) {
		f := newBookingFixture(t)

		dto, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		assert.Equal(t, "WAITING", dto.Status)
		assert.Equal(t, f.booker.ID(), dto.BookerID)
		require.NotNil(t, dto.Item)
		assert.Equal(t, f.item.ID(), dto.Item.ID)
		require.NotNil(t, dto.Booker)
		assert.Equal(t, "Bob", dto.Booker.Name)

		require.Len(t, f.publisher.published, 1)
		assert.Equal(t, events.TopicBookingEvents, f.publisher.published[0].Topic)
		assert.Equal(t, events.BookingRequested, f.publisher.published[0].Event.Type)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		f := newBookingFixture(t)
		req := f.createRequest()
		req.ItemID = uuid.New()

		_, err := f.svc.Create(context.Background(), f.booker.ID(), req)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("end not after start is a bad request", func(t *testing.T) {
		f := newBookingFixture(t)
		req := f.createRequest()
		req.End = req.Start

		_, err := f.svc.Create(context.Background(), f.booker.ID(), req)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("unavailable item is a bad request", func(t *testing.T) {
		f := newBookingFixture(t)
		available := false
		f.item.ApplyUpdate(nil, nil, &available, nil)
		require.NoError(t, f.items.Update(context.Background(), f.item))

		_, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("owner booking own item is told not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Create(context.Background(), f.owner.ID(), f.createRequest())
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("unknown booker is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Create(context.Background(), uuid.New(), f.createRequest())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookingService_Approve(t *testing.T) {
	t.Run("owner approves a waiting booking", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		dto, err := f.svc.Approve(context.Background(), f.owner.ID(), created.ID, true)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", dto.Status)

		stored, err := f.bookings.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", stored.Status().String())

		require.Len(t, f.publisher.published, 2)
		assert.Equal(t, events.BookingApproved, f.publisher.published[1].Event.Type)
	})

	t.Run("owner rejects a waiting booking", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		dto, err := f.svc.Approve(context.Background(), f.owner.ID(), created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", dto.Status)
		assert.Equal(t, events.BookingRejected, f.publisher.published[1].Event.Type)
	})

	t.Run("non-owner is told not found", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), f.booker.ID(), created.ID, true)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("second approval of an approved booking is a bad request", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), f.owner.ID(), created.ID, true)
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), f.owner.ID(), created.ID, true)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("deciding a rejected booking is a bad request", func(t *testing.T) {
		f := newBookingFixture(t)
		created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), f.owner.ID(), created.ID, false)
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), f.owner.ID(), created.ID, true)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Approve(context.Background(), f.owner.ID(), uuid.New(), true)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookingService_GetByID(t *testing.T) {
	f := newBookingFixture(t)
	created, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
	require.NoError(t, err)

	stranger, err := user.NewUser("Carol", "carol@example.com")
	require.NoError(t, err)
	require.NoError(t, f.users.Save(context.Background(), stranger))

	t.Run("booker sees the booking", func(t *testing.T) {
		dto, err := f.svc.GetByID(context.Background(), f.booker.ID(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, dto.ID)
	})

	t.Run("owner sees the booking", func(t *testing.T) {
		dto, err := f.svc.GetByID(context.Background(), f.owner.ID(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, dto.ID)
	})

	t.Run("anyone else is told not found", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), stranger.ID(), created.ID)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookingService_ListForBooker(t *testing.T) {
	t.Run("unknown user is not found", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.ListForBooker(context.Background(), uuid.New(), "ALL", 0, 10)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("unknown state fails before any lookup", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "SOMETHING", 0, 10)
		assert.True(t, domain.IsUnsupportedState(err))
		assert.EqualError(t, err, "Unknown state: SOMETHING")
	})

	t.Run("a fresh future booking is absent from the PAST view", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		past, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "PAST", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, past)

		future, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "FUTURE", 0, 10)
		require.NoError(t, err)
		assert.Len(t, future, 1)
	})

	t.Run("ALL returns bookings start descending with item and booker", func(t *testing.T) {
		f := newBookingFixture(t)

		early := f.createRequest()
		late := f.createRequest()
		late.Start = late.Start.Add(72 * time.Hour)
		late.End = late.End.Add(72 * time.Hour)

		first, err := f.svc.Create(context.Background(), f.booker.ID(), early)
		require.NoError(t, err)
		second, err := f.svc.Create(context.Background(), f.booker.ID(), late)
		require.NoError(t, err)

		list, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "ALL", 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
		require.NotNil(t, list[0].Item)
		require.NotNil(t, list[0].Booker)
		assert.Equal(t, "Bob", list[0].Booker.Name)
	})

	t.Run("WAITING and REJECTED filter on status", func(t *testing.T) {
		f := newBookingFixture(t)

		waiting, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		other := f.createRequest()
		other.Start = other.Start.Add(120 * time.Hour)
		other.End = other.End.Add(120 * time.Hour)
		rejected, err := f.svc.Create(context.Background(), f.booker.ID(), other)
		require.NoError(t, err)
		_, err = f.svc.Approve(context.Background(), f.owner.ID(), rejected.ID, false)
		require.NoError(t, err)

		list, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "WAITING", 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, waiting.ID, list[0].ID)

		list, err = f.svc.ListForBooker(context.Background(), f.booker.ID(), "REJECTED", 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, rejected.ID, list[0].ID)
	})

	t.Run("pagination windows the newest-first order", func(t *testing.T) {
		f := newBookingFixture(t)

		var ids []uuid.UUID
		for i := 0; i < 3; i++ {
			req := f.createRequest()
			req.Start = req.Start.Add(time.Duration(i) * 96 * time.Hour)
			req.End = req.End.Add(time.Duration(i) * 96 * time.Hour)
			dto, err := f.svc.Create(context.Background(), f.booker.ID(), req)
			require.NoError(t, err)
			ids = append(ids, dto.ID)
		}

		page, err := f.svc.ListForBooker(context.Background(), f.booker.ID(), "ALL", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, ids[1], page[0].ID)
	})
}

func TestBookingService_ListForOwner(t *testing.T) {
	t.Run("unknown user is not found", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.ListForOwner(context.Background(), uuid.New(), "ALL", 0, 10)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("spans all owned items, start descending", func(t *testing.T) {
		f := newBookingFixture(t)

		second, err := item.NewItem(f.owner.ID(), "Saw", "Hand saw", true, nil)
		require.NoError(t, err)
		require.NoError(t, f.items.Save(context.Background(), second))

		reqA := f.createRequest()
		reqB := f.createRequest()
		reqB.ItemID = second.ID()
		reqB.Start = reqB.Start.Add(72 * time.Hour)
		reqB.End = reqB.End.Add(72 * time.Hour)

		a, err := f.svc.Create(context.Background(), f.booker.ID(), reqA)
		require.NoError(t, err)
		b, err := f.svc.Create(context.Background(), f.booker.ID(), reqB)
		require.NoError(t, err)

		list, err := f.svc.ListForOwner(context.Background(), f.owner.ID(), "ALL", 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, b.ID, list[0].ID)
		assert.Equal(t, a.ID, list[1].ID)
	})

	t.Run("owner with no bookings gets an empty list", func(t *testing.T) {
		f := newBookingFixture(t)

		list, err := f.svc.ListForOwner(context.Background(), f.owner.ID(), "ALL", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("other owners' bookings stay invisible", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.Create(context.Background(), f.booker.ID(), f.createRequest())
		require.NoError(t, err)

		other, err := user.NewUser("Carol", "carol@example.com")
		require.NoError(t, err)
		require.NoError(t, f.users.Save(context.Background(), other))

		list, err := f.svc.ListForOwner(context.Background(), other.ID(), "ALL", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
