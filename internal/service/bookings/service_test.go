package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) LastForItems(ctx context.Context, ids []int64, now time.Time) (map[int64]*domain.Booking, error) {
	args := m.Called(ctx, ids, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) NextForItems(ctx context.Context, ids []int64, now time.Time) (map[int64]*domain.Booking, error) {
	args := m.Called(ctx, ids, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ExistsFinished(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newService() (*Service, *mockBookingRepo, *mockUserRepo) {
	bookings := &mockBookingRepo{}
	users := &mockUserRepo{}
	s := NewService(bookings, users, logger.NewNop())
	s.timeProvider = fixedTime{now: now}
	return s, bookings, users
}

func fakeBooking(bookerID, ownerID int64) *domain.Booking {
	return &domain.Booking{
		ID:     gofakeit.Int64(),
		Start:  now.Add(24 * time.Hour),
		End:    now.Add(48 * time.Hour),
		Item:   &domain.Item{ID: 10, Name: gofakeit.ProductName(), OwnerID: ownerID, Available: true},
		Booker: &domain.User{ID: bookerID, Name: gofakeit.Name(), Email: gofakeit.Email()},
		Status: domain.StatusWaiting,
	}
}

func TestGetByID_VisibleToParticipants(t *testing.T) {
	for _, caller := range []int64{1, 2} {
		s, bookings, _ := newService()
		b := fakeBooking(1, 2)
		bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)

		resp, err := s.GetByID(context.Background(), b.ID, caller)

		require.NoError(t, err)
		assert.Equal(t, b.ID, resp.ID)
		assert.Equal(t, b.Start, resp.Start)
		assert.Equal(t, b.End, resp.End)
		assert.Equal(t, b.Item.Name, resp.Item.Name)
		assert.Equal(t, int64(1), resp.Booker.ID)
		assert.Equal(t, "WAITING", resp.Status)
	}
}

func TestGetByID_StrangerGetsNotFound(t *testing.T) {
	s, bookings, _ := newService()
	b := fakeBooking(1, 2)
	bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)

	_, err := s.GetByID(context.Background(), b.ID, 3)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_Missing(t *testing.T) {
	s, bookings, _ := newService()
	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := s.GetByID(context.Background(), 42, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByBooker_PassesFilter(t *testing.T) {
	s, bookings, users := newService()
	b := fakeBooking(1, 2)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	bookings.On("List", mock.Anything, domain.BookingFilter{
		Scope:  domain.ScopeBooker,
		UserID: 1,
		State:  domain.StateFuture,
		Now:    now,
		Page:   domain.Page{From: 0, Size: 10},
	}).Return([]*domain.Booking{b}, nil)

	resp, err := s.ListByBooker(context.Background(), &models.ListBookingsRequest{UserID: 1, State: "FUTURE", From: 0, Size: 10})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, b.ID, resp[0].ID)
	bookings.AssertExpectations(t)
}

func TestListByOwner_UsesOwnerScope(t *testing.T) {
	s, bookings, users := newService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	bookings.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.Scope == domain.ScopeOwner && f.UserID == 2 && f.State == domain.StateAll
	})).Return([]*domain.Booking{}, nil)

	resp, err := s.ListByOwner(context.Background(), &models.ListBookingsRequest{UserID: 2, State: "ALL", From: 0, Size: 10})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestList_UnknownState(t *testing.T) {
	for _, token := range []string{"FOO", "future", "APPROVED", ""} {
		s, bookings, users := newService()
		users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

		_, err := s.ListByBooker(context.Background(), &models.ListBookingsRequest{UserID: 1, State: token, From: 0, Size: 10})

		assert.ErrorIs(t, err, ErrUnknownState, token)
		assert.ErrorIs(t, err, domain.ErrValidation, token)
		bookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	}
}

func TestList_InvalidPagination(t *testing.T) {
	tests := []struct {
		name string
		from int
		size int
	}{
		{name: "negative from", from: -1, size: 10},
		{name: "zero size", from: 0, size: 0},
		{name: "negative size", from: 0, size: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, users := newService()
			users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

			_, err := s.ListByBooker(context.Background(), &models.ListBookingsRequest{UserID: 1, State: "ALL", From: tt.from, Size: tt.size})

			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestList_UnknownUser(t *testing.T) {
	s, _, users := newService()
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, userRepo.ErrUserNotFound)

	_, err := s.ListByOwner(context.Background(), &models.ListBookingsRequest{UserID: 9, State: "ALL", Size: 10})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNeighbours(t *testing.T) {
	s, bookings, _ := newService()
	last := fakeBooking(4, 2)
	next := fakeBooking(5, 2)

	bookings.On("LastForItems", mock.Anything, []int64{10, 11}, now).Return(map[int64]*domain.Booking{10: last}, nil)
	bookings.On("NextForItems", mock.Anything, []int64{10, 11}, now).Return(map[int64]*domain.Booking{10: next}, nil)

	lastByItem, nextByItem, err := s.Neighbours(context.Background(), []int64{10, 11})

	require.NoError(t, err)
	assert.Equal(t, &domain.BookingSummary{ID: last.ID, BookerID: 4}, lastByItem[10])
	assert.Equal(t, &domain.BookingSummary{ID: next.ID, BookerID: 5}, nextByItem[10])
	assert.Nil(t, lastByItem[11])
}

func TestCheckCanComment(t *testing.T) {
	s, bookings, _ := newService()
	bookings.On("ExistsFinished", mock.Anything, int64(10), int64(1), now).Return(true, nil)
	bookings.On("ExistsFinished", mock.Anything, int64(10), int64(3), now).Return(false, nil)

	assert.NoError(t, s.CheckCanComment(context.Background(), 10, 1))

	err := s.CheckCanComment(context.Background(), 10, 3)
	assert.ErrorIs(t, err, ErrBookingNotFinished)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
