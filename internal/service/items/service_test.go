package items

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/request"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings"
	"github.com/m04kA/SMC-ShareIt/internal/service/items/models"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
	"github.com/m04kA/SMC-ShareIt/pkg/ptr"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error) {
	args := m.Called(ctx, text, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
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

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByItems(ctx context.Context, ids []int64) (map[int64][]*domain.Comment, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]*domain.Comment), args.Error(1)
}

type mockBookingEngine struct {
	mock.Mock
}

func (m *mockBookingEngine) Neighbours(ctx context.Context, ids []int64) (map[int64]*domain.BookingSummary, map[int64]*domain.BookingSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(map[int64]*domain.BookingSummary), args.Get(1).(map[int64]*domain.BookingSummary), args.Error(2)
}

func (m *mockBookingEngine) CheckCanComment(ctx context.Context, itemID, userID int64) error {
	return m.Called(ctx, itemID, userID).Error(0)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	items    *mockItemRepo
	users    *mockUserRepo
	requests *mockRequestRepo
	comments *mockCommentRepo
	bookings *mockBookingEngine
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		items:    &mockItemRepo{},
		users:    &mockUserRepo{},
		requests: &mockRequestRepo{},
		comments: &mockCommentRepo{},
		bookings: &mockBookingEngine{},
	}
	f.svc = NewService(f.items, f.users, f.requests, f.comments, f.bookings, logger.NewNop())
	f.svc.timeProvider = fixedTime{now: now}
	return f
}

func fakeItem(ownerID int64) *domain.Item {
	return &domain.Item{
		ID:          10,
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(6),
		Available:   true,
		OwnerID:     ownerID,
	}
}

func TestCreate_WithUnknownRequest(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	f.requests.On("GetByID", mock.Anything, int64(99)).Return(nil, requestRepo.ErrRequestNotFound)

	_, err := f.svc.Create(context.Background(), 1, &models.CreateItemRequest{
		Name:        "Drill",
		Description: "Cordless",
		Available:   ptr.Ptr(true),
		RequestID:   ptr.Ptr(int64(99)),
	})

	assert.ErrorIs(t, err, ErrRequestNotFound)
	f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RequiresAvailable(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), 1, &models.CreateItemRequest{Name: "Drill", Description: "Cordless"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_NonOwnerGetsNotFound(t *testing.T) {
	f := newFixture()
	f.items.On("GetByID", mock.Anything, int64(10)).Return(fakeItem(2), nil)

	_, err := f.svc.Update(context.Background(), 3, 10, &models.UpdateItemRequest{Name: ptr.Ptr("x")})

	assert.ErrorIs(t, err, ErrItemNotFound)
	f.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_PartialKeepsAbsentFields(t *testing.T) {
	f := newFixture()
	item := fakeItem(2)
	description := item.Description
	f.items.On("GetByID", mock.Anything, int64(10)).Return(item, nil)
	f.items.On("Update", mock.Anything, item).Return(nil)

	resp, err := f.svc.Update(context.Background(), 2, 10, &models.UpdateItemRequest{Available: ptr.Ptr(false)})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, description, resp.Description)
}

func TestGetByID_OwnerSeesBookings(t *testing.T) {
	f := newFixture()
	item := fakeItem(2)
	f.users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(item, nil)
	f.comments.On("ListByItems", mock.Anything, []int64{10}).Return(map[int64][]*domain.Comment{
		10: {{ID: 1, Text: "great", AuthorName: "Ann", Created: now}},
	}, nil)
	f.bookings.On("Neighbours", mock.Anything, []int64{10}).Return(
		map[int64]*domain.BookingSummary{10: {ID: 5, BookerID: 1}},
		map[int64]*domain.BookingSummary{},
		nil,
	)

	resp, err := f.svc.GetByID(context.Background(), 2, 10)

	require.NoError(t, err)
	require.NotNil(t, resp.LastBooking)
	assert.Equal(t, int64(5), resp.LastBooking.ID)
	assert.Nil(t, resp.NextBooking)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Ann", resp.Comments[0].AuthorName)
}

func TestGetByID_OthersDoNotSeeBookings(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(fakeItem(2), nil)
	f.comments.On("ListByItems", mock.Anything, []int64{10}).Return(map[int64][]*domain.Comment{}, nil)

	resp, err := f.svc.GetByID(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Nil(t, resp.LastBooking)
	assert.Nil(t, resp.NextBooking)
	assert.NotNil(t, resp.Comments)
	f.bookings.AssertNotCalled(t, "Neighbours", mock.Anything, mock.Anything)
}

func TestSearch_BlankTextIsEmpty(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Search(context.Background(), "   ", 0, 10)

	require.NoError(t, err)
	assert.Empty(t, resp)
	f.items.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch(t *testing.T) {
	f := newFixture()
	f.items.On("Search", mock.Anything, "drill", domain.Page{From: 0, Size: 10}).Return([]*domain.Item{fakeItem(2)}, nil)

	resp, err := f.svc.Search(context.Background(), "drill", 0, 10)

	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestAddComment_NotEligible(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Ann"}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(fakeItem(2), nil)
	f.bookings.On("CheckCanComment", mock.Anything, int64(10), int64(1)).Return(bookings.ErrBookingNotFinished)

	_, err := f.svc.AddComment(context.Background(), 1, 10, &models.CreateCommentRequest{Text: "nice"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Ann"}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(fakeItem(2), nil)
	f.bookings.On("CheckCanComment", mock.Anything, int64(10), int64(1)).Return(nil)
	f.comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.Text == "nice" && c.ItemID == 10 && c.AuthorID == 1 && c.Created.Equal(now)
	})).Return(&domain.Comment{ID: 7, Text: "nice", ItemID: 10, AuthorID: 1, Created: now}, nil)

	resp, err := f.svc.AddComment(context.Background(), 1, 10, &models.CreateCommentRequest{Text: "nice"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Ann", resp.AuthorName)
	assert.Equal(t, now, resp.Created)
}

func TestGetByID_ItemMissing(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	f.items.On("GetByID", mock.Anything, int64(10)).Return(nil, itemRepo.ErrItemNotFound)

	_, err := f.svc.GetByID(context.Background(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
