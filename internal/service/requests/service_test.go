package requests

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareIt/internal/service/requests/models"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
)

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, r *domain.Request) (*domain.Request, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *mockRequestRepo) ListByRequester(ctx context.Context, id int64) ([]*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Request), args.Error(1)
}

func (m *mockRequestRepo) ListOthers(ctx context.Context, id int64, offset, limit uint64) ([]*domain.Request, error) {
	args := m.Called(ctx, id, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Request), args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) ListByRequests(ctx context.Context, ids []int64) (map[int64][]*domain.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]*domain.Item), args.Error(1)
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

func newService() (*Service, *mockRequestRepo, *mockItemRepo, *mockUserRepo) {
	reqs, items, users := &mockRequestRepo{}, &mockItemRepo{}, &mockUserRepo{}
	s := NewService(reqs, items, users, logger.NewNop())
	s.timeProvider = fixedTime{now: now}
	return s, reqs, items, users
}

func TestCreate_StampsCreated(t *testing.T) {
	s, reqs, _, users := newService()
	description := gofakeit.Sentence(5)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	reqs.On("Create", mock.Anything, &domain.Request{Description: description, RequesterID: 1, Created: now}).
		Return(&domain.Request{ID: 3, Description: description, RequesterID: 1, Created: now}, nil)

	resp, err := s.Create(context.Background(), 1, &models.CreateRequestRequest{Description: description})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, now, resp.Created)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestCreate_UnknownUser(t *testing.T) {
	s, _, _, users := newService()
	users.On("GetByID", mock.Anything, int64(1)).Return(nil, userRepo.ErrUserNotFound)

	_, err := s.Create(context.Background(), 1, &models.CreateRequestRequest{Description: "ladder"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_JoinsItems(t *testing.T) {
	s, reqs, items, users := newService()
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	reqs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Request{ID: 3, Description: "ladder", RequesterID: 1, Created: now}, nil)
	items.On("ListByRequests", mock.Anything, []int64{3}).Return(map[int64][]*domain.Item{
		3: {{ID: 8, Name: "Ladder", OwnerID: 2, Available: true}},
	}, nil)

	resp, err := s.GetByID(context.Background(), 2, 3)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(8), resp.Items[0].ID)
	assert.Equal(t, int64(3), resp.Items[0].RequestID)
}

func TestGetByID_NotFound(t *testing.T) {
	s, reqs, _, users := newService()
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	reqs.On("GetByID", mock.Anything, int64(3)).Return(nil, requestRepo.ErrRequestNotFound)

	_, err := s.GetByID(context.Background(), 2, 3)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListOthers_PageAlignedOffset(t *testing.T) {
	tests := []struct {
		from, size int
		offset     uint64
	}{
		{from: 0, size: 10, offset: 0},
		{from: 7, size: 5, offset: 5},
		{from: 10, size: 5, offset: 10},
		{from: 3, size: 20, offset: 0},
	}

	for _, tt := range tests {
		s, reqs, items, users := newService()
		users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
		reqs.On("ListOthers", mock.Anything, int64(1), tt.offset, uint64(tt.size)).Return([]*domain.Request{}, nil)
		items.On("ListByRequests", mock.Anything, []int64{}).Return(map[int64][]*domain.Item{}, nil)

		_, err := s.ListOthers(context.Background(), 1, tt.from, tt.size)

		require.NoError(t, err)
		reqs.AssertExpectations(t)
	}
}

func TestListOthers_InvalidPagination(t *testing.T) {
	s, _, _, users := newService()
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

	_, err := s.ListOthers(context.Background(), 1, -1, 10)

	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestListMine(t *testing.T) {
	s, reqs, items, users := newService()
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	reqs.On("ListByRequester", mock.Anything, int64(1)).Return([]*domain.Request{
		{ID: 5, Description: "newer", RequesterID: 1, Created: now},
		{ID: 4, Description: "older", RequesterID: 1, Created: now.Add(-time.Hour)},
	}, nil)
	items.On("ListByRequests", mock.Anything, []int64{5, 4}).Return(map[int64][]*domain.Item{}, nil)

	resp, err := s.ListMine(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(5), resp[0].ID)
}
