package users

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareIt/internal/service/users/models"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
	"github.com/m04kA/SMC-ShareIt/pkg/ptr"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate(t *testing.T) {
	repo := &mockUserRepo{}
	name, email := gofakeit.Name(), gofakeit.Email()
	repo.On("Create", mock.Anything, &domain.User{Name: name, Email: email}).
		Return(&domain.User{ID: 1, Name: name, Email: email}, nil)

	resp, err := NewService(repo, logger.NewNop()).Create(context.Background(), &models.CreateUserRequest{Name: name, Email: email})

	require.NoError(t, err)
	assert.Equal(t, &models.UserResponse{ID: 1, Name: name, Email: email}, resp)
}

func TestCreate_BlankName(t *testing.T) {
	_, err := NewService(&mockUserRepo{}, logger.NewNop()).Create(context.Background(), &models.CreateUserRequest{Name: " ", Email: gofakeit.Email()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_PartialKeepsAbsentFields(t *testing.T) {
	repo := &mockUserRepo{}
	original := &domain.User{ID: 3, Name: "Old", Email: "old@example.com"}
	repo.On("GetByID", mock.Anything, int64(3)).Return(original, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	resp, err := NewService(repo, logger.NewNop()).Update(context.Background(), 3, &models.UpdateUserRequest{Name: ptr.Ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, "old@example.com", resp.Email)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, userRepo.ErrUserNotFound)

	_, err := NewService(repo, logger.NewNop()).GetByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Delete", mock.Anything, int64(7)).Return(userRepo.ErrUserNotFound)

	err := NewService(repo, logger.NewNop()).Delete(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
