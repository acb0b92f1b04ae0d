package decide_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/booking"
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

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	transitions []string
}

func (m *countingMetrics) ObserveBookingTransition(status string) {
	m.transitions = append(m.transitions, status)
}

func waitingBooking() *domain.Booking {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:     5,
		Start:  start,
		End:    start.Add(24 * time.Hour),
		Item:   &domain.Item{ID: 10, Name: "Drill", OwnerID: 2, Available: true},
		Booker: &domain.User{ID: 1, Name: "Booker"},
		Status: domain.StatusWaiting,
	}
}

func newUseCase(repo *mockBookingRepo, m *countingMetrics) *UseCase {
	return NewUseCase(repo, inlineTx{}, m, logger.NewNop())
}

func TestExecute_Approve(t *testing.T) {
	repo := &mockBookingRepo{}
	m := &countingMetrics{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(waitingBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusApproved).Return(nil)

	resp, err := newUseCase(repo, m).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5, Approved: true})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, []string{"APPROVED"}, m.transitions)
	repo.AssertExpectations(t)
}

func TestExecute_Reject(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(waitingBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusRejected).Return(nil)

	resp, err := newUseCase(repo, &countingMetrics{}).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5})

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
}

func TestExecute_NonOwnerGetsNotFound(t *testing.T) {
	for _, caller := range []int64{1, 3} {
		repo := &mockBookingRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).Return(waitingBooking(), nil)

		_, err := newUseCase(repo, &countingMetrics{}).Execute(context.Background(), &Request{OwnerID: caller, BookingID: 5, Approved: true})

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestExecute_TerminalStatusIsValidationError(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			booking := waitingBooking()
			booking.Status = status

			repo := &mockBookingRepo{}
			repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)

			_, err := newUseCase(repo, &countingMetrics{}).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5, Approved: true})

			assert.ErrorIs(t, err, ErrNotWaiting)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExecute_ConcurrentDecisionLoses(t *testing.T) {
	repo := &mockBookingRepo{}
	m := &countingMetrics{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(waitingBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusApproved).Return(bookingRepo.ErrStatusConflict)

	_, err := newUseCase(repo, m).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5, Approved: true})

	assert.ErrorIs(t, err, ErrNotWaiting)
	assert.Empty(t, m.transitions)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := newUseCase(repo, &countingMetrics{}).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.New("timeout"))

	_, err := newUseCase(repo, &countingMetrics{}).Execute(context.Background(), &Request{OwnerID: 2, BookingID: 5})

	assert.ErrorIs(t, err, ErrInternal)
}
