package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
)

// Service чтение бронирований и проекции для каталога
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование может только его автор или владелец вещи, остальным оно "не найдено"
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsParticipant(userID) {
		s.logger.Warn("GetByID: user=%d is not a participant of booking id=%d", userID, id)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// ListByBooker бронирования, созданные пользователем
func (s *Service) ListByBooker(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	return s.list(ctx, domain.ScopeBooker, req)
}

// ListByOwner бронирования вещей пользователя
func (s *Service) ListByOwner(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	return s.list(ctx, domain.ScopeOwner, req)
}

func (s *Service) list(ctx context.Context, scope domain.BookingScope, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	s.logger.Info("List: fetching bookings for %s=%d, state=%s, from=%d, size=%d",
		scope, req.UserID, req.State, req.From, req.Size)

	if err := s.ensureUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	page := domain.Page{From: req.From, Size: req.Size}
	if !page.Valid() {
		s.logger.Warn("List: invalid pagination from=%d, size=%d", req.From, req.Size)
		return nil, ErrInvalidPagination
	}

	state, ok := domain.ParseBookingState(req.State)
	if !ok {
		s.logger.Warn("List: unknown state=%q", req.State)
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, req.State)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Scope:  scope,
		UserID: req.UserID,
		State:  state,
		Now:    s.timeProvider.Now(),
		Page:   page,
	})
	if err != nil {
		s.logger.Error("List: repository error for %s=%d: %v", scope, req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for %s=%d", len(bookings), scope, req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Neighbours последнее и следующее бронирование для каждой вещи
// Отклонённые бронирования не учитываются; если бронирования нет, ключа в карте нет
func (s *Service) Neighbours(ctx context.Context, itemIDs []int64) (last, next map[int64]*domain.BookingSummary, err error) {
	now := s.timeProvider.Now()

	lastBookings, err := s.bookingRepo.LastForItems(ctx, itemIDs, now)
	if err != nil {
		s.logger.Error("Neighbours: last bookings for %d items: %v", len(itemIDs), err)
		return nil, nil, fmt.Errorf("%w: Neighbours - repository error: %v", ErrInternal, err)
	}

	nextBookings, err := s.bookingRepo.NextForItems(ctx, itemIDs, now)
	if err != nil {
		s.logger.Error("Neighbours: next bookings for %d items: %v", len(itemIDs), err)
		return nil, nil, fmt.Errorf("%w: Neighbours - repository error: %v", ErrInternal, err)
	}

	return summaries(lastBookings), summaries(nextBookings), nil
}

// CheckCanComment пользователь может оставить отзыв, только если его бронирование вещи
// уже завершилось и не было отклонено
func (s *Service) CheckCanComment(ctx context.Context, itemID, userID int64) error {
	ok, err := s.bookingRepo.ExistsFinished(ctx, itemID, userID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("CheckCanComment: item=%d, user=%d: %v", itemID, userID, err)
		return fmt.Errorf("%w: CheckCanComment - repository error: %v", ErrInternal, err)
	}

	if !ok {
		s.logger.Warn("CheckCanComment: user=%d has no finished booking of item=%d", userID, itemID)
		return ErrBookingNotFinished
	}

	return nil
}

func (s *Service) ensureUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ensureUser: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("ensureUser: repository error for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: ensureUser - repository error: %v", ErrInternal, err)
	}
	return nil
}

func summaries(bookings map[int64]*domain.Booking) map[int64]*domain.BookingSummary {
	result := make(map[int64]*domain.BookingSummary, len(bookings))
	for itemID, b := range bookings {
		result[itemID] = b.Summary()
	}
	return result
}
