package decide_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
)

// UseCase use case решения владельца по бронированию
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute переводит бронирование из WAITING в APPROVED или REJECTED
// Строка бронирования блокируется на время транзакции, запись статуса условна (status = WAITING),
// поэтому два одновременных решения не могут оба пройти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: owner=%d, booking=%d, approved=%t", req.OwnerID, req.BookingID, req.Approved)

	if req.OwnerID <= 0 || req.BookingID <= 0 {
		uc.logger.Warn("DecideBooking: invalid ids owner=%d, booking=%d", req.OwnerID, req.BookingID)
		return nil, ErrInvalidInput
	}

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Бронирование вместе с вещью и автором
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DecideBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Только владелец вещи; остальным бронирование "не существует"
		if booking.OwnerID() != req.OwnerID {
			uc.logger.Warn("DecideBooking: user=%d is not owner of booking id=%d", req.OwnerID, req.BookingID)
			return ErrBookingNotFound
		}

		// 3. Переход состояния
		next, ok := booking.Decide(req.Approved)
		if !ok {
			uc.logger.Warn("DecideBooking: booking id=%d already in status=%s", booking.ID, booking.Status)
			return ErrNotWaiting
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, next); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("DecideBooking: booking id=%d status changed concurrently", booking.ID)
				return ErrNotWaiting
			}
			uc.logger.Error("DecideBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = next
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveBookingTransition(string(result.Status))
	uc.logger.Info("DecideBooking: booking id=%d moved to status=%s", result.ID, result.Status)

	return models.FromDomainBooking(result), nil
}
