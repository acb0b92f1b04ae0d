package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgUserNotFound      = "пользователь не найден"
	msgUnknownState      = "Unknown state: "
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/owner?state=ALL&from=0&size=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/owner - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(r, userID)
	if err != nil {
		h.logger.Warn("GET /bookings/owner - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.ListByOwner(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownState):
			h.logger.Warn("GET /bookings/owner - Unknown state: %s", serviceReq.State)
			handlers.RespondBadRequest(w, msgUnknownState+serviceReq.State)

		case errors.Is(err, bookings.ErrInvalidPagination):
			h.logger.Warn("GET /bookings/owner - Invalid pagination: from=%d, size=%d", serviceReq.From, serviceReq.Size)
			handlers.RespondBadRequest(w, msgInvalidPagination)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings/owner - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /bookings/owner - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/owner - Bookings retrieved successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
