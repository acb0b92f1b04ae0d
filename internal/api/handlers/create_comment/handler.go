package create_comment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/domain"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings"
	"github.com/m04kA/SMC-ShareIt/internal/service/items"
	"github.com/m04kA/SMC-ShareIt/internal/service/items/models"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEmptyText          = "текст отзыва не может быть пустым"
	msgNotFinished        = "booking not finished"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
)

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{id}/comment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFinished):
			h.logger.Warn("POST /items/{id}/comment - No finished booking: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgNotFinished)

		case errors.Is(err, items.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgEmptyText)

		case errors.Is(err, items.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /items/{id}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("POST /items/{id}/comment - Failed to add comment: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{id}/comment - Comment added: comment_id=%d, item_id=%d", comment.ID, itemID)
	handlers.RespondJSON(w, http.StatusCreated, comment)
}
