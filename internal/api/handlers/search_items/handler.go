package search_items

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/service/items"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
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

// Handle GET /api/v1/items/search?text=...&from=0&size=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, size, err := handlers.Pagination(r)
	if err != nil {
		h.logger.Warn("GET /items/search - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	text := r.URL.Query().Get("text")

	result, err := h.service.Search(r.Context(), text, from, size)
	if err != nil {
		if errors.Is(err, items.ErrInvalidPagination) {
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		h.logger.Error("GET /items/search - Failed to search items: text=%q, error=%v", text, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/search - Search completed: text=%q, count=%d", text, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
