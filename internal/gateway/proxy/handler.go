package proxy

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/gateway/validation"
	"github.com/m04kA/SMC-ShareIt/internal/integrations/shareitserver"
)

const (
	msgInvalidPathID     = "некорректный ID в пути запроса"
	msgInvalidPagination = "некорректные параметры пагинации"
	msgInvalidApproved   = "параметр approved должен быть true или false"
	msgInvalidBody       = "некорректное тело запроса"
	msgUpstreamFailed    = "server недоступен"
)

// maxBodySize ограничение тела запроса, 1 MiB
const maxBodySize = 1 << 20

type Handler struct {
	client    Forwarder
	validator *validation.Validator
	logger    Logger
}

func NewHandler(client Forwarder, validator *validation.Validator, logger Logger) *Handler {
	return &Handler{
		client:    client,
		validator: validator,
		logger:    logger,
	}
}

// Route проверяет запрос по rule и проксирует его в server.
// Невалидный запрос получает 400 и в server не попадает
func (h *Handler) Route(rule Rule) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path

		for _, name := range rule.PathIDs {
			if _, err := handlers.PathID(r, name); err != nil {
				h.logger.Warn("%s - Invalid path id: %v", route, err)
				handlers.RespondBadRequest(w, msgInvalidPathID)
				return
			}
		}

		if rule.Page {
			from, size, err := handlers.Pagination(r)
			if err == nil {
				err = h.validator.Struct(&validation.Page{From: from, Size: size})
			}
			if err != nil {
				h.logger.Warn("%s - Invalid pagination: %v", route, err)
				handlers.RespondBadRequest(w, msgInvalidPagination)
				return
			}
		}

		if rule.Approved {
			if _, err := strconv.ParseBool(r.URL.Query().Get("approved")); err != nil {
				h.logger.Warn("%s - Invalid approved param: %v", route, err)
				handlers.RespondBadRequest(w, msgInvalidApproved)
				return
			}
		}

		var body []byte
		if rule.Body != nil {
			var err error
			body, err = io.ReadAll(io.LimitReader(r.Body, maxBodySize))
			if err == nil {
				err = h.validator.Body(body, rule.Body())
			}
			if err != nil {
				h.logger.Warn("%s - Invalid body: %v", route, err)
				handlers.RespondBadRequest(w, msgInvalidBody)
				return
			}
		}

		h.forward(w, r, body)
	}
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, body []byte) {
	resp, err := h.client.Forward(r.Context(), &shareitserver.ForwardRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		RawQuery:  r.URL.RawQuery,
		Body:      body,
		UserID:    r.Header.Get(middleware.UserIDHeader),
		RequestID: middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		if errors.Is(err, shareitserver.ErrUnavailable) {
			h.logger.Error("%s %s - Server unavailable: %v", r.Method, r.URL.Path, err)
		} else {
			h.logger.Error("%s %s - Forward failed: %v", r.Method, r.URL.Path, err)
		}
		handlers.RespondBadGateway(w, msgUpstreamFailed)
		return
	}

	for name, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
