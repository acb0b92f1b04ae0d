package proxy

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
)

// Register вешает маршруты ShareIt на api (подроутер /api/v1).
// Статические сегменты (owner, search, all) регистрируются раньше {id}
func Register(api *mux.Router, h *Handler) {
	// --- Пользователи (без X-Sharer-User-Id) ---
	api.HandleFunc("/users", h.Route(Rule{Body: userCreateBody})).Methods(http.MethodPost)
	api.HandleFunc("/users", h.Route(Rule{})).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", h.Route(Rule{PathIDs: []string{"userId"}})).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", h.Route(Rule{PathIDs: []string{"userId"}, Body: userUpdateBody})).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}", h.Route(Rule{PathIDs: []string{"userId"}})).Methods(http.MethodDelete)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Вещи ---
	protected.HandleFunc("/items", h.Route(Rule{Body: itemCreateBody})).Methods(http.MethodPost)
	protected.HandleFunc("/items", h.Route(Rule{Page: true})).Methods(http.MethodGet)
	protected.HandleFunc("/items/search", h.Route(Rule{Page: true})).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", h.Route(Rule{PathIDs: []string{"itemId"}})).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", h.Route(Rule{PathIDs: []string{"itemId"}, Body: itemUpdateBody})).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}/comment", h.Route(Rule{PathIDs: []string{"itemId"}, Body: commentCreateBody})).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.Route(Rule{Body: bookingCreateBody})).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.Route(Rule{Page: true})).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", h.Route(Rule{Page: true})).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", h.Route(Rule{PathIDs: []string{"bookingId"}})).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", h.Route(Rule{PathIDs: []string{"bookingId"}, Approved: true})).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	protected.HandleFunc("/requests", h.Route(Rule{Body: requestCreateBody})).Methods(http.MethodPost)
	protected.HandleFunc("/requests", h.Route(Rule{})).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", h.Route(Rule{Page: true})).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", h.Route(Rule{PathIDs: []string{"requestId"}})).Methods(http.MethodGet)
}
