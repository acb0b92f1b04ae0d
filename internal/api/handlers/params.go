package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	DefaultFrom  = 0
	DefaultSize  = 10
	DefaultState = "ALL"
)

// PathID положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, id)
	}

	return id, nil
}

// QueryInt целое из query параметра или def, если параметра нет
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

// Pagination from и size с значениями по умолчанию 0 и 10
func Pagination(r *http.Request) (from, size int, err error) {
	if from, err = QueryInt(r, "from", DefaultFrom); err != nil {
		return 0, 0, err
	}
	if size, err = QueryInt(r, "size", DefaultSize); err != nil {
		return 0, 0, err
	}
	return from, size, nil
}

// State токен окна выборки; проверяется сервисом
func State(r *http.Request) string {
	if state := r.URL.Query().Get("state"); state != "" {
		return state
	}
	return DefaultState
}
