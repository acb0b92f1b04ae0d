package get_booker_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListByBooker(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BookingResponse), args.Error(1)
}

func newRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+query, nil)
	return req.WithContext(middleware.WithUserID(req.Context(), 3))
}

func TestHandle_Defaults(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByBooker", mock.Anything, &models.ListBookingsRequest{UserID: 3, State: "ALL", From: 0, Size: 10}).
		Return([]*models.BookingResponse{{ID: 1}, {ID: 2}}, nil)
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, newRequest(""))

	require.Equal(t, http.StatusOK, w.Code)
	var body []*models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	svc.AssertExpectations(t)
}

func TestHandle_PassesQuery(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByBooker", mock.Anything, &models.ListBookingsRequest{UserID: 3, State: "PAST", From: 20, Size: 5}).
		Return([]*models.BookingResponse{}, nil)
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, newRequest("?state=PAST&from=20&size=5"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_UnknownState(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByBooker", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %s", bookings.ErrUnknownState, "SOMETIMES"))
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, newRequest("?state=SOMETIMES"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unknown state: SOMETIMES", body.Message)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "user missing", err: bookings.ErrUserNotFound, status: http.StatusNotFound},
		{name: "bad page", err: bookings.ErrInvalidPagination, status: http.StatusBadRequest},
		{name: "internal", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListByBooker", mock.Anything, mock.Anything).Return(nil, tt.err)
			w := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(w, newRequest(""))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_MalformedSize(t *testing.T) {
	svc := &mockService{}
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, newRequest("?size=ten"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListByBooker", mock.Anything, mock.Anything)
}
