package decide_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	decideBooking "github.com/m04kA/SMC-ShareIt/internal/usecase/decide_booking"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *decideBooking.Request) (*decideBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decideBooking.Response), args.Error(1)
}

func newRequest(bookingID, approved string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"?approved="+approved, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandle_Approved(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &decideBooking.Request{OwnerID: 2, BookingID: 5, Approved: true}).
		Return(&decideBooking.Response{ID: 5, Status: "APPROVED"}, nil)
	w := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(w, newRequest("5", "true", 2))

	require.Equal(t, http.StatusOK, w.Code)
	var body decideBooking.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "APPROVED", body.Status)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not owner", err: decideBooking.ErrBookingNotFound, status: http.StatusNotFound, message: msgNotFound},
		{name: "already decided", err: fmt.Errorf("%w: status=APPROVED", decideBooking.ErrNotWaiting), status: http.StatusBadRequest, message: msgNotWaiting},
		{name: "internal", err: decideBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			w := httptest.NewRecorder()

			NewHandler(uc, logger.NewNop()).Handle(w, newRequest("5", "false", 2))

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body.Message)
				assert.Equal(t, tt.status, body.Code)
			}
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name      string
		bookingID string
		approved  string
	}{
		{name: "approved missing", bookingID: "5", approved: ""},
		{name: "approved not bool", bookingID: "5", approved: "maybe"},
		{name: "booking id not a number", bookingID: "x", approved: "true"},
		{name: "booking id zero", bookingID: "0", approved: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := httptest.NewRecorder()

			NewHandler(uc, logger.NewNop()).Handle(w, newRequest(tt.bookingID, tt.approved, 2))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
