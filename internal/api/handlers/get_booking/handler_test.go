package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
)

const bookingID = "6f1c1a9e-7d0b-4c53-9d38-3f0f0e8f4a11"

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.NewDiscard()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, bookingID).Return(&models.BookingResponse{
		BookingID: bookingID,
		Date:      "2025-03-14",
		StartTime: "9:00 AM",
		Status:    "confirmed",
		Addons:    []string{},
	}, nil)

	rec := serve(svc, "/api/v1/bookings/"+bookingID)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, bookingID, body.BookingID)
	assert.Equal(t, "9:00 AM", body.StartTime)
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := new(mockService)
		rec := serve(svc, "/api/v1/bookings/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, bookingID).Return(nil, bookings.ErrBookingNotFound)
		rec := serve(svc, "/api/v1/bookings/"+bookingID)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, bookingID).Return(nil, bookings.ErrInternal)
		rec := serve(svc, "/api/v1/bookings/"+bookingID)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
