package find_booking_by_phone

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingsService "github.com/m04kA/SMC-CallCenterService/internal/service/bookings"
	"github.com/m04kA/SMC-CallCenterService/internal/service/bookings/models"
)

type fakeService struct {
	got  string
	resp *models.BookingResponse
	err  error
}

func (f *fakeService) FindByPhone(_ context.Context, phone string) (*models.BookingResponse, error) {
	f.got = phone
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func do(svc BookingService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/find_booking_by_phone", strings.NewReader(body))
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{
		ReservationID:   "0b6f6c1e-8e7e-4d67-9a43-1c6f0e0b7d11",
		QueueName:       "sinistri",
		DateReservation: 1748779200,
		BookingInfo:     "2025-06-10|09:00-10:00",
	}}

	rec := do(svc, `{"phoneNumber": 3331234567}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3331234567", svc.got)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, float64(200), out["returnCode"])
	assert.Equal(t, "2025-06-10|09:00-10:00", out["bookingInfo"])
	assert.Equal(t, float64(1748779200), out["dateReservation"])
	assert.Contains(t, out, "email")
	assert.Nil(t, out["email"])
}

func TestHandle_NotFound(t *testing.T) {
	rec := do(&fakeService{err: bookingsService.ErrBookingNotFound}, `{"phoneNumber":"333"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"returnCode":404,"error":"Booking not found"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := do(&fakeService{err: bookingsService.ErrInvalidInput}, `{"phoneNumber":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(&fakeService{err: errors.New("db down")}, `{"phoneNumber":"333"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"returnCode":500`)
}
