package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/booknjoy/turf-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/demo-payment", strings.NewReader(body))

	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	ref := "demo_txn_1756550400000"
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          1,
			TurfID:      1,
			TurfName:    "Green Field",
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Slot:        "morning",
			Price:       100,
			NetAmount:   100,
			Status:      "paid",
			PaymentRef:  &ref,
		},
	}

	rec := doRequest(t, uc, `{"turfId":1,"bookingDate":"2026-09-01","slot":"morning"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-01", resp.BookingDate)
	assert.Equal(t, "paid", resp.Status)
	require.NotNil(t, resp.PaymentRef)
	assert.Equal(t, ref, *resp.PaymentRef)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.TurfID)
	assert.Equal(t, "morning", uc.got.Slot)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"turfId":1,"bookingDate":"01-09-2026","slot":"morning"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_TurfNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrTurfNotFound}

	rec := doRequest(t, uc, `{"turfId":42,"bookingDate":"2026-09-01","slot":"morning"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_PriceMismatch(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrPriceMismatch}

	rec := doRequest(t, uc, `{"turfId":1,"bookingDate":"2026-09-01","slot":"morning","listedPrice":95}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}

	rec := doRequest(t, uc, `{"turfId":1,"bookingDate":"2026-09-01","slot":"morning"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
