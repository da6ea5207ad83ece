package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartsafe-training/booking-api/internal/notify"
)

type handlerFixture struct {
	handler *Handler
	sweeper *Sweeper
	store   *RedisStore
	mr      *miniredis.Miniredis
	def     *captureSender
}

func newHandlerFixture(t *testing.T, now time.Time) *handlerFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, nil)
	def := &captureSender{}
	dispatcher := notify.NewDispatcher(
		notify.Mailbox{Sender: def, From: "courses@heartsafe.example"},
		nil, nil,
	)
	cfg := ServiceConfig{
		BusinessName: "HeartSafe Training",
		AdminEmail:   "admin@heartsafe.example",
	}
	service := NewService(store, dispatcher, cfg, nil, nil)
	sweeper := NewSweeper(store, dispatcher, "HeartSafe Training", time.UTC, nil, nil)
	sweeper.now = func() time.Time { return now }
	return &handlerFixture{
		handler: NewHandler(service, sweeper, nil),
		sweeper: sweeper,
		store:   store,
		mr:      mr,
		def:     def,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandlerCreateReturnsCreated(t *testing.T) {
	f := newHandlerFixture(t, time.Now())

	rec := postJSON(t, f.handler.Create, "/api/bookings", validCreateRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
}

func TestHandlerCreateValidationError(t *testing.T) {
	f := newHandlerFixture(t, time.Now())

	req := validCreateRequest()
	req.Email = ""
	rec := postJSON(t, f.handler.Create, "/api/bookings", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "email is required", resp["error"])
}

func TestHandlerCreateMalformedBody(t *testing.T) {
	f := newHandlerFixture(t, time.Now())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	f.handler.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCancelRequiresIDAndDate(t *testing.T) {
	f := newHandlerFixture(t, time.Now())

	rec := postJSON(t, f.handler.Cancel, "/api/bookings/cancel", CancelRequest{ID: "abc"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "id and date are required", resp["error"])
}

func TestHandlerCancelUnknownBooking(t *testing.T) {
	f := newHandlerFixture(t, time.Now())

	rec := postJSON(t, f.handler.Cancel, "/api/bookings/cancel", CancelRequest{ID: "ghost", Date: "2025-06-10"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerSweepEmpty(t *testing.T) {
	f := newHandlerFixture(t, time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodPost, "/api/reminders/sweep", nil)
	rec := httptest.NewRecorder()
	f.handler.RunSweep(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No bookings found for tomorrow.", resp["message"])
}

// TestHandlerBookingLifecycle walks a booking from intake through reminder
// to cancellation.
func TestHandlerBookingLifecycle(t *testing.T) {
	f := newHandlerFixture(t, time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC))

	// Intake.
	rec := postJSON(t, f.handler.Create, "/api/bookings", &CreateRequest{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		CourseType:    "Standard First Aid",
		PreferredDate: "2025-06-10T09:00",
		Locale:        "en",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Reminder sweep the evening before.
	req := httptest.NewRequest(http.MethodPost, "/api/reminders/sweep", nil)
	sweepRec := httptest.NewRecorder()
	f.handler.RunSweep(sweepRec, req)
	require.Equal(t, http.StatusOK, sweepRec.Code)

	var sweep SweepResponse
	require.NoError(t, json.Unmarshal(sweepRec.Body.Bytes(), &sweep))
	assert.True(t, sweep.Success)
	assert.Equal(t, "2025-06-10", sweep.Date)
	require.Len(t, sweep.Results, 1)
	assert.Equal(t, SweepOutcome{Email: "jane@example.com", Status: StatusSent}, sweep.Results[0])

	// Cancellation.
	cancelRec := postJSON(t, f.handler.Cancel, "/api/bookings/cancel", CancelRequest{
		ID:   created.ID,
		Date: "2025-06-10",
	})
	require.Equal(t, http.StatusOK, cancelRec.Code, fmt.Sprintf("body: %s", cancelRec.Body.String()))
	assert.False(t, f.mr.Exists("schedule:2025-06-10"))

	// Cancelling again reports not found.
	again := postJSON(t, f.handler.Cancel, "/api/bookings/cancel", CancelRequest{
		ID:   created.ID,
		Date: "2025-06-10",
	})
	assert.Equal(t, http.StatusNotFound, again.Code)
}
