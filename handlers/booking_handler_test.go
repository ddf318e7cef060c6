package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macs-platform/models"
	"macs-platform/services"
	"macs-platform/store"
)

// newBookingAPI wires the booking routes onto a fresh echo instance backed by
// empty stores, seeded with one artist offering three morning slots.
func newBookingAPI(t *testing.T) (*echo.Echo, *store.Stores) {
	t.Helper()

	stores := store.NewStores()
	stores.Availability.SetDefaultHours("1", []string{"09:00", "10:00", "11:00"})
	stores.Artists.Put(models.Artist{ID: "1", Name: "Keoni Nakamura", Email: "keoni@example.com"})

	availability := services.NewAvailabilityService(stores.Availability, stores.Bookings)
	notify := services.NewNotificationService(services.NewEmailNotifier("noreply@test", "Test"), nil, 8)
	bookings := services.NewBookingService(stores.Bookings, stores.Artists, availability, notify)

	h := NewBookingHandler(bookings, availability)

	e := echo.New()
	e.POST("/api/v1/bookings", h.CreateBooking)
	e.GET("/api/v1/bookings", h.GetBookings)
	e.GET("/api/v1/bookings/:id", h.GetBooking)
	e.PATCH("/api/v1/bookings/:id/confirm", h.ConfirmBooking)
	e.PATCH("/api/v1/bookings/:id", h.UpdateBookingStatus)
	e.GET("/api/v1/bookings/user/:email", h.GetUserBookings)
	e.GET("/api/v1/bookings/availability/:artistId", h.GetAvailability)
	e.POST("/api/v1/bookings/check-availability", h.CheckAvailability)
	e.GET("/api/v1/bookings/stats/:artistId", h.GetStats)

	return e, stores
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	return rec, decoded
}

const createBookingBody = `{
	"artistId": "1",
	"clientName": "Sarah Johnson",
	"clientEmail": "sarah.johnson@email.com",
	"dateTime": "2025-07-01T09:00:00Z",
	"service": "Custom Ceramic Piece",
	"message": "A vase with blue patterns, please."
}`

func TestCreateBookingEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking request submitted successfully", body["message"])

	booking := body["booking"].(map[string]any)
	assert.NotEmpty(t, booking["id"])
	assert.Equal(t, "pending", booking["status"])
}

func TestCreateBookingEndpoint_Validation(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", `{"artistId": "1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Missing required field")
}

func TestCreateBookingEndpoint_Conflict(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Time slot is already booked", body["error"])
}

func TestConfirmBookingEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["booking"].(map[string]any)["id"].(string)

	rec, body = doJSON(t, e, http.MethodPatch, "/api/v1/bookings/"+id+"/confirm", `{"action": "accept"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", body["booking"].(map[string]any)["status"])
	assert.Equal(t, "Booking confirmed successfully. Client has been notified via email.", body["message"])

	// Already confirmed, no longer pending
	rec, body = doJSON(t, e, http.MethodPatch, "/api/v1/bookings/"+id+"/confirm", `{"action": "decline"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Booking is not in pending status", body["error"])
}

func TestConfirmBookingEndpoint_InvalidAction(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPatch, "/api/v1/bookings/some-id/confirm", `{"action": "cancel"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Invalid action")
}

func TestConfirmBookingEndpoint_NotFound(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPatch, "/api/v1/bookings/missing/confirm", `{"action": "accept"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", body["error"])
}

func TestGetBookingsEndpoint_FilterByStatus(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["booking"].(map[string]any)["id"].(string)

	rec, _ = doJSON(t, e, http.MethodPatch, "/api/v1/bookings/"+id+"/confirm", `{"action": "accept"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, e, http.MethodGet, "/api/v1/bookings?status=confirmed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])

	rec, body = doJSON(t, e, http.MethodGet, "/api/v1/bookings?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["total"])
}

func TestGetUserBookingsEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodGet, "/api/v1/bookings/user/sarah.johnson@email.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings/check-availability",
		`{"artistId": "1", "dateTime": "2025-07-01T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["available"])
	assert.Equal(t, "Time slot is available", body["message"])

	rec, _ = doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = doJSON(t, e, http.MethodPost, "/api/v1/bookings/check-availability",
		`{"artistId": "1", "dateTime": "2025-07-01T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["available"])
	assert.Equal(t, "Time slot is already booked", body["message"])
}

func TestCheckAvailabilityEndpoint_MissingFields(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings/check-availability", `{"artistId": "1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing artistId or dateTime", body["error"])
}

func TestStatsEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodGet, "/api/v1/bookings/stats/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(1), stats["pending"])
}

func TestGetBookingEndpoint_NotFound(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodGet, "/api/v1/bookings/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", body["error"])
}

func TestGetAvailabilityEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodGet, "/api/v1/bookings/availability/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	defaultHours := body["defaultHours"].([]any)
	assert.Len(t, defaultHours, 3)

	booked := body["bookedSlots"].(map[string]any)
	require.Contains(t, booked, "2025-07-01")
	assert.Contains(t, booked["2025-07-01"].([]any), "09:00")
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	e, _ := newBookingAPI(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/v1/bookings", createBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["booking"].(map[string]any)["id"].(string)

	rec, body = doJSON(t, e, http.MethodPatch, "/api/v1/bookings/"+id, `{"status": "completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", body["booking"].(map[string]any)["status"])

	rec, body = doJSON(t, e, http.MethodPatch, "/api/v1/bookings/"+id, `{"status": "archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Invalid status")
}
