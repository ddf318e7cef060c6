package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macs-platform/internal/status"
	"macs-platform/models"
	"macs-platform/store"
)

func newBookingFixture(t *testing.T) (*BookingService, *store.Stores) {
	t.Helper()
	stores := store.NewStores()
	stores.Availability.SetDefaultHours("1", []string{"09:00", "10:00", "11:00"})
	stores.Artists.Put(models.Artist{ID: "1", Name: "Keoni Nakamura", Email: "keoni@example.com"})

	availability := NewAvailabilityService(stores.Availability, stores.Bookings)
	notify := NewNotificationService(NewEmailNotifier("noreply@test", "Test"), nil, 8)
	return NewBookingService(stores.Bookings, stores.Artists, availability, notify), stores
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ArtistID:    "1",
		ClientName:  "Sarah Johnson",
		ClientEmail: "sarah.johnson@email.com",
		DateTime:    "2025-07-01T09:00:00Z",
		Service:     "Custom Ceramic Piece",
		Message:     "A vase with blue patterns, please.",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "1", booking.ArtistID)
	assert.True(t, booking.DateTime.Equal(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)))
	assert.WithinDuration(t, time.Now(), booking.CreatedAt, 2*time.Second)
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	svc, _ := newBookingFixture(t)

	for _, mutate := range []func(*CreateBookingRequest){
		func(r *CreateBookingRequest) { r.ArtistID = "" },
		func(r *CreateBookingRequest) { r.ClientName = "" },
		func(r *CreateBookingRequest) { r.ClientEmail = "" },
		func(r *CreateBookingRequest) { r.DateTime = "" },
		func(r *CreateBookingRequest) { r.Service = "" },
		func(r *CreateBookingRequest) { r.Message = "" },
	} {
		req := validCreateRequest()
		mutate(&req)
		_, err := svc.Create(context.Background(), req)
		assert.True(t, status.IsValidation(err), "expected validation error, got %v", err)
	}
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	svc, _ := newBookingFixture(t)

	req := validCreateRequest()
	req.ClientEmail = "not an email"
	_, err := svc.Create(context.Background(), req)
	assert.True(t, status.IsValidation(err))
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Identical second request hits the conflict
	_, err = svc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.True(t, status.IsSlotUnavailable(err))
}

func TestCreateBooking_SlotNotOffered(t *testing.T) {
	svc, _ := newBookingFixture(t)

	req := validCreateRequest()
	req.DateTime = "2025-07-01T22:00:00Z"
	_, err := svc.Create(context.Background(), req)
	assert.True(t, status.IsSlotUnavailable(err))
}

func TestTransition_Accept(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Transition(context.Background(), booking.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.True(t, updated.UpdatedAt.After(booking.UpdatedAt) || updated.UpdatedAt.Equal(booking.UpdatedAt))
}

func TestTransition_Decline(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Transition(context.Background(), booking.ID, "decline")
	require.NoError(t, err)
	assert.Equal(t, models.BookingDeclined, updated.Status)
}

func TestTransition_OnlyPending(t *testing.T) {
	svc, stores := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), booking.ID, "decline")
	require.NoError(t, err)

	// Declined is terminal; a second transition fails and leaves state alone
	_, err = svc.Transition(context.Background(), booking.ID, "accept")
	assert.ErrorIs(t, err, status.ErrNotPending)

	current, ok := stores.Bookings.Get(booking.ID)
	require.True(t, ok)
	assert.Equal(t, models.BookingDeclined, current.Status)
}

func TestTransition_InvalidAction(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Transition(context.Background(), "whatever", "cancel")
	assert.ErrorIs(t, err, status.ErrInvalidAction)
}

func TestTransition_NotFound(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Transition(context.Background(), "missing", "accept")
	assert.ErrorIs(t, err, status.ErrBookingNotFound)
}

func TestUpdateStatus_Completed(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, "archived")
	assert.True(t, status.IsValidation(err))
}

func TestListBookings_FiltersAndSorts(t *testing.T) {
	svc, _ := newBookingFixture(t)

	first := validCreateRequest()
	second := validCreateRequest()
	second.DateTime = "2025-07-01T10:00:00Z"
	second.ClientEmail = "other@email.com"

	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	created2, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	all := svc.List(context.Background(), store.BookingFilter{ArtistID: "1"})
	require.Len(t, all, 2)
	assert.Equal(t, created2.ID, all[0].ID, "newest first")

	byEmail := svc.List(context.Background(), store.BookingFilter{ClientEmail: "OTHER@EMAIL.COM"})
	require.Len(t, byEmail, 1)
	assert.Equal(t, created2.ID, byEmail[0].ID)

	none := svc.List(context.Background(), store.BookingFilter{Status: models.BookingConfirmed})
	assert.Empty(t, none)
}

func TestStats_CountsPerStatus(t *testing.T) {
	svc, _ := newBookingFixture(t)

	b1, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.DateTime = "2025-07-01T10:00:00Z"
	b2, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), b1.ID, "accept")
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), b2.ID, "decline")
	require.NoError(t, err)

	stats := svc.Stats(context.Background(), "1")
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, 0, stats.Completed)
}
