package services

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"macs-platform/internal/status"
	"macs-platform/models"
	"macs-platform/monitoring"
	"macs-platform/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingService runs the booking lifecycle: create with conflict checks,
// list/get, the accept/decline state machine and per-artist stats. Every
// state transition raises a best-effort notification.
type BookingService struct {
	bookings     *store.BookingStore
	artists      *store.ArtistStore
	availability *AvailabilityService
	notify       *NotificationService
}

func NewBookingService(bookings *store.BookingStore, artists *store.ArtistStore, availability *AvailabilityService, notify *NotificationService) *BookingService {
	return &BookingService{
		bookings:     bookings,
		artists:      artists,
		availability: availability,
		notify:       notify,
	}
}

// CreateBookingRequest carries the client-supplied fields.
type CreateBookingRequest struct {
	ArtistID    string `json:"artistId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	DateTime    string `json:"dateTime"`
	Service     string `json:"service"`
	Message     string `json:"message"`
}

func (r CreateBookingRequest) validate() error {
	required := []struct{ name, value string }{
		{"artistId", r.ArtistID},
		{"clientName", r.ClientName},
		{"clientEmail", r.ClientEmail},
		{"dateTime", r.DateTime},
		{"service", r.Service},
		{"message", r.Message},
	}
	for _, f := range required {
		if f.value == "" {
			return status.Validationf("Missing required field: %s", f.name)
		}
	}
	if !emailPattern.MatchString(r.ClientEmail) {
		return status.Validationf("Invalid email format")
	}
	return nil
}

func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (models.Booking, error) {
	if err := req.validate(); err != nil {
		return models.Booking{}, err
	}

	available, reason := s.availability.IsSlotAvailable(ctx, req.ArtistID, req.DateTime)
	if !available {
		monitoring.RecordSlotConflict(req.ArtistID)
		return models.Booking{}, &status.SlotUnavailableError{Reason: reason}
	}

	at, err := models.ParseDateTime(req.DateTime)
	if err != nil {
		return models.Booking{}, status.Validationf("Invalid date/time format")
	}

	// The resolver already checked, but re-scan right before the insert so a
	// second request in the same window cannot slip between the two reads.
	if s.bookings.HasActiveAt(req.ArtistID, at) {
		monitoring.RecordSlotConflict(req.ArtistID)
		return models.Booking{}, &status.SlotUnavailableError{Reason: ReasonAlreadyBooked}
	}

	now := time.Now().UTC()
	booking := models.Booking{
		ID:          uuid.NewString(),
		ArtistID:    req.ArtistID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		DateTime:    at,
		Service:     req.Service,
		Message:     req.Message,
		Status:      models.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.bookings.Insert(booking)
	monitoring.RecordBookingCreated(booking.ArtistID)

	if artist, ok := s.artists.Get(booking.ArtistID); ok {
		s.notify.PublishBookingCreated(booking, artist)
	} else {
		slog.Warn("no artist profile for booking notification", "artistId", booking.ArtistID)
	}

	return booking, nil
}

func (s *BookingService) List(ctx context.Context, filter store.BookingFilter) []models.Booking {
	return s.bookings.List(filter)
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	b, ok := s.bookings.Get(id)
	if !ok {
		return models.Booking{}, status.ErrBookingNotFound
	}
	return b, nil
}

// Transition applies an artist's accept or decline to a pending booking.
func (s *BookingService) Transition(ctx context.Context, id, action string) (models.Booking, error) {
	var newStatus string
	switch action {
	case "accept":
		newStatus = models.BookingConfirmed
	case "decline":
		newStatus = models.BookingDeclined
	default:
		return models.Booking{}, status.ErrInvalidAction
	}

	booking, found, err := s.bookings.UpdateStatus(id, newStatus, func(b models.Booking) error {
		if b.Status != models.BookingPending {
			return status.ErrNotPending
		}
		return nil
	})
	if !found {
		return models.Booking{}, status.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	monitoring.RecordBookingTransition(booking.ArtistID, newStatus)

	artistName := ""
	if artist, ok := s.artists.Get(booking.ArtistID); ok {
		artistName = artist.Name
	}
	s.notify.PublishStatusChanged(booking, artistName, newStatus)

	return booking, nil
}

// UpdateStatus is the administrative status edit, including marking a booking
// completed. It bypasses the pending-only rule but still validates the value.
func (s *BookingService) UpdateStatus(ctx context.Context, id, newStatus string) (models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return models.Booking{}, status.Validationf("Invalid status: %s", newStatus)
	}
	booking, found, err := s.bookings.UpdateStatus(id, newStatus, nil)
	if !found {
		return models.Booking{}, status.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	monitoring.RecordBookingTransition(booking.ArtistID, newStatus)
	return booking, nil
}

func (s *BookingService) Stats(ctx context.Context, artistID string) models.BookingStats {
	var stats models.BookingStats
	for _, b := range s.bookings.List(store.BookingFilter{ArtistID: artistID}) {
		stats.Total++
		switch b.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingConfirmed:
			stats.Confirmed++
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingDeclined:
			stats.Declined++
		}
	}
	return stats
}
