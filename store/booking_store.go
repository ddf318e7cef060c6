package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"macs-platform/models"
)

// BookingStore owns the booking records for the process lifetime. A single
// mutex serializes all mutation; in production this would be a database.
type BookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) Insert(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *BookingStore) Get(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// BookingFilter selects bookings by exact match; empty fields are ignored.
type BookingFilter struct {
	ArtistID    string
	ClientEmail string
	Status      string
}

// List returns matching bookings sorted by creation time, newest first.
func (s *BookingStore) List(f BookingFilter) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if f.ArtistID != "" && b.ArtistID != f.ArtistID {
			continue
		}
		if f.ClientEmail != "" && !strings.EqualFold(b.ClientEmail, f.ClientEmail) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ActiveForArtist returns the artist's pending and confirmed bookings.
func (s *BookingStore) ActiveForArtist(artistID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.ArtistID == artistID && b.ActiveBooking() {
			out = append(out, b)
		}
	}
	return out
}

// HasActiveAt reports whether an active booking already holds the exact
// (artist, datetime) pair.
func (s *BookingStore) HasActiveAt(artistID string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ArtistID == artistID && b.ActiveBooking() && b.DateTime.Equal(at) {
			return true
		}
	}
	return false
}

// UpdateStatus sets the booking's status and bumps UpdatedAt. The supplied
// check runs under the store lock so the read-modify-write is atomic; it may
// reject the transition based on the current record.
func (s *BookingStore) UpdateStatus(id, newStatus string, check func(models.Booking) error) (models.Booking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if check != nil {
			if err := check(s.bookings[i]); err != nil {
				return models.Booking{}, true, err
			}
		}
		s.bookings[i].Status = newStatus
		s.bookings[i].UpdatedAt = time.Now().UTC()
		return s.bookings[i], true, nil
	}
	return models.Booking{}, false, nil
}
