package services

import (
	"context"
	"time"

	"macs-platform/models"
	"macs-platform/store"
)

const (
	ReasonNotOffered    = "Artist is not available at this time"
	ReasonAlreadyBooked = "Time slot is already booked"
	ReasonBadDateTime   = "Invalid date/time format"
	ReasonAvailable     = "Time slot is available"
)

// AvailabilityService resolves whether a slot is bookable for an artist. It
// combines the artist's declared hours (override-or-default per date) with the
// set of bookings that still hold their slot.
type AvailabilityService struct {
	availability *store.AvailabilityStore
	bookings     *store.BookingStore
}

func NewAvailabilityService(availability *store.AvailabilityStore, bookings *store.BookingStore) *AvailabilityService {
	return &AvailabilityService{
		availability: availability,
		bookings:     bookings,
	}
}

// IsSlotAvailable checks one datetime for one artist. Unparseable input fails
// closed. The reason string is part of the API response, not just a log line.
func (s *AvailabilityService) IsSlotAvailable(ctx context.Context, artistID, dateTime string) (bool, string) {
	at, err := models.ParseDateTime(dateTime)
	if err != nil {
		return false, ReasonBadDateTime
	}
	slot := models.SlotFromTime(at)

	hours := s.availability.Get(artistID).HoursFor(slot.Date)
	if !containsHour(hours, slot.Time) {
		return false, ReasonNotOffered
	}

	if s.bookings.HasActiveAt(artistID, at) {
		return false, ReasonAlreadyBooked
	}
	return true, ReasonAvailable
}

// BookedSlots groups the artist's pending and confirmed bookings by calendar
// date. startDate/endDate ("YYYY-MM-DD") filter inclusively when both are set.
// Duplicate times are kept as-is; inconsistent data stays visible.
func (s *AvailabilityService) BookedSlots(ctx context.Context, artistID, startDate, endDate string) map[string][]string {
	booked := make(map[string][]string)
	for _, b := range s.bookings.ActiveForArtist(artistID) {
		slot := models.SlotFromTime(b.DateTime)
		if startDate != "" && endDate != "" {
			if slot.Date < startDate || slot.Date > endDate {
				continue
			}
		}
		booked[slot.Date] = append(booked[slot.Date], slot.Time)
	}
	return booked
}

// AvailabilityRange emits the effective slot list for each date in the
// inclusive range, skipping dates before today (UTC). Booked slots are not
// subtracted; callers overlay BookedSlots for the open-slot view.
func (s *AvailabilityService) AvailabilityRange(ctx context.Context, artistID, startDate, endDate string) (map[string][]string, error) {
	start, err := models.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseDate(endDate)
	if err != nil {
		return nil, err
	}

	avail := s.availability.Get(artistID)
	today := time.Now().UTC().Format(models.DateLayout)

	out := make(map[string][]string)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateLayout)
		if date < today {
			continue
		}
		out[date] = append([]string(nil), avail.HoursFor(date)...)
	}
	return out, nil
}

// Overrides returns the artist's per-date override map only.
func (s *AvailabilityService) Overrides(ctx context.Context, artistID string) map[string][]string {
	return s.availability.Get(artistID).Overrides
}

// DefaultHours returns the artist's default slot list.
func (s *AvailabilityService) DefaultHours(ctx context.Context, artistID string) []string {
	return s.availability.Get(artistID).DefaultHours
}

// SetOverrides merges per-date override lists into the artist's availability.
func (s *AvailabilityService) SetOverrides(ctx context.Context, artistID string, overrides map[string][]string) models.ArtistAvailability {
	return s.availability.MergeOverrides(artistID, overrides)
}

func containsHour(hours []string, hour string) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
