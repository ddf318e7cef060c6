package models

import (
	"time"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingDeclined  = "declined"
)

type Booking struct {
	ID          string    `json:"id"`
	ArtistID    string    `json:"artistId"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	DateTime    time.Time `json:"dateTime"`
	Service     string    `json:"service"`
	Message     string    `json:"message"`
	Status      string    `json:"status"` // pending, confirmed, completed, declined
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidBookingStatus reports whether s is one of the four lifecycle statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingDeclined:
		return true
	}
	return false
}

// ActiveBooking reports whether the booking still holds its slot. Only
// pending and confirmed bookings count toward slot conflicts.
func (b Booking) ActiveBooking() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Declined  int `json:"declined"`
}

type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Specialties []string `json:"specialties"`
}
