package models

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is one bookable unit: a calendar date plus a time of day, both in UTC.
// Slot identity is what the availability resolver compares, so every datetime
// is normalized to UTC before it is split.
type Slot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

func SlotFromTime(t time.Time) Slot {
	utc := t.UTC()
	return Slot{
		Date: utc.Format(DateLayout),
		Time: utc.Format(TimeLayout),
	}
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.Date, s.Time)
}

// ParseDateTime parses an RFC3339 timestamp such as "2025-07-15T10:00:00Z".
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time format: %w", err)
	}
	return t.UTC(), nil
}

// ParseDate parses a calendar date such as "2025-07-15".
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}
