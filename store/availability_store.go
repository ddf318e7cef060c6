package store

import (
	"sync"

	"macs-platform/models"
)

// AvailabilityStore owns per-artist availability: default hours plus per-date
// overrides. Copies are returned so callers never alias store-owned maps.
type AvailabilityStore struct {
	mu      sync.Mutex
	artists map[string]models.ArtistAvailability
}

func NewAvailabilityStore() *AvailabilityStore {
	return &AvailabilityStore{artists: make(map[string]models.ArtistAvailability)}
}

func (s *AvailabilityStore) Get(artistID string) models.ArtistAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyAvailability(s.artists[artistID], artistID)
}

func (s *AvailabilityStore) SetDefaultHours(artistID string, hours []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.ensure(artistID)
	a.DefaultHours = append([]string(nil), hours...)
	s.artists[artistID] = a
}

// MergeOverrides replaces the override slot list for each supplied date. An
// empty list blocks the whole date.
func (s *AvailabilityStore) MergeOverrides(artistID string, overrides map[string][]string) models.ArtistAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.ensure(artistID)
	for date, hours := range overrides {
		a.Overrides[date] = append([]string(nil), hours...)
	}
	s.artists[artistID] = a
	return copyAvailability(a, artistID)
}

func (s *AvailabilityStore) ensure(artistID string) models.ArtistAvailability {
	a, ok := s.artists[artistID]
	if !ok {
		a = models.ArtistAvailability{ArtistID: artistID, Overrides: make(map[string][]string)}
	}
	if a.Overrides == nil {
		a.Overrides = make(map[string][]string)
	}
	return a
}

func copyAvailability(a models.ArtistAvailability, artistID string) models.ArtistAvailability {
	out := models.ArtistAvailability{
		ArtistID:     artistID,
		DefaultHours: append([]string(nil), a.DefaultHours...),
		Overrides:    make(map[string][]string, len(a.Overrides)),
	}
	for date, hours := range a.Overrides {
		out.Overrides[date] = append([]string(nil), hours...)
	}
	return out
}
