package store

import (
	"sync"

	"macs-platform/models"
)

// ArtistStore holds the artist directory the notifier needs (name and email
// per artist). Bookings reference artists by ID only.
type ArtistStore struct {
	mu      sync.Mutex
	artists map[string]models.Artist
}

func NewArtistStore() *ArtistStore {
	return &ArtistStore{artists: make(map[string]models.Artist)}
}

func (s *ArtistStore) Put(a models.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists[a.ID] = a
}

func (s *ArtistStore) Get(id string) (models.Artist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	return a, ok
}
