package store

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"macs-platform/models"
)

type CampaignStore struct {
	mu        sync.Mutex
	campaigns []models.Campaign
}

func NewCampaignStore() *CampaignStore {
	return &CampaignStore{}
}

func (s *CampaignStore) Insert(c models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append(s.campaigns, c)
}

func (s *CampaignStore) Get(id string) (models.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return models.Campaign{}, false
}

type CampaignFilter struct {
	Status   string // "all" disables the status filter
	ArtistID string
}

func (s *CampaignStore) List(f CampaignFilter) []models.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Campaign
	for _, c := range s.campaigns {
		if f.Status != "" && f.Status != "all" && c.Status != f.Status {
			continue
		}
		if f.ArtistID != "" && c.ArtistID != f.ArtistID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Update applies fn to the campaign under the store lock. fn may reject the
// update by returning an error; the record is only replaced on success.
func (s *CampaignStore) Update(id string, fn func(*models.Campaign) error) (models.Campaign, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		updated := s.campaigns[i]
		if err := fn(&updated); err != nil {
			return models.Campaign{}, true, err
		}
		updated.UpdatedAt = time.Now().UTC()
		s.campaigns[i] = updated
		return updated, true, nil
	}
	return models.Campaign{}, false, nil
}

// AddAmount increments the campaign's running total by amount.
func (s *CampaignStore) AddAmount(id string, amount decimal.Decimal) (models.Campaign, bool) {
	c, found, _ := s.Update(id, func(c *models.Campaign) error {
		c.CurrentAmount = c.CurrentAmount.Add(amount)
		return nil
	})
	return c, found
}

type ContributionStore struct {
	mu            sync.Mutex
	contributions []models.Contribution
}

func NewContributionStore() *ContributionStore {
	return &ContributionStore{}
}

func (s *ContributionStore) Insert(c models.Contribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions = append(s.contributions, c)
}

// ForCampaign returns the campaign's contributions, newest first.
func (s *ContributionStore) ForCampaign(campaignID string) []models.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Contribution
	for _, c := range s.contributions {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *ContributionStore) CountForCampaign(campaignID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.contributions {
		if c.CampaignID == campaignID {
			n++
		}
	}
	return n
}
