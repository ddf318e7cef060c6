package store

import (
	"time"

	"github.com/shopspring/decimal"

	"macs-platform/models"
)

// Stores bundles the in-memory repositories that back the whole process.
type Stores struct {
	Bookings      *BookingStore
	Campaigns     *CampaignStore
	Contributions *ContributionStore
	Availability  *AvailabilityStore
	Artists       *ArtistStore
}

func NewStores() *Stores {
	return &Stores{
		Bookings:      NewBookingStore(),
		Campaigns:     NewCampaignStore(),
		Contributions: NewContributionStore(),
		Availability:  NewAvailabilityStore(),
		Artists:       NewArtistStore(),
	}
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Seed loads the demo fixtures used in development.
func (s *Stores) Seed() {
	s.Artists.Put(models.Artist{
		ID:          "1",
		Name:        "Keoni Nakamura",
		Email:       "keoni.nakamura@email.com",
		Specialties: []string{"Ceramics", "Traditional Art", "Pottery"},
	})

	s.Availability.SetDefaultHours("1", []string{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	})
	s.Availability.MergeOverrides("1", map[string][]string{
		"2025-07-15": {"09:00", "11:00", "13:00", "15:00"},
		"2025-07-16": {"10:00", "12:00", "14:00", "16:00"},
		"2025-07-17": {"09:00", "10:00", "11:00", "14:00", "15:00"},
		"2025-07-18": {"13:00", "15:00", "16:00"},
		"2025-07-19": {"09:00", "11:00", "13:00"},
		"2025-07-22": {"10:00", "11:00", "12:00", "15:00", "16:00"},
		"2025-07-23": {"09:00", "10:00", "14:00", "15:00"},
		"2025-07-24": {"11:00", "12:00", "13:00", "16:00"},
		"2025-07-25": {"09:00", "10:00", "11:00", "14:00"},
		"2025-07-26": {"13:00", "14:00", "15:00", "16:00"},
		// Days the artist is fully booked out elsewhere.
		"2025-07-13": {},
		"2025-07-14": {},
		"2025-07-20": {},
		"2025-07-21": {},
		"2025-07-27": {},
		"2025-07-28": {},
	})

	for _, b := range []models.Booking{
		{
			ID: "1", ArtistID: "1",
			ClientName: "Sarah Johnson", ClientEmail: "sarah.johnson@email.com",
			DateTime: ts("2025-07-15T10:00:00Z"), Service: "Custom Ceramic Piece",
			Message:   "I would like to commission a traditional ceramic vase with blue and orange patterns.",
			Status:    models.BookingPending,
			CreatedAt: ts("2025-07-10T14:30:00Z"), UpdatedAt: ts("2025-07-10T14:30:00Z"),
		},
		{
			ID: "2", ArtistID: "1",
			ClientName: "Marcus Chen", ClientEmail: "marcus.chen@email.com",
			DateTime: ts("2025-07-18T14:00:00Z"), Service: "Art Consultation",
			Message:   "Looking for guidance on starting my own ceramic art journey.",
			Status:    models.BookingConfirmed,
			CreatedAt: ts("2025-07-08T09:15:00Z"), UpdatedAt: ts("2025-07-09T11:20:00Z"),
		},
		{
			ID: "3", ArtistID: "1",
			ClientName: "Elena Rodriguez", ClientEmail: "elena.rodriguez@email.com",
			DateTime: ts("2025-07-12T16:00:00Z"), Service: "Workshop Session",
			Message:   "Interested in learning traditional pottery techniques for a group of 4 people.",
			Status:    models.BookingCompleted,
			CreatedAt: ts("2025-07-04T11:20:00Z"), UpdatedAt: ts("2025-07-05T16:30:00Z"),
		},
		{
			ID: "4", ArtistID: "1",
			ClientName: "David Kim", ClientEmail: "david.kim@email.com",
			DateTime: ts("2025-06-28T11:00:00Z"), Service: "Portrait Session",
			Message:   "Professional headshots for my business profile.",
			Status:    models.BookingDeclined,
			CreatedAt: ts("2025-06-25T09:15:00Z"), UpdatedAt: ts("2025-06-26T14:20:00Z"),
		},
	} {
		s.Bookings.Insert(b)
	}

	s.Campaigns.Insert(models.Campaign{
		ID: "1", ArtistID: "1",
		Title:         "Traditional Ceramic Art Exhibition",
		Description:   "Help me create a stunning exhibition showcasing traditional Hawaiian ceramic techniques passed down through generations.",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(1250),
		Deadline:      ts("2025-08-15T23:59:59Z"),
		ImageURL:      "/images/ceramic-exhibition.jpg",
		Status:        models.CampaignActive,
		CreatedAt:     ts("2025-07-01T10:00:00Z"), UpdatedAt: ts("2025-07-07T15:30:00Z"),
	})
	s.Campaigns.Insert(models.Campaign{
		ID: "2", ArtistID: "1",
		Title:         "Community Art Workshop Series",
		Description:   "Fund a series of free community workshops to teach traditional pottery techniques to local youth.",
		TargetAmount:  decimal.NewFromInt(3000),
		CurrentAmount: decimal.NewFromInt(800),
		Deadline:      ts("2025-07-30T23:59:59Z"),
		ImageURL:      "/images/workshop-series.jpg",
		Status:        models.CampaignActive,
		CreatedAt:     ts("2025-06-15T14:20:00Z"), UpdatedAt: ts("2025-07-07T12:15:00Z"),
	})

	for _, c := range []models.Contribution{
		{
			ID: "1", CampaignID: "1",
			ContributorName: "Maria Santos", ContributorEmail: "maria.santos@email.com",
			Amount:  decimal.NewFromInt(500),
			Message: "Love supporting traditional arts! Can't wait to see the exhibition.",
			PaymentMethod: "credit_card", CreatedAt: ts("2025-07-02T09:30:00Z"),
		},
		{
			ID: "2", CampaignID: "1",
			ContributorName: "James Wilson", ContributorEmail: "james.wilson@email.com",
			Amount:  decimal.NewFromInt(250),
			Message: "Beautiful work! Keep preserving these traditions.",
			PaymentMethod: "paypal", CreatedAt: ts("2025-07-03T16:45:00Z"),
		},
		{
			ID: "3", CampaignID: "2",
			ContributorName: "Lisa Chang", ContributorEmail: "lisa.chang@email.com",
			Amount:  decimal.NewFromInt(300),
			Message: "Supporting art education in our community!",
			PaymentMethod: "credit_card", CreatedAt: ts("2025-06-20T11:20:00Z"),
		},
	} {
		s.Contributions.Insert(c)
	}
}
