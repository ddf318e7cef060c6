package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CampaignActive = "active"
	CampaignClosed = "closed"
)

type Campaign struct {
	ID            string          `json:"id"`
	ArtistID      string          `json:"artistId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	ImageURL      string          `json:"imageUrl"`
	Status        string          `json:"status"` // active, closed
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProgressPercentage returns current/target*100 rounded to one decimal place.
func (c Campaign) ProgressPercentage() float64 {
	if c.TargetAmount.IsZero() {
		return 0
	}
	pct := c.CurrentAmount.Div(c.TargetAmount).Mul(decimal.NewFromInt(100))
	f, _ := pct.Round(1).Float64()
	return f
}

// DaysRemaining returns whole days until the deadline, never negative.
func (c Campaign) DaysRemaining(now time.Time) int {
	days := int(c.Deadline.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// CampaignView is a campaign plus the derived fields the API reports.
type CampaignView struct {
	Campaign
	ProgressPct        float64 `json:"progressPercentage"`
	DaysLeft           int     `json:"daysRemaining"`
	ContributionsCount *int    `json:"contributionsCount,omitempty"`
}

func NewCampaignView(c Campaign, now time.Time) CampaignView {
	return CampaignView{
		Campaign:    c,
		ProgressPct: c.ProgressPercentage(),
		DaysLeft:    c.DaysRemaining(now),
	}
}

type Contribution struct {
	ID               string          `json:"id"`
	CampaignID       string          `json:"campaignId"`
	ContributorName  string          `json:"contributorName"`
	ContributorEmail string          `json:"contributorEmail"`
	Amount           decimal.Decimal `json:"amount"`
	Message          string          `json:"message"`
	PaymentMethod    string          `json:"paymentMethod"` // credit_card, paypal, ...
	Reference        string          `json:"reference"`
	CreatedAt        time.Time       `json:"createdAt"`
}
