package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"macs-platform/internal/status"
	"macs-platform/models"
	"macs-platform/monitoring"
	"macs-platform/store"
	"macs-platform/utils"
)

// CampaignService is the crowdfunding ledger: campaign CRUD plus the
// contribution flow that keeps each campaign's running total in sync.
type CampaignService struct {
	campaigns     *store.CampaignStore
	contributions *store.ContributionStore
	notify        *NotificationService
}

func NewCampaignService(campaigns *store.CampaignStore, contributions *store.ContributionStore, notify *NotificationService) *CampaignService {
	return &CampaignService{
		campaigns:     campaigns,
		contributions: contributions,
		notify:        notify,
	}
}

type CreateCampaignRequest struct {
	ArtistID     string `json:"artistId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline"`
	ImageURL     string          `json:"imageUrl"`
}

func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (models.Campaign, error) {
	required := []struct{ name, value string }{
		{"artistId", req.ArtistID},
		{"title", req.Title},
		{"description", req.Description},
		{"deadline", req.Deadline},
	}
	for _, f := range required {
		if f.value == "" {
			return models.Campaign{}, status.Validationf("Missing required field: %s", f.name)
		}
	}
	if req.TargetAmount.IsZero() {
		return models.Campaign{}, status.Validationf("Missing required field: targetAmount")
	}
	if err := validatePositive(req.TargetAmount); err != nil {
		return models.Campaign{}, status.Validationf("Target amount must be greater than 0")
	}
	deadline, err := parseFutureDeadline(req.Deadline)
	if err != nil {
		return models.Campaign{}, err
	}

	now := time.Now().UTC()
	campaign := models.Campaign{
		ID:            uuid.NewString(),
		ArtistID:      req.ArtistID,
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		ImageURL:      req.ImageURL,
		Status:        models.CampaignActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.campaigns.Insert(campaign)
	return campaign, nil
}

// List returns campaigns with derived progress fields. An empty status filter
// defaults to active; "all" disables the filter.
func (s *CampaignService) List(ctx context.Context, statusFilter, artistID string) []models.CampaignView {
	if statusFilter == "" {
		statusFilter = models.CampaignActive
	}
	now := time.Now().UTC()
	campaigns := s.campaigns.List(store.CampaignFilter{Status: statusFilter, ArtistID: artistID})

	views := make([]models.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, models.NewCampaignView(c, now))
	}
	return views
}

func (s *CampaignService) Get(ctx context.Context, id string) (models.CampaignView, error) {
	c, ok := s.campaigns.Get(id)
	if !ok {
		return models.CampaignView{}, status.ErrCampaignNotFound
	}
	view := models.NewCampaignView(c, time.Now().UTC())
	count := s.contributions.CountForCampaign(id)
	view.ContributionsCount = &count
	return view, nil
}

// UpdateCampaignRequest patches a campaign; nil fields are untouched.
type UpdateCampaignRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *string          `json:"deadline"`
	ImageURL     *string          `json:"imageUrl"`
	Status       *string          `json:"status"`
}

func (s *CampaignService) Update(ctx context.Context, id string, req UpdateCampaignRequest) (models.Campaign, error) {
	campaign, found, err := s.campaigns.Update(id, func(c *models.Campaign) error {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.TargetAmount != nil {
			if err := validatePositive(*req.TargetAmount); err != nil {
				return status.Validationf("Target amount must be greater than 0")
			}
			c.TargetAmount = *req.TargetAmount
		}
		if req.Deadline != nil {
			deadline, err := parseFutureDeadline(*req.Deadline)
			if err != nil {
				return err
			}
			c.Deadline = deadline
		}
		if req.ImageURL != nil {
			c.ImageURL = *req.ImageURL
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		return nil
	})
	if !found {
		return models.Campaign{}, status.ErrCampaignNotFound
	}
	if err != nil {
		return models.Campaign{}, err
	}
	return campaign, nil
}

type ContributeRequest struct {
	CampaignID       string          `json:"campaignId"`
	ContributorName  string          `json:"contributorName"`
	ContributorEmail string          `json:"contributorEmail"`
	Amount           decimal.Decimal `json:"amount"`
	Message          string          `json:"message"`
	PaymentMethod    string          `json:"paymentMethod"`
}

// Contribute records a contribution and adds its amount to the campaign's
// running total. Rejected contributions leave the total untouched.
func (s *CampaignService) Contribute(ctx context.Context, req ContributeRequest) (models.Contribution, models.Campaign, error) {
	required := []struct{ name, value string }{
		{"campaignId", req.CampaignID},
		{"contributorName", req.ContributorName},
		{"contributorEmail", req.ContributorEmail},
	}
	for _, f := range required {
		if f.value == "" {
			return models.Contribution{}, models.Campaign{}, status.Validationf("Missing required field: %s", f.name)
		}
	}
	if req.Amount.IsZero() {
		return models.Contribution{}, models.Campaign{}, status.Validationf("Missing required field: amount")
	}
	if err := validatePositive(req.Amount); err != nil {
		return models.Contribution{}, models.Campaign{}, status.Validationf("Contribution amount must be greater than 0")
	}

	campaign, ok := s.campaigns.Get(req.CampaignID)
	if !ok {
		return models.Contribution{}, models.Campaign{}, status.ErrCampaignNotFound
	}
	if campaign.Status != models.CampaignActive {
		return models.Contribution{}, models.Campaign{}, status.ErrCampaignInactive
	}
	if time.Now().UTC().After(campaign.Deadline) {
		return models.Contribution{}, models.Campaign{}, status.ErrDeadlinePassed
	}

	method := req.PaymentMethod
	if method == "" {
		method = "credit_card"
	}
	contribution := models.Contribution{
		ID:               uuid.NewString(),
		CampaignID:       req.CampaignID,
		ContributorName:  req.ContributorName,
		ContributorEmail: req.ContributorEmail,
		Amount:           req.Amount,
		Message:          req.Message,
		PaymentMethod:    method,
		Reference:        utils.ReferenceCode("CTR"),
		CreatedAt:        time.Now().UTC(),
	}

	s.contributions.Insert(contribution)
	updated, _ := s.campaigns.AddAmount(req.CampaignID, req.Amount)
	monitoring.RecordContribution(updated.ID, updated.CurrentAmount)

	s.notify.PublishContributionReceived(contribution, updated)

	return contribution, updated, nil
}

// ContributionsResult is the list view for one campaign's contributions.
type ContributionsResult struct {
	Contributions []models.Contribution
	TotalAmount   decimal.Decimal
}

func (s *CampaignService) Contributions(ctx context.Context, campaignID string) (ContributionsResult, error) {
	if _, ok := s.campaigns.Get(campaignID); !ok {
		return ContributionsResult{}, status.ErrCampaignNotFound
	}

	list := s.contributions.ForCampaign(campaignID)
	total := decimal.Zero
	for _, c := range list {
		total = total.Add(c.Amount)
	}
	return ContributionsResult{Contributions: list, TotalAmount: total}, nil
}

func validatePositive(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return status.Validationf("amount must be greater than 0")
	}
	return nil
}

func parseFutureDeadline(value string) (time.Time, error) {
	deadline, err := models.ParseDateTime(value)
	if err != nil {
		return time.Time{}, status.Validationf("Invalid deadline format")
	}
	if !deadline.After(time.Now().UTC()) {
		return time.Time{}, status.Validationf("Deadline must be in the future")
	}
	return deadline, nil
}
