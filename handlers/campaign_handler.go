package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"macs-platform/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	var req services.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	campaign, err := h.campaignService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"campaign": campaign,
		"message":  "Campaign created successfully",
	})
}

func (h *CampaignHandler) GetCampaigns(c echo.Context) error {
	campaigns := h.campaignService.List(c.Request().Context(), c.QueryParam("status"), c.QueryParam("artistId"))
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	campaign, err := h.campaignService.Get(c.Request().Context(), c.PathParam("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"campaign": campaign,
	})
}

func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	var req services.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	campaign, err := h.campaignService.Update(c.Request().Context(), c.PathParam("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"campaign": campaign,
		"message":  "Campaign updated successfully",
	})
}

// CreateContribution records a contribution and returns the updated campaign
// so clients can refresh progress without a second call.
func (h *CampaignHandler) CreateContribution(c echo.Context) error {
	var req services.ContributeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	contribution, campaign, err := h.campaignService.Contribute(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":      true,
		"contribution": contribution,
		"campaign":     campaign,
		"message":      "Contribution submitted successfully",
	})
}

func (h *CampaignHandler) GetContributions(c echo.Context) error {
	result, err := h.campaignService.Contributions(c.Request().Context(), c.PathParam("campaignId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"contributions": result.Contributions,
		"total":         len(result.Contributions),
		"totalAmount":   result.TotalAmount,
	})
}
