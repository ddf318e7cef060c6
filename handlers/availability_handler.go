package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"macs-platform/services"
)

// AvailabilityHandler manages an artist's own calendar: reading the current
// override map and pushing per-date slot lists.
type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

func (h *AvailabilityHandler) GetArtistAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	artistID := c.PathParam("artistId")
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")

	if startDate != "" && endDate != "" {
		availability, err := h.availabilityService.AvailabilityRange(ctx, artistID, startDate, endDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"success":      true,
			"availability": availability,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"availability": h.availabilityService.Overrides(ctx, artistID),
	})
}

// UpdateArtistAvailability merges per-date slot lists into the artist's
// overrides. An empty list for a date blocks the whole date.
func (h *AvailabilityHandler) UpdateArtistAvailability(c echo.Context) error {
	var req struct {
		Availability map[string][]string `json:"availability"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if len(req.Availability) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No availability data provided"})
	}

	updated := h.availabilityService.SetOverrides(c.Request().Context(), c.PathParam("artistId"), req.Availability)
	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Availability updated successfully",
		"availability": updated.Overrides,
	})
}
