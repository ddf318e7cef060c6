package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"macs-platform/internal/status"
)

// writeError maps service errors onto the API's status codes. Anything
// unrecognized is a 500 with a generic body.
func writeError(c echo.Context, err error) error {
	switch {
	case status.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case status.IsSlotUnavailable(err):
		var se *status.SlotUnavailableError
		errors.As(err, &se)
		return c.JSON(http.StatusConflict, map[string]string{"error": se.Reason})
	case errors.Is(err, status.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Booking not found"})
	case errors.Is(err, status.ErrCampaignNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Campaign not found"})
	case errors.Is(err, status.ErrNotPending):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Booking is not in pending status"})
	case errors.Is(err, status.ErrInvalidAction):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": `Invalid action. Must be "accept" or "decline"`})
	case errors.Is(err, status.ErrCampaignInactive):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Campaign is not active"})
	case errors.Is(err, status.ErrDeadlinePassed):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Campaign deadline has passed"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error: " + err.Error()})
	}
}
