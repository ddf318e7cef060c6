package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"macs-platform/services"
	"macs-platform/store"
)

type BookingHandler struct {
	bookingService      *services.BookingService
	availabilityService *services.AvailabilityService
}

func NewBookingHandler(bookingService *services.BookingService, availabilityService *services.AvailabilityService) *BookingHandler {
	return &BookingHandler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
	}
}

// CreateBooking - submit a booking request for an artist's slot
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req services.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	booking, err := h.bookingService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"booking": booking,
		"message": "Booking request submitted successfully",
	})
}

func (h *BookingHandler) GetBookings(c echo.Context) error {
	filter := store.BookingFilter{
		ArtistID:    c.QueryParam("artistId"),
		ClientEmail: c.QueryParam("clientEmail"),
		Status:      c.QueryParam("status"),
	}

	bookings := h.bookingService.List(c.Request().Context(), filter)
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"bookings": bookings,
		"total":    len(bookings),
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.bookingService.Get(c.Request().Context(), c.PathParam("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"booking": booking,
	})
}

// ConfirmBooking - artist accepts or declines a pending booking
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	var req struct {
		Action string `json:"action"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	booking, err := h.bookingService.Transition(c.Request().Context(), c.PathParam("id"), req.Action)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"booking": booking,
		"message": "Booking " + booking.Status + " successfully. Client has been notified via email.",
	})
}

// UpdateBookingStatus - administrative status edit, including completed
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	booking, err := h.bookingService.UpdateStatus(c.Request().Context(), c.PathParam("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"booking": booking,
		"message": "Booking " + booking.Status + " successfully",
	})
}

// GetUserBookings - all bookings placed under a client email
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	bookings := h.bookingService.List(c.Request().Context(), store.BookingFilter{
		ClientEmail: c.PathParam("email"),
	})

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// GetAvailability - availability calendar for an artist, with booked slots
// overlaid so the client can compute the open-slot view
func (h *BookingHandler) GetAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	artistID := c.PathParam("artistId")
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")

	var availability map[string][]string
	if startDate != "" && endDate != "" {
		ranged, err := h.availabilityService.AvailabilityRange(ctx, artistID, startDate, endDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		availability = ranged
	} else {
		availability = h.availabilityService.Overrides(ctx, artistID)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"availability": availability,
		"bookedSlots":  h.availabilityService.BookedSlots(ctx, artistID, startDate, endDate),
		"defaultHours": h.availabilityService.DefaultHours(ctx, artistID),
	})
}

// CheckAvailability - point query for one slot
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	var req struct {
		ArtistID string `json:"artistId"`
		DateTime string `json:"dateTime"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.ArtistID == "" || req.DateTime == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing artistId or dateTime"})
	}

	available, message := h.availabilityService.IsSlotAvailable(c.Request().Context(), req.ArtistID, req.DateTime)
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"available": available,
		"message":   message,
	})
}

// GetStats - per-status booking counts for the artist dashboard
func (h *BookingHandler) GetStats(c echo.Context) error {
	stats := h.bookingService.Stats(c.Request().Context(), c.PathParam("artistId"))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}
