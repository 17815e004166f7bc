package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"boardinghouse/internal/common"
	"boardinghouse/internal/services"
)

// BookingHandlers handles booking request HTTP endpoints. All routes
// require an authenticated user.
type BookingHandlers struct {
	bookingService services.BookingService
}

func NewBookingHandlers(bookingService services.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingService: bookingService}
}

func (h *BookingHandlers) Create(c echo.Context) error {
	user, ok := common.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.Create(c.Request().Context(), user, &req)
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"id":      booking.ID,
		"message": "Booking created successfully",
	})
}

// ListMine returns the authenticated user's bookings, newest first.
func (h *BookingHandlers) ListMine(c echo.Context) error {
	user, ok := common.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookings, err := h.bookingService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandlers) Update(c echo.Context) error {
	user, ok := common.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if _, err := h.bookingService.Update(c.Request().Context(), user, c.Param("id"), &req); err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Booking updated successfully"})
}

// Cancel moves the booking to cancelled on behalf of its owner.
func (h *BookingHandlers) Cancel(c echo.Context) error {
	user, ok := common.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if _, err := h.bookingService.Cancel(c.Request().Context(), user, c.Param("id")); err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Booking cancelled successfully"})
}
