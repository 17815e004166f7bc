package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/internal/services"
)

// NotificationHandlers handles notification listing and the admin
// approval endpoint.
type NotificationHandlers struct {
	notificationService services.NotificationService
}

func NewNotificationHandlers(notificationService services.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notificationService: notificationService}
}

type updateNotificationRequest struct {
	Status string `json:"status" validate:"required"`
}

// List returns all notifications for admins and the caller's own
// notifications otherwise.
func (h *NotificationHandlers) List(c echo.Context) error {
	user, ok := common.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifications, err := h.notificationService.ListFor(c.Request().Context(), user)
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, notifications)
}

// Update applies an approval decision or marks the notification read.
func (h *NotificationHandlers) Update(c echo.Context) error {
	var req updateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.notificationService.UpdateStatus(c.Request().Context(), c.Param("id"), models.NotificationStatus(req.Status)); err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification updated successfully"})
}
