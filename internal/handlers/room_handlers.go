package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"boardinghouse/internal/common"
	"boardinghouse/internal/services"
)

// RoomHandlers handles room inventory HTTP requests. Reads are public,
// writes are admin-only and guarded at route registration.
type RoomHandlers struct {
	roomService services.RoomService
}

func NewRoomHandlers(roomService services.RoomService) *RoomHandlers {
	return &RoomHandlers{roomService: roomService}
}

func (h *RoomHandlers) Create(c echo.Context) error {
	var req services.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.Create(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"id":      room.ID,
		"message": "Room created successfully",
	})
}

func (h *RoomHandlers) List(c echo.Context) error {
	rooms, err := h.roomService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandlers) Get(c echo.Context) error {
	room, err := h.roomService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandlers) Update(c echo.Context) error {
	var req services.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if _, err := h.roomService.Update(c.Request().Context(), c.Param("id"), &req); err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Room updated successfully"})
}

func (h *RoomHandlers) Delete(c echo.Context) error {
	if err := h.roomService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(common.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Room deleted successfully"})
}
