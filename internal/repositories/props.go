package repositories

import (
	"fmt"
	"sort"
	"strings"

	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

func userFromProps(props map[string]any) *models.User {
	if props == nil {
		return nil
	}
	return &models.User{
		ID:           database.AsString(props, "id"),
		Email:        database.AsString(props, "email"),
		Username:     database.AsString(props, "username"),
		PasswordHash: database.AsString(props, "password"),
		Role:         database.AsString(props, "role"),
		CreatedAt:    database.AsTime(props, "created_at"),
	}
}

func roomFromProps(props map[string]any) *models.Room {
	if props == nil {
		return nil
	}
	return &models.Room{
		ID:         database.AsString(props, "id"),
		RoomNumber: database.AsString(props, "room_number"),
		RoomType:   database.AsString(props, "room_type"),
		Capacity:   database.AsInt(props, "capacity"),
		Price:      database.AsFloat(props, "price"),
		Status:     models.RoomStatus(database.AsString(props, "status")),
		CreatedAt:  database.AsTime(props, "created_at"),
	}
}

func bookingFromProps(props map[string]any) *models.Booking {
	if props == nil {
		return nil
	}
	return &models.Booking{
		ID:        database.AsString(props, "id"),
		StartDate: database.AsString(props, "start_date"),
		EndDate:   database.AsString(props, "end_date"),
		Duration:  database.AsInt(props, "duration"),
		Status:    models.BookingStatus(database.AsString(props, "status")),
		CreatedAt: database.AsTime(props, "created_at"),
	}
}

func tenantFromProps(props map[string]any) *models.Tenant {
	if props == nil {
		return nil
	}
	return &models.Tenant{
		ID:        database.AsString(props, "id"),
		Name:      database.AsString(props, "name"),
		Email:     database.AsString(props, "email"),
		Phone:     database.AsString(props, "phone"),
		CreatedAt: database.AsTime(props, "created_at"),
	}
}

func notificationFromProps(props map[string]any) *models.Notification {
	if props == nil {
		return nil
	}
	return &models.Notification{
		ID:        database.AsString(props, "id"),
		Message:   database.AsString(props, "message"),
		Type:      database.AsString(props, "type"),
		Status:    models.NotificationStatus(database.AsString(props, "status")),
		CreatedAt: database.AsTime(props, "created_at"),
	}
}

// setClause builds a deterministic "alias.key = $key, ..." fragment for a
// partial update, plus the matching parameter map. Keys are code-controlled
// by the services; values travel as query parameters.
func setClause(alias string, updates map[string]any) (string, map[string]any) {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	params := make(map[string]any, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s.%s = $%s", alias, key, key))
		params[key] = updates[key]
	}
	return strings.Join(parts, ", "), params
}
