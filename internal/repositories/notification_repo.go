package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

type NotificationRepository interface {
	// Create stores a notification with status pending for the given
	// user, optionally referencing a booking, and returns its id.
	Create(ctx context.Context, userID, bookingID, message, notificationType string) (string, error)
	// ListAll returns every notification ordered by creation time
	// descending, each enriched with its user snapshot and booking id.
	ListAll(ctx context.Context) ([]*models.Notification, error)
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	// GetByID returns nil without error when no notification matches.
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// Update merges the provided fields into the notification.
	Update(ctx context.Context, id string, updates map[string]any) error
}

type notificationRepo struct {
	graph *database.Graph
}

func NewNotificationRepository(graph *database.Graph) NotificationRepository {
	return &notificationRepo{graph: graph}
}

func (r *notificationRepo) Create(ctx context.Context, userID, bookingID, message, notificationType string) (string, error) {
	params := map[string]any{
		"id":      uuid.NewString(),
		"user_id": userID,
		"message": message,
		"type":    notificationType,
		"status":  string(models.NotificationPending),
	}

	query := `
		MATCH (u:User {id: $user_id})
		CREATE (n:Notification {
			id: $id,
			message: $message,
			type: $type,
			status: $status,
			created_at: datetime()
		})
		CREATE (n)-[:FOR_USER]->(u)
		RETURN n.id AS id
	`
	if bookingID != "" {
		params["booking_id"] = bookingID
		query = `
			MATCH (u:User {id: $user_id}), (b:Booking {id: $booking_id})
			CREATE (n:Notification {
				id: $id,
				message: $message,
				type: $type,
				status: $status,
				created_at: datetime()
			})
			CREATE (n)-[:FOR_USER]->(u)
			CREATE (n)-[:ABOUT_BOOKING]->(b)
			RETURN n.id AS id
		`
	}

	rows, err := r.graph.Run(ctx, "create_notification", query, params)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: user or booking", common.ErrNotFound)
	}
	return database.AsString(rows[0], "id"), nil
}

func (r *notificationRepo) ListAll(ctx context.Context) ([]*models.Notification, error) {
	query := `
		MATCH (n:Notification)-[:FOR_USER]->(u:User)
		OPTIONAL MATCH (n)-[:ABOUT_BOOKING]->(b:Booking)
		RETURN n, u, b.id AS booking_id
		ORDER BY n.created_at DESC
	`
	rows, err := r.graph.Run(ctx, "get_all_notifications", query, nil)
	if err != nil {
		return nil, err
	}
	notifications := make([]*models.Notification, 0, len(rows))
	for _, row := range rows {
		notification := notificationFromProps(database.AsMap(row, "n"))
		notification.User = userFromProps(database.AsMap(row, "u"))
		notification.BookingID = database.AsString(row, "booking_id")
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		MATCH (n:Notification)-[:FOR_USER]->(u:User {id: $user_id})
		OPTIONAL MATCH (n)-[:ABOUT_BOOKING]->(b:Booking)
		RETURN n, b.id AS booking_id
		ORDER BY n.created_at DESC
	`
	rows, err := r.graph.Run(ctx, "get_user_notifications", query, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	notifications := make([]*models.Notification, 0, len(rows))
	for _, row := range rows {
		notification := notificationFromProps(database.AsMap(row, "n"))
		notification.BookingID = database.AsString(row, "booking_id")
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	query := `
		MATCH (n:Notification {id: $id})
		OPTIONAL MATCH (n)-[:ABOUT_BOOKING]->(b:Booking)
		RETURN n, b.id AS booking_id
	`
	rows, err := r.graph.Run(ctx, "get_notification_by_id", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	notification := notificationFromProps(database.AsMap(rows[0], "n"))
	notification.BookingID = database.AsString(rows[0], "booking_id")
	return notification, nil
}

func (r *notificationRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	clause, params := setClause("n", updates)
	params["id"] = id
	query := fmt.Sprintf("MATCH (n:Notification {id: $id}) SET %s RETURN n", clause)
	_, err := r.graph.Run(ctx, "update_notification", query, params)
	return err
}
