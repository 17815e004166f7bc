package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

type BookingRepository interface {
	// Create stores a booking with status pending, linking the owning
	// user and the booked room, and returns its id. Fails with the
	// not-found error when either endpoint is missing.
	Create(ctx context.Context, userID, roomID, startDate, endDate string, duration int) (string, error)
	// ListByUser returns the user's bookings ordered by creation time
	// descending, each enriched with its room snapshot.
	ListByUser(ctx context.Context, userID string) ([]*models.Booking, error)
	// GetByID returns the booking enriched with its room snapshot and
	// owning user id, or nil without error when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Update merges the provided fields into the booking. Updating a
	// booking that no longer exists is a no-op.
	Update(ctx context.Context, id string, updates map[string]any) error
}

type bookingRepo struct {
	graph *database.Graph
}

func NewBookingRepository(graph *database.Graph) BookingRepository {
	return &bookingRepo{graph: graph}
}

func (r *bookingRepo) Create(ctx context.Context, userID, roomID, startDate, endDate string, duration int) (string, error) {
	query := `
		MATCH (u:User {id: $user_id}), (r:Room {id: $room_id})
		CREATE (b:Booking {
			id: $id,
			start_date: $start_date,
			end_date: $end_date,
			duration: $duration,
			status: $status,
			created_at: datetime()
		})
		CREATE (u)-[:MADE_BOOKING]->(b)
		CREATE (b)-[:FOR_ROOM]->(r)
		RETURN b.id AS id
	`
	rows, err := r.graph.Run(ctx, "create_booking", query, map[string]any{
		"id":         uuid.NewString(),
		"user_id":    userID,
		"room_id":    roomID,
		"start_date": startDate,
		"end_date":   endDate,
		"duration":   duration,
		"status":     string(models.BookingPending),
	})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: user or room", common.ErrNotFound)
	}
	return database.AsString(rows[0], "id"), nil
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	query := `
		MATCH (u:User {id: $user_id})-[:MADE_BOOKING]->(b:Booking)-[:FOR_ROOM]->(r:Room)
		RETURN b, r
		ORDER BY b.created_at DESC
	`
	rows, err := r.graph.Run(ctx, "get_user_bookings", query, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	bookings := make([]*models.Booking, 0, len(rows))
	for _, row := range rows {
		booking := bookingFromProps(database.AsMap(row, "b"))
		booking.UserID = userID
		booking.Room = roomFromProps(database.AsMap(row, "r"))
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	query := `
		MATCH (u:User)-[:MADE_BOOKING]->(b:Booking {id: $id})-[:FOR_ROOM]->(r:Room)
		RETURN b, r, u.id AS user_id
	`
	rows, err := r.graph.Run(ctx, "get_booking_by_id", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	booking := bookingFromProps(database.AsMap(rows[0], "b"))
	booking.Room = roomFromProps(database.AsMap(rows[0], "r"))
	booking.UserID = database.AsString(rows[0], "user_id")
	return booking, nil
}

func (r *bookingRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	clause, params := setClause("b", updates)
	params["id"] = id
	query := fmt.Sprintf("MATCH (b:Booking {id: $id}) SET %s RETURN b", clause)
	_, err := r.graph.Run(ctx, "update_booking", query, params)
	return err
}
