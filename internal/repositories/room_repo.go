package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

type RoomRepository interface {
	// Create stores a new room and returns its id.
	Create(ctx context.Context, room *models.Room) (string, error)
	// List returns all rooms ordered by room number ascending.
	List(ctx context.Context) ([]*models.Room, error)
	// GetByID returns nil without error when no room matches.
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// Update merges the provided fields into the room. Updating a room
	// that no longer exists is a no-op.
	Update(ctx context.Context, id string, updates map[string]any) error
	// Delete detaches and removes the room and its relationships.
	Delete(ctx context.Context, id string) error
}

type roomRepo struct {
	graph *database.Graph
}

func NewRoomRepository(graph *database.Graph) RoomRepository {
	return &roomRepo{graph: graph}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) (string, error) {
	query := `
		CREATE (r:Room {
			id: $id,
			room_number: $room_number,
			room_type: $room_type,
			capacity: $capacity,
			price: $price,
			status: $status,
			created_at: datetime()
		})
		RETURN r.id AS id
	`
	rows, err := r.graph.Run(ctx, "create_room", query, map[string]any{
		"id":          uuid.NewString(),
		"room_number": room.RoomNumber,
		"room_type":   room.RoomType,
		"capacity":    room.Capacity,
		"price":       room.Price,
		"status":      string(room.Status),
	})
	if err != nil {
		return "", err
	}
	return database.AsString(rows[0], "id"), nil
}

func (r *roomRepo) List(ctx context.Context) ([]*models.Room, error) {
	rows, err := r.graph.Run(ctx, "get_all_rooms", "MATCH (r:Room) RETURN r ORDER BY r.room_number", nil)
	if err != nil {
		return nil, err
	}
	rooms := make([]*models.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, roomFromProps(database.AsMap(row, "r")))
	}
	return rooms, nil
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	rows, err := r.graph.Run(ctx, "get_room_by_id", "MATCH (r:Room {id: $id}) RETURN r", map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return roomFromProps(database.AsMap(rows[0], "r")), nil
}

func (r *roomRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	clause, params := setClause("r", updates)
	params["id"] = id
	query := fmt.Sprintf("MATCH (r:Room {id: $id}) SET %s RETURN r", clause)
	_, err := r.graph.Run(ctx, "update_room", query, params)
	return err
}

func (r *roomRepo) Delete(ctx context.Context, id string) error {
	_, err := r.graph.Run(ctx, "delete_room", "MATCH (r:Room {id: $id}) DETACH DELETE r", map[string]any{"id": id})
	return err
}
