package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

type TenantRepository interface {
	// Create stores a tenant occupying the given room and returns its
	// id. Fails with the not-found error when the room does not resolve.
	Create(ctx context.Context, tenant *models.Tenant, roomID string) (string, error)
	// List returns all tenants ordered by name ascending, each enriched
	// with the occupied room snapshot.
	List(ctx context.Context) ([]*models.Tenant, error)
}

type tenantRepo struct {
	graph *database.Graph
}

func NewTenantRepository(graph *database.Graph) TenantRepository {
	return &tenantRepo{graph: graph}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant, roomID string) (string, error) {
	query := `
		MATCH (r:Room {id: $room_id})
		CREATE (t:Tenant {
			id: $id,
			name: $name,
			email: $email,
			phone: $phone,
			created_at: datetime()
		})
		CREATE (t)-[:OCCUPIES]->(r)
		RETURN t.id AS id
	`
	rows, err := r.graph.Run(ctx, "create_tenant", query, map[string]any{
		"id":      uuid.NewString(),
		"name":    tenant.Name,
		"email":   tenant.Email,
		"phone":   tenant.Phone,
		"room_id": roomID,
	})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: room %s", common.ErrNotFound, roomID)
	}
	return database.AsString(rows[0], "id"), nil
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	query := `
		MATCH (t:Tenant)-[:OCCUPIES]->(r:Room)
		RETURN t, r
		ORDER BY t.name
	`
	rows, err := r.graph.Run(ctx, "get_all_tenants", query, nil)
	if err != nil {
		return nil, err
	}
	tenants := make([]*models.Tenant, 0, len(rows))
	for _, row := range rows {
		tenant := tenantFromProps(database.AsMap(row, "t"))
		tenant.Room = roomFromProps(database.AsMap(row, "r"))
		tenants = append(tenants, tenant)
	}
	return tenants, nil
}
