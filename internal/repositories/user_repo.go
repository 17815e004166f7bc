package repositories

import (
	"context"

	"github.com/google/uuid"

	"boardinghouse/internal/models"
	"boardinghouse/pkg/database"
)

type UserRepository interface {
	// Create stores a new user and returns its id. The password must
	// already be hashed. Fails with the already-exists error when the
	// email is taken.
	Create(ctx context.Context, email, username, passwordHash, role string) (string, error)
	// GetByEmail returns nil without error when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns nil without error when no user matches.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type userRepo struct {
	graph *database.Graph
}

func NewUserRepository(graph *database.Graph) UserRepository {
	return &userRepo{graph: graph}
}

func (r *userRepo) Create(ctx context.Context, email, username, passwordHash, role string) (string, error) {
	query := `
		CREATE (u:User {
			id: $id,
			email: $email,
			username: $username,
			password: $password,
			role: $role,
			created_at: datetime()
		})
		RETURN u.id AS id
	`
	rows, err := r.graph.Run(ctx, "create_user", query, map[string]any{
		"id":       uuid.NewString(),
		"email":    email,
		"username": username,
		"password": passwordHash,
		"role":     role,
	})
	if err != nil {
		return "", err
	}
	return database.AsString(rows[0], "id"), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "get_user_by_email", "MATCH (u:User {email: $email}) RETURN u", map[string]any{"email": email})
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "get_user_by_id", "MATCH (u:User {id: $id}) RETURN u", map[string]any{"id": id})
}

func (r *userRepo) getOne(ctx context.Context, op, query string, params map[string]any) (*models.User, error) {
	rows, err := r.graph.Run(ctx, op, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return userFromProps(database.AsMap(rows[0], "u")), nil
}
