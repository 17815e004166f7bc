package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"boardinghouse/internal/config"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repositories"
	"boardinghouse/pkg/database"
)

// Starter data seeded when SEED_SAMPLE_DATA is enabled: an inventory
// for an empty database plus two demo accounts.
var sampleUsers = []struct {
	email    string
	username string
	password string
}{
	{"john.doe@example.com", "john_doe", "password123"},
	{"jane.smith@example.com", "jane_smith", "password123"},
}

var sampleRooms = []models.Room{
	{RoomNumber: "101", RoomType: "Single", Capacity: 1, Price: 5000, Status: models.RoomAvailable},
	{RoomNumber: "102", RoomType: "Single", Capacity: 1, Price: 5000, Status: models.RoomAvailable},
	{RoomNumber: "201", RoomType: "Double", Capacity: 2, Price: 8000, Status: models.RoomAvailable},
	{RoomNumber: "202", RoomType: "Double", Capacity: 2, Price: 8000, Status: models.RoomAvailable},
	{RoomNumber: "301", RoomType: "Family", Capacity: 4, Price: 12000, Status: models.RoomAvailable},
	{RoomNumber: "302", RoomType: "Family", Capacity: 4, Price: 12000, Status: models.RoomAvailable},
}

// Run prepares a fresh database for service: uniqueness constraints,
// the default admin account and, optionally, sample rooms. Constraint
// setup failures are logged but not fatal so the server can come up
// against a half-initialized or unreachable store.
func Run(ctx context.Context, cfg *config.Config, graph *database.Graph, userRepo repositories.UserRepository, roomRepo repositories.RoomRepository, log *logrus.Logger) error {
	if err := graph.EnsureConstraints(ctx); err != nil {
		log.WithError(err).Warn("could not ensure uniqueness constraints")
	}

	if err := ensureAdmin(ctx, cfg, userRepo, log); err != nil {
		return err
	}

	if cfg.SeedSampleData {
		if err := seedRooms(ctx, roomRepo, log); err != nil {
			return err
		}
		if err := seedUsers(ctx, userRepo, log); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, cfg *config.Config, userRepo repositories.UserRepository, log *logrus.Logger) error {
	existing, err := userRepo.GetByEmail(ctx, cfg.DefaultAdminEmail)
	if err != nil {
		return fmt.Errorf("look up default admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	if _, err := userRepo.Create(ctx, cfg.DefaultAdminEmail, "admin", string(hash), models.RoleAdmin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	log.Infof("created default admin account %s", cfg.DefaultAdminEmail)
	return nil
}

func seedRooms(ctx context.Context, roomRepo repositories.RoomRepository, log *logrus.Logger) error {
	rooms, err := roomRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list rooms before seeding: %w", err)
	}
	if len(rooms) > 0 {
		return nil
	}

	for i := range sampleRooms {
		if _, err := roomRepo.Create(ctx, &sampleRooms[i]); err != nil {
			return fmt.Errorf("seed room %s: %w", sampleRooms[i].RoomNumber, err)
		}
	}
	log.Infof("seeded %d sample rooms", len(sampleRooms))
	return nil
}

func seedUsers(ctx context.Context, userRepo repositories.UserRepository, log *logrus.Logger) error {
	for _, u := range sampleUsers {
		existing, err := userRepo.GetByEmail(ctx, u.email)
		if err != nil {
			return fmt.Errorf("look up sample user %s: %w", u.email, err)
		}
		if existing != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash sample user password: %w", err)
		}
		if _, err := userRepo.Create(ctx, u.email, u.username, string(hash), models.RoleUser); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		log.Infof("seeded sample user %s", u.email)
	}
	return nil
}
