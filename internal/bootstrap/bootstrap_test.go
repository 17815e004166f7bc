package bootstrap

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"boardinghouse/internal/config"
	"boardinghouse/internal/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, email, username, passwordHash, role string) (string, error) {
	args := m.Called(ctx, email, username, passwordHash, role)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) (string, error) {
	args := m.Called(ctx, room)
	return args.String(0), args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context) ([]*models.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Room), args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultAdminEmail:    "admin@boardinghouse.com",
		DefaultAdminPassword: "admin123",
	}
}

func TestEnsureAdminCreatesAccountOnce(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	users.Test(t)
	users.On("GetByEmail", ctx, "admin@boardinghouse.com").Return(nil, nil)
	users.On("Create", ctx, "admin@boardinghouse.com", "admin", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")) == nil
	}), models.RoleAdmin).Return("u-1", nil)

	err := ensureAdmin(ctx, testConfig(), users, quietLogger())

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestEnsureAdminSkipsExisting(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	users.Test(t)
	users.On("GetByEmail", ctx, "admin@boardinghouse.com").Return(&models.User{ID: "u-1"}, nil)

	err := ensureAdmin(ctx, testConfig(), users, quietLogger())

	assert.NoError(t, err)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedRoomsPopulatesEmptyInventory(t *testing.T) {
	ctx := context.Background()
	rooms := &mockRoomRepo{}
	rooms.Test(t)
	rooms.On("List", ctx).Return([]*models.Room{}, nil)
	rooms.On("Create", ctx, mock.AnythingOfType("*models.Room")).Return("r-1", nil).Times(len(sampleRooms))

	err := seedRooms(ctx, rooms, quietLogger())

	assert.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestSeedUsersSkipsExistingAccounts(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	users.Test(t)
	users.On("GetByEmail", ctx, "john.doe@example.com").Return(&models.User{ID: "u-1"}, nil)
	users.On("GetByEmail", ctx, "jane.smith@example.com").Return(nil, nil)
	users.On("Create", ctx, "jane.smith@example.com", "jane_smith", mock.AnythingOfType("string"), models.RoleUser).Return("u-2", nil)

	err := seedUsers(ctx, users, quietLogger())

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestSeedRoomsSkipsNonEmptyInventory(t *testing.T) {
	ctx := context.Background()
	rooms := &mockRoomRepo{}
	rooms.Test(t)
	rooms.On("List", ctx).Return([]*models.Room{{ID: "r-1"}}, nil)

	err := seedRooms(ctx, rooms, quietLogger())

	assert.NoError(t, err)
	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
