package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mockRooms *MockRoomRepository
	service   RoomService
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.mockRooms = &MockRoomRepository{}
	suite.mockRooms.Test(suite.T())
	suite.service = NewRoomService(suite.mockRooms)
}

func (suite *RoomServiceTestSuite) TearDownTest() {
	suite.mockRooms.AssertExpectations(suite.T())
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (suite *RoomServiceTestSuite) TestCreate_DefaultsToAvailable() {
	ctx := context.Background()
	stored := &models.Room{ID: "r-1", RoomNumber: "101", Status: models.RoomAvailable}

	suite.mockRooms.On("Create", ctx, &models.Room{
		RoomNumber: "101",
		RoomType:   "Single",
		Capacity:   1,
		Price:      5000,
		Status:     models.RoomAvailable,
	}).Return("r-1", nil)
	suite.mockRooms.On("GetByID", ctx, "r-1").Return(stored, nil)

	room, err := suite.service.Create(ctx, &CreateRoomRequest{
		RoomNumber: "101",
		RoomType:   "Single",
		Capacity:   1,
		Price:      5000,
	})

	suite.NoError(err)
	suite.Equal(models.RoomAvailable, room.Status)
}

func (suite *RoomServiceTestSuite) TestCreate_RejectsUnknownStatus() {
	_, err := suite.service.Create(context.Background(), &CreateRoomRequest{
		RoomNumber: "101",
		RoomType:   "Single",
		Capacity:   1,
		Price:      5000,
		Status:     "vacant",
	})
	suite.ErrorIs(err, common.ErrInvalidState)
}

func (suite *RoomServiceTestSuite) TestGetByID_Missing() {
	ctx := context.Background()
	suite.mockRooms.On("GetByID", ctx, "ghost").Return(nil, nil)

	_, err := suite.service.GetByID(ctx, "ghost")
	suite.ErrorIs(err, common.ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestUpdate_PartialFields() {
	ctx := context.Background()
	existing := &models.Room{ID: "r-1", RoomNumber: "101", Status: models.RoomAvailable}
	updated := &models.Room{ID: "r-1", RoomNumber: "101", Status: models.RoomMaintenance}

	suite.mockRooms.On("GetByID", ctx, "r-1").Return(existing, nil).Once()
	suite.mockRooms.On("Update", ctx, "r-1", map[string]any{"status": "maintenance"}).Return(nil)
	suite.mockRooms.On("GetByID", ctx, "r-1").Return(updated, nil).Once()

	status := "maintenance"
	room, err := suite.service.Update(ctx, "r-1", &UpdateRoomRequest{Status: &status})

	suite.NoError(err)
	suite.Equal(models.RoomMaintenance, room.Status)
}

func (suite *RoomServiceTestSuite) TestUpdate_MissingRoom() {
	ctx := context.Background()
	suite.mockRooms.On("GetByID", ctx, "ghost").Return(nil, nil)

	status := "occupied"
	_, err := suite.service.Update(ctx, "ghost", &UpdateRoomRequest{Status: &status})
	suite.ErrorIs(err, common.ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestDelete_ChecksExistence() {
	ctx := context.Background()
	existing := &models.Room{ID: "r-1"}
	suite.mockRooms.On("GetByID", ctx, "r-1").Return(existing, nil)
	suite.mockRooms.On("Delete", ctx, "r-1").Return(nil)

	suite.NoError(suite.service.Delete(ctx, "r-1"))
}
