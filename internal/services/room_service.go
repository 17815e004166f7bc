package services

import (
	"context"
	"fmt"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repositories"
)

type RoomService interface {
	Create(ctx context.Context, req *CreateRoomRequest) (*models.Room, error)
	List(ctx context.Context) ([]*models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Update(ctx context.Context, id string, req *UpdateRoomRequest) (*models.Room, error)
	Delete(ctx context.Context, id string) error
}

type roomService struct {
	roomRepo repositories.RoomRepository
}

type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required"`
	RoomType   string  `json:"room_type" validate:"required"`
	Capacity   int     `json:"capacity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Status     string  `json:"status"`
}

type UpdateRoomRequest struct {
	RoomNumber *string  `json:"room_number"`
	RoomType   *string  `json:"room_type"`
	Capacity   *int     `json:"capacity"`
	Price      *float64 `json:"price"`
	Status     *string  `json:"status"`
}

func NewRoomService(roomRepo repositories.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) Create(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	status := models.RoomStatus(req.Status)
	if req.Status == "" {
		status = models.RoomAvailable
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown room status %q", common.ErrInvalidState, req.Status)
	}

	room := &models.Room{
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Capacity:   req.Capacity,
		Price:      req.Price,
		Status:     status,
	}
	id, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *roomService) List(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.List(ctx)
}

func (s *roomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", common.ErrNotFound, id)
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, id string, req *UpdateRoomRequest) (*models.Room, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.RoomNumber != nil {
		updates["room_number"] = *req.RoomNumber
	}
	if req.RoomType != nil {
		updates["room_type"] = *req.RoomType
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		if !models.RoomStatus(*req.Status).Valid() {
			return nil, fmt.Errorf("%w: unknown room status %q", common.ErrInvalidState, *req.Status)
		}
		updates["status"] = *req.Status
	}

	if err := s.roomRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.roomRepo.Delete(ctx, id)
}
