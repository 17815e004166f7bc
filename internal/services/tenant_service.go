package services

import (
	"context"

	"boardinghouse/internal/models"
	"boardinghouse/internal/repositories"
)

// TenantService manages the tenant directory. Tenants are created by
// admins once a booking is settled offline; the room is linked at
// creation time and the record is otherwise append-only.
type TenantService interface {
	Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

type CreateTenantRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	RoomID string `json:"room_id" validate:"required"`
}

func NewTenantService(tenantRepo repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error) {
	tenant := &models.Tenant{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	id, err := s.tenantRepo.Create(ctx, tenant, req.RoomID)
	if err != nil {
		return nil, err
	}
	tenant.ID = id
	return tenant, nil
}

func (s *tenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	return s.tenantRepo.List(ctx)
}
