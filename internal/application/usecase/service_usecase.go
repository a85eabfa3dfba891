package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD de servicios.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo}
}

// Create registra un servicio.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	service := &entity.Service{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		EstimatedTime: in.EstimatedTime,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// List lista todos los servicios.
func (uc *ServiceUseCase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	list, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return items, nil
}

// Update aplica un update parcial sobre el servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	if in.EstimatedTime != nil {
		service.EstimatedTime = *in.EstimatedTime
	}
	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete borra el servicio.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.serviceRepo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		EstimatedTime: s.EstimatedTime,
	}
}
