// Package usecase contiene los casos de uso CRUD de los catálogos de la
// pousada: clientes, cuartos, productos, servicios y funcionarios.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD de huéspedes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create registra un huésped. Solo el nombre completo es obligatorio.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		CPF:       in.CPF,
		RG:        in.RG,
		BirthDate: in.BirthDate,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un huésped por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista todos los huéspedes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Update aplica un update parcial sobre el huésped.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, domain.ErrInvalidInput
		}
		client.FullName = *in.FullName
	}
	if in.CPF != nil {
		client.CPF = *in.CPF
	}
	if in.RG != nil {
		client.RG = *in.RG
	}
	if in.BirthDate != nil {
		client.BirthDate = *in.BirthDate
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete borra el huésped.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		CPF:       c.CPF,
		RG:        c.RG,
		BirthDate: c.BirthDate,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
