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

// RoomUseCase casos de uso CRUD de cuartos.
type RoomUseCase struct {
	roomRepo repository.RoomRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(roomRepo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo}
}

// Create registra un cuarto. El número debe ser único (la violación sube
// como ErrDuplicate desde el repositorio).
func (uc *RoomUseCase) Create(ctx context.Context, in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if in.Number == "" || !entity.ValidRoomType(in.Type) || in.Capacity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.DailyRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RoomStatusAvailable
	}
	if !entity.ValidRoomStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	room := &entity.Room{
		ID:           uuid.New().String(),
		Number:       in.Number,
		Type:         in.Type,
		Capacity:     in.Capacity,
		DailyRate:    in.DailyRate,
		Status:       status,
		Observations: in.Observations,
	}
	if err := uc.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// GetByID obtiene un cuarto por ID.
func (uc *RoomUseCase) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	return toRoomResponse(room), nil
}

// List lista todos los cuartos.
func (uc *RoomUseCase) List(ctx context.Context) ([]dto.RoomResponse, error) {
	list, err := uc.roomRepo.List()
	if err != nil {
		return nil, err
	}
	return toRoomResponses(list), nil
}

// ListAvailable lista los cuartos en estado available.
func (uc *RoomUseCase) ListAvailable(ctx context.Context) ([]dto.RoomResponse, error) {
	list, err := uc.roomRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	return toRoomResponses(list), nil
}

// Update aplica un update parcial sobre el cuarto.
func (uc *RoomUseCase) Update(ctx context.Context, id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number != nil {
		if *in.Number == "" {
			return nil, domain.ErrInvalidInput
		}
		room.Number = *in.Number
	}
	if in.Type != nil {
		if !entity.ValidRoomType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		room.Type = *in.Type
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, domain.ErrInvalidInput
		}
		room.Capacity = *in.Capacity
	}
	if in.DailyRate != nil {
		if in.DailyRate.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		room.DailyRate = *in.DailyRate
	}
	if in.Status != nil {
		if !entity.ValidRoomStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		room.Status = *in.Status
	}
	if in.Observations != nil {
		room.Observations = *in.Observations
	}
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// Delete borra el cuarto.
func (uc *RoomUseCase) Delete(ctx context.Context, id string) error {
	return uc.roomRepo.Delete(id)
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:           r.ID,
		Number:       r.Number,
		Type:         r.Type,
		Capacity:     r.Capacity,
		DailyRate:    r.DailyRate,
		Status:       r.Status,
		Observations: r.Observations,
	}
}

func toRoomResponses(list []*entity.Room) []dto.RoomResponse {
	items := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoomResponse(r))
	}
	return items
}
