package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// ServiceSaleUseCase registra servicios cargados a una reserva. No toca
// stock, así que no necesita transacción.
type ServiceSaleUseCase struct {
	saleRepo    repository.ServiceSaleRepository
	serviceRepo repository.ServiceRepository
	resRepo     repository.ReservationRepository
}

// NewServiceSaleUseCase construye el caso de uso.
func NewServiceSaleUseCase(
	saleRepo repository.ServiceSaleRepository,
	serviceRepo repository.ServiceRepository,
	resRepo repository.ReservationRepository,
) *ServiceSaleUseCase {
	return &ServiceSaleUseCase{
		saleRepo:    saleRepo,
		serviceRepo: serviceRepo,
		resRepo:     resRepo,
	}
}

// Create registra la venta en estado pending. Si price no viene (cero) se
// copia el precio vigente del servicio; queda congelado en la venta.
func (uc *ServiceSaleUseCase) Create(ctx context.Context, in dto.CreateServiceSaleRequest) (*dto.ServiceSaleResponse, error) {
	if in.ReservationID == "" || in.ServiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	res, err := uc.resRepo.GetByID(in.ReservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	price := in.Price
	if price.IsZero() {
		service, err := uc.serviceRepo.GetByID(in.ServiceID)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, domain.ErrNotFound
		}
		price = service.Price
	}

	sale := &entity.ServiceSale{
		ID:            uuid.New().String(),
		ReservationID: in.ReservationID,
		ServiceID:     in.ServiceID,
		Price:         price,
		ScheduledDate: in.ScheduledDate,
		Status:        entity.ServiceSaleStatusPending,
		SaleDate:      time.Now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toServiceSaleResponse(sale), nil
}

// List lista todas las ventas de servicios.
func (uc *ServiceSaleUseCase) List(ctx context.Context) ([]dto.ServiceSaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceSaleResponse(s))
	}
	return items, nil
}

// ListByReservation lista las ventas de servicios de una reserva.
func (uc *ServiceSaleUseCase) ListByReservation(ctx context.Context, reservationID string) ([]dto.ServiceSaleResponse, error) {
	list, err := uc.saleRepo.ListByReservation(reservationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceSaleResponse(s))
	}
	return items, nil
}

func toServiceSaleResponse(s *entity.ServiceSale) *dto.ServiceSaleResponse {
	return &dto.ServiceSaleResponse{
		ID:            s.ID,
		ReservationID: s.ReservationID,
		ServiceID:     s.ServiceID,
		Price:         s.Price,
		ScheduledDate: s.ScheduledDate,
		CompletedDate: s.CompletedDate,
		Status:        s.Status,
		SaleDate:      s.SaleDate,
	}
}
