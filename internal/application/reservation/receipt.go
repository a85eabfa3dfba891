package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// ReceiptUseCase arma el comprobante PDF de una estadía: resuelve los
// nombres de cliente, cuarto, productos y servicios, recalcula el desglose
// de cargos y delega el render al generador.
type ReceiptUseCase struct {
	generator       ReceiptGenerator
	resRepo         repository.ReservationRepository
	roomRepo        repository.RoomRepository
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	serviceRepo     repository.ServiceRepository
	productSaleRepo repository.ProductSaleRepository
	serviceSaleRepo repository.ServiceSaleRepository
	pousadaName     string
}

// NewReceiptUseCase construye el caso de uso del comprobante.
func NewReceiptUseCase(
	generator ReceiptGenerator,
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	productSaleRepo repository.ProductSaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
	pousadaName string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		generator:       generator,
		resRepo:         resRepo,
		roomRepo:        roomRepo,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
		productSaleRepo: productSaleRepo,
		serviceSaleRepo: serviceSaleRepo,
		pousadaName:     pousadaName,
	}
}

// Generate produce el PDF del comprobante de la reserva. Para una reserva
// completada usa la fecha real de checkout como corte de la cuenta; para
// una activa, el instante actual (cuenta parcial).
func (uc *ReceiptUseCase) Generate(ctx context.Context, reservationID string) ([]byte, error) {
	res, err := uc.resRepo.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	room, err := uc.roomRepo.GetByID(res.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(res.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	productSales, err := uc.productSaleRepo.ListByReservation(reservationID)
	if err != nil {
		return nil, err
	}
	serviceSales, err := uc.serviceSaleRepo.ListByReservation(reservationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asOf := now
	if res.ActualCheckOutDate != nil {
		asOf = *res.ActualCheckOutDate
	}

	// El desglose se recalcula sin descuento; para una reserva completada
	// el total que manda es el cobrado en el checkout, y la diferencia con
	// el subtotal recalculado se muestra como descuento.
	charges, err := ComputeStayCharges(res, room, productSales, serviceSales, asOf, decimal.Zero)
	if err != nil {
		return nil, err
	}
	if res.Status == entity.ReservationStatusCompleted {
		if diff := charges.Subtotal.Sub(res.TotalAmount); diff.IsPositive() {
			charges.DiscountAmount = diff.Round(2)
		}
		charges.TotalAmount = res.TotalAmount
	}

	productLines := make([]ReceiptLine, 0, len(productSales))
	for _, s := range productSales {
		name := s.ProductID
		if p, err := uc.productRepo.GetByID(s.ProductID); err == nil && p != nil {
			name = p.Name
		}
		productLines = append(productLines, ReceiptLine{
			Description: fmt.Sprintf("%s (%d x %s)", name, s.Quantity, s.UnitPrice.StringFixed(2)),
			Quantity:    s.Quantity,
			Amount:      s.TotalPrice,
		})
	}

	serviceLines := make([]ReceiptLine, 0, len(serviceSales))
	for _, s := range serviceSales {
		name := s.ServiceID
		if sv, err := uc.serviceRepo.GetByID(s.ServiceID); err == nil && sv != nil {
			name = sv.Name
		}
		serviceLines = append(serviceLines, ReceiptLine{
			Description: name,
			Quantity:    1,
			Amount:      s.Price,
		})
	}

	data := &ReceiptData{
		Reservation:  res,
		Client:       client,
		Room:         room,
		ProductLines: productLines,
		ServiceLines: serviceLines,
		Charges:      *charges,
		GeneratedAt:  now,
		PousadaName:  uc.pousadaName,
	}
	return uc.generator.GenerateReceiptPDF(ctx, data)
}
