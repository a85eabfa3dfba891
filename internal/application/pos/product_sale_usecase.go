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

// ProductSaleUseCase registra ventas de productos cargadas a una reserva.
// Crear la venta y descontar el stock ocurren en la misma transacción; el
// stock puede quedar negativo (se registra el consumo real, el faltante se
// corrige después con un movimiento de entrada).
type ProductSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.ProductSaleRepository
	resRepo  repository.ReservationRepository
}

// NewProductSaleUseCase construye el caso de uso.
func NewProductSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.ProductSaleRepository,
	resRepo repository.ReservationRepository,
) *ProductSaleUseCase {
	return &ProductSaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		resRepo:  resRepo,
	}
}

// Create registra la venta. Si unitPrice no viene (cero), se usa el precio
// de venta vigente del producto; totalPrice siempre lo calcula el servidor.
func (uc *ProductSaleUseCase) Create(ctx context.Context, in dto.CreateProductSaleRequest) (*dto.ProductSaleResponse, error) {
	if in.ReservationID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	res, err := uc.resRepo.GetByID(in.ReservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	sale := &entity.ProductSale{
		ID:            uuid.New().String(),
		ReservationID: in.ReservationID,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		SaleDate:      time.Now(),
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.ProductSaleRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if sale.UnitPrice.IsZero() {
			sale.UnitPrice = product.SalePrice
		}
		sale.TotalPrice = sale.UnitPrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return productRepo.AdjustStock(product.ID, -sale.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toProductSaleResponse(sale), nil
}

// GetByID obtiene una venta de producto por ID.
func (uc *ProductSaleUseCase) GetByID(ctx context.Context, id string) (*dto.ProductSaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toProductSaleResponse(sale), nil
}

// List lista todas las ventas de productos.
func (uc *ProductSaleUseCase) List(ctx context.Context) ([]dto.ProductSaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toProductSaleResponse(s))
	}
	return items, nil
}

// ListByReservation lista las ventas de productos de una reserva.
func (uc *ProductSaleUseCase) ListByReservation(ctx context.Context, reservationID string) ([]dto.ProductSaleResponse, error) {
	list, err := uc.saleRepo.ListByReservation(reservationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toProductSaleResponse(s))
	}
	return items, nil
}

// Delete borra la venta. El stock NO se repone: la venta se borra del
// registro pero el consumo del producto ya ocurrió.
func (uc *ProductSaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(id)
}

func toProductSaleResponse(s *entity.ProductSale) *dto.ProductSaleResponse {
	return &dto.ProductSaleResponse{
		ID:            s.ID,
		ReservationID: s.ReservationID,
		ProductID:     s.ProductID,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalPrice:    s.TotalPrice,
		SaleDate:      s.SaleDate,
	}
}
