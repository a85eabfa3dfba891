package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// TxRunner ejecuta el registro del movimiento y el ajuste de stock como una
// unidad transaccional.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		movementRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// UseCase registra movimientos de estoque. Cada movimiento ajusta el stock
// del producto en la misma transacción: entry suma, exit resta. El stock
// puede quedar negativo (una salida registrada tarde no se rechaza).
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.InventoryMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movementRepo repository.InventoryMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// Register registra el movimiento y aplica el ajuste de stock.
func (uc *UseCase) Register(ctx context.Context, in dto.CreateInventoryMovementRequest) (*dto.InventoryMovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.InventoryMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Reason:    in.Reason,
		Date:      time.Now(),
	}

	err := uc.txRunner.RunMovement(ctx, func(
		movementRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		delta := movement.Quantity
		if movement.Type == entity.MovementTypeExit {
			delta = -delta
		}
		return productRepo.AdjustStock(product.ID, delta)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List lista todos los movimientos.
func (uc *UseCase) List(ctx context.Context) ([]dto.InventoryMovementResponse, error) {
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByProduct lista los movimientos de un producto.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]dto.InventoryMovementResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.InventoryMovementResponse {
	return &dto.InventoryMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Reason:    m.Reason,
		Date:      m.Date,
	}
}

func toMovementResponses(list []*entity.InventoryMovement) []dto.InventoryMovementResponse {
	items := make([]dto.InventoryMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items
}
