package repository

import "github.com/vilamar/pousada-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para
// InventoryMovement (DIP). El ajuste de stock correspondiente se hace con
// ProductRepository.AdjustStock en la misma transacción.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	List() ([]*entity.InventoryMovement, error)
	ListByProduct(productID string) ([]*entity.InventoryMovement, error)
}
