package repository

import "github.com/vilamar/pousada-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El stock solo se toca vía AdjustStock, dentro de la transacción que
// registra la venta o el movimiento.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto antes de ajustar su stock.
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock suma delta (puede ser negativo) al stock actual.
	AdjustStock(id string, delta int) error
	Delete(id string) error
}
