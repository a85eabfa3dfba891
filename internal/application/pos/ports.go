package pos

import (
	"context"

	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// TxRunner ejecuta la venta de producto y su descuento de stock como una
// unidad transaccional.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.ProductSaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
