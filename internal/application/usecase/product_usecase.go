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

// ProductUseCase casos de uso CRUD de productos. El stock se declara al
// crear y después solo se mueve vía ventas y movimientos de estoque.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto con su stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		SalePrice:    in.SalePrice,
		CostPrice:    in.CostPrice,
		CurrentStock: in.CurrentStock,
		Supplier:     in.Supplier,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica un update parcial. El stock no se toca por acá.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.SalePrice != nil {
		if in.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete borra el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		SalePrice:    p.SalePrice,
		CostPrice:    p.CostPrice,
		CurrentStock: p.CurrentStock,
		Supplier:     p.Supplier,
	}
}
