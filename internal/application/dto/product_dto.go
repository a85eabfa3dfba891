package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El stock inicial se
// declara acá; después solo se mueve vía ventas y movimientos.
type CreateProductRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=200"`
	Category     string              `json:"category" validate:"required"`
	Unit         string              `json:"unit" validate:"required"`
	SalePrice    decimal.Decimal     `json:"salePrice"`
	CostPrice    decimal.NullDecimal `json:"costPrice"`
	CurrentStock int                 `json:"currentStock"`
	Supplier     string              `json:"supplier"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock; se
// maneja vía movimientos).
type UpdateProductRequest struct {
	Name      *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Category  *string              `json:"category"`
	Unit      *string              `json:"unit"`
	SalePrice *decimal.Decimal     `json:"salePrice"`
	CostPrice *decimal.NullDecimal `json:"costPrice"`
	Supplier  *string              `json:"supplier"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Unit         string              `json:"unit"`
	SalePrice    decimal.Decimal     `json:"salePrice"`
	CostPrice    decimal.NullDecimal `json:"costPrice"`
	CurrentStock int                 `json:"currentStock"`
	Supplier     string              `json:"supplier"`
}
