package entity

import "github.com/shopspring/decimal"

// Product representa un producto del minibar/tienda de la pousada.
// CurrentStock solo se muta vía ventas y movimientos de estoque, nunca por
// el update directo; puede quedar negativo (comportamiento heredado, se
// registra tal cual en lugar de recortarlo).
type Product struct {
	ID           string
	Name         string
	Category     string
	Unit         string // 'un', 'L', 'kg', etc.
	SalePrice    decimal.Decimal
	CostPrice    decimal.NullDecimal
	CurrentStock int
	Supplier     string
}
