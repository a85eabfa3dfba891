package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryMovementRequest entrada para registrar un movimiento de
// estoque. Type es "entry" o "exit"; Quantity siempre positiva.
type CreateInventoryMovementRequest struct {
	ProductID string              `json:"productId" validate:"required"`
	Type      string              `json:"type" validate:"required,oneof=entry exit"`
	Quantity  int                 `json:"quantity" validate:"required,min=1"`
	UnitCost  decimal.NullDecimal `json:"unitCost"`
	Reason    string              `json:"reason"`
}

// InventoryMovementResponse salida de un movimiento de estoque.
type InventoryMovementResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"productId"`
	Type      string              `json:"type"`
	Quantity  int                 `json:"quantity"`
	UnitCost  decimal.NullDecimal `json:"unitCost"`
	Reason    string              `json:"reason"`
	Date      time.Time           `json:"date"`
}
