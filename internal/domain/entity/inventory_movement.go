package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de estoque.
const (
	MovementTypeEntry = "entry"
	MovementTypeExit  = "exit"
)

// InventoryMovement es un evento discreto que ajusta el stock de un
// producto: +Quantity para entry, -Quantity para exit. El ajuste se aplica
// en la misma transacción que guarda el movimiento.
type InventoryMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int // siempre positivo; el signo lo da Type
	UnitCost  decimal.NullDecimal
	Reason    string
	Date      time.Time
}
