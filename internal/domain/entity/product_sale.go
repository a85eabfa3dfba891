package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSale registra la venta de un producto cargada a una reserva.
// TotalPrice = UnitPrice × Quantity se calcula al crear y no se rederiva.
// Crear la venta descuenta Quantity del stock del producto en la misma
// transacción; borrarla NO lo repone (el consumo ya ocurrió).
type ProductSale struct {
	ID            string
	ReservationID string
	ProductID     string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	SaleDate      time.Time
}
