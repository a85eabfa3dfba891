package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta de servicio.
const (
	ServiceSaleStatusPending   = "pending"
	ServiceSaleStatusCompleted = "completed"
	ServiceSaleStatusCancelled = "cancelled"
)

// ServiceSale registra un servicio cargado a una reserva. Price se copia al
// momento de la venta y es independiente del precio vigente del servicio.
// En el checkout se facturan todas las ventas de servicio de la reserva,
// sin importar su estado.
type ServiceSale struct {
	ID            string
	ReservationID string
	ServiceID     string
	Price         decimal.Decimal
	ScheduledDate *time.Time
	CompletedDate *time.Time
	Status        string
	SaleDate      time.Time
}
