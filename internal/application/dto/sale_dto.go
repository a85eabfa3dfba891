package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductSaleRequest entrada para registrar una venta de producto.
// Si UnitPrice viene en cero se usa el precio de venta vigente del producto;
// TotalPrice siempre lo calcula el servidor (unitPrice × quantity).
type CreateProductSaleRequest struct {
	ReservationID string          `json:"reservationId" validate:"required"`
	ProductID     string          `json:"productId" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

// ProductSaleResponse salida de una venta de producto.
type ProductSaleResponse struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservationId"`
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	SaleDate      time.Time       `json:"saleDate"`
}

// CreateServiceSaleRequest entrada para registrar una venta de servicio.
// Si Price viene en cero se copia el precio vigente del servicio.
type CreateServiceSaleRequest struct {
	ReservationID string          `json:"reservationId" validate:"required"`
	ServiceID     string          `json:"serviceId" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	ScheduledDate *time.Time      `json:"scheduledDate"`
}

// ServiceSaleResponse salida de una venta de servicio.
type ServiceSaleResponse struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservationId"`
	ServiceID     string          `json:"serviceId"`
	Price         decimal.Decimal `json:"price"`
	ScheduledDate *time.Time      `json:"scheduledDate"`
	CompletedDate *time.Time      `json:"completedDate"`
	Status        string          `json:"status"`
	SaleDate      time.Time       `json:"saleDate"`
}
