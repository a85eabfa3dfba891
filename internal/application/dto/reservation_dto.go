package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReservationRequest entrada para crear una reserva (check-in).
type CreateReservationRequest struct {
	ClientID             string    `json:"clientId" validate:"required"`
	RoomID               string    `json:"roomId" validate:"required"`
	CheckInDate          time.Time `json:"checkInDate" validate:"required"`
	ExpectedCheckOutDate time.Time `json:"expectedCheckOutDate" validate:"required"`
	NumberOfGuests       int       `json:"numberOfGuests" validate:"required,min=1"`
	PaymentMethod        string    `json:"paymentMethod"`
	Notes                string    `json:"notes"`
}

// UpdateReservationRequest entrada para el update parcial (PUT genérico que
// usa el cliente web, incluye los campos de checkout).
type UpdateReservationRequest struct {
	ClientID             *string          `json:"clientId"`
	RoomID               *string          `json:"roomId"`
	CheckInDate          *time.Time       `json:"checkInDate"`
	ExpectedCheckOutDate *time.Time       `json:"expectedCheckOutDate"`
	ActualCheckOutDate   *time.Time       `json:"actualCheckOutDate"`
	NumberOfGuests       *int             `json:"numberOfGuests" validate:"omitempty,min=1"`
	PaymentMethod        *string          `json:"paymentMethod"`
	Status               *string          `json:"status"`
	TotalAmount          *decimal.Decimal `json:"totalAmount"`
	Notes                *string          `json:"notes"`
}

// CheckoutRequest entrada para finalizar la estadía. El total se recalcula
// en el servidor a partir del descuento; no se acepta un total del cliente.
type CheckoutRequest struct {
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"clientId"`
	RoomID               string          `json:"roomId"`
	CheckInDate          time.Time       `json:"checkInDate"`
	ExpectedCheckOutDate time.Time       `json:"expectedCheckOutDate"`
	ActualCheckOutDate   *time.Time      `json:"actualCheckOutDate"`
	NumberOfGuests       int             `json:"numberOfGuests"`
	PaymentMethod        string          `json:"paymentMethod"`
	Status               string          `json:"status"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// StayChargesResponse desglose de cargos de la estadía. Es dato de
// presentación: no se persiste aparte, el gran total queda en la reserva al
// hacer checkout.
type StayChargesResponse struct {
	Nights             int             `json:"nights"`
	DailyRate          decimal.Decimal `json:"dailyRate"`
	AccommodationTotal decimal.Decimal `json:"accommodationTotal"`
	ProductsTotal      decimal.Decimal `json:"productsTotal"`
	ServicesTotal      decimal.Decimal `json:"servicesTotal"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountPercent    decimal.Decimal `json:"discountPercent"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
}

// CheckoutResponse reserva finalizada más el desglose cobrado.
type CheckoutResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Charges     StayChargesResponse `json:"charges"`
}
