package dto

import "github.com/shopspring/decimal"

// CreateRoomRequest entrada para crear un cuarto.
type CreateRoomRequest struct {
	Number       string          `json:"number" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	Capacity     int             `json:"capacity" validate:"required,min=1"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Status       string          `json:"status"`
	Observations string          `json:"observations"`
}

// UpdateRoomRequest entrada para actualizar un cuarto (parcial). Status se
// puede fijar a mano (mantenimiento); en operación normal lo mutan las
// reservas.
type UpdateRoomRequest struct {
	Number       *string          `json:"number"`
	Type         *string          `json:"type"`
	Capacity     *int             `json:"capacity" validate:"omitempty,min=1"`
	DailyRate    *decimal.Decimal `json:"dailyRate"`
	Status       *string          `json:"status"`
	Observations *string          `json:"observations"`
}

// RoomResponse salida de un cuarto.
type RoomResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	Capacity     int             `json:"capacity"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Status       string          `json:"status"`
	Observations string          `json:"observations"`
}
