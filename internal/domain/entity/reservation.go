package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva. Completed y Cancelled son terminales.
const (
	ReservationStatusActive    = "active"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)

// Reservation es la raíz de agregación de una estadía: referencia un Client
// y un Room, y las ventas de productos/servicios la referencian a ella.
//
// Invariantes:
//   - CheckInDate < ExpectedCheckOutDate (estricto).
//   - Para un mismo Room, las reservas activas tienen intervalos
//     [CheckInDate, ExpectedCheckOutDate) disjuntos dos a dos.
type Reservation struct {
	ID                   string
	ClientID             string
	RoomID               string
	CheckInDate          time.Time
	ExpectedCheckOutDate time.Time
	ActualCheckOutDate   *time.Time // nil hasta el checkout
	NumberOfGuests       int
	PaymentMethod        string // vacío hasta el checkout
	Status               string
	TotalAmount          decimal.Decimal // 0 hasta el checkout
	Notes                string
	CreatedAt            time.Time
}

// OverlapsWindow indica si la ventana [start, end) intersecta la ventana de
// ocupación de la reserva. Test canónico de intervalos semiabiertos.
func (r *Reservation) OverlapsWindow(start, end time.Time) bool {
	return start.Before(r.ExpectedCheckOutDate) && end.After(r.CheckInDate)
}

// IsActive indica si la reserva sigue ocupando (o por ocupar) su cuarto.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusActive
}
