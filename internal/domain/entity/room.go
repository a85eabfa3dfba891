package entity

import "github.com/shopspring/decimal"

// Tipos de cuarto.
const (
	RoomTypeSingle = "solteiro"
	RoomTypeDouble = "casal"
	RoomTypeFamily = "familia"
	RoomTypeSuite  = "suite"
)

// Estados de un cuarto. Occupied/Available los muta el ciclo de reservas;
// Maintenance lo fija el personal a mano.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Room representa un cuarto de la pousada. Status es estado derivado:
// en operación normal lo mutan check-in/check-out, no el update directo.
type Room struct {
	ID           string
	Number       string // único
	Type         string
	Capacity     int
	DailyRate    decimal.Decimal
	Status       string
	Observations string
}

// ValidRoomType indica si el tipo de cuarto es uno de los conocidos.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeFamily, RoomTypeSuite:
		return true
	}
	return false
}

// ValidRoomStatus indica si el estado es uno de los conocidos.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
