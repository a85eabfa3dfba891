package repository

import "github.com/vilamar/pousada-api/internal/domain/entity"

// ReservationRepository define el puerto de persistencia para Reservation (DIP).
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	// GetForUpdate bloquea la fila de la reserva para las transiciones de
	// estado (checkout/cancelación).
	GetForUpdate(id string) (*entity.Reservation, error)
	List() ([]*entity.Reservation, error)
	ListActive() ([]*entity.Reservation, error)
	// ListActiveByRoom devuelve las reservas activas del cuarto; es la base
	// de la verificación de solapamiento.
	ListActiveByRoom(roomID string) ([]*entity.Reservation, error)
	Update(reservation *entity.Reservation) error
}
