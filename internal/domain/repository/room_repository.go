package repository

import "github.com/vilamar/pousada-api/internal/domain/entity"

// RoomRepository define el puerto de persistencia para Room (DIP).
type RoomRepository interface {
	Create(room *entity.Room) error
	GetByID(id string) (*entity.Room, error)
	// GetForUpdate bloquea la fila del cuarto (SELECT FOR UPDATE). Dentro de
	// una transacción serializa la verificación de solapamiento contra
	// reservas concurrentes del mismo cuarto.
	GetForUpdate(id string) (*entity.Room, error)
	List() ([]*entity.Room, error)
	ListAvailable() ([]*entity.Room, error)
	Update(room *entity.Room) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
