package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrDuplicate               = errors.New("recurso duplicado")
	ErrRoomUnavailable         = errors.New("el cuarto ya está reservado para ese período")
	ErrInvalidReservationState = errors.New("la reserva no está en el estado requerido")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrUnavailable             = errors.New("almacenamiento no disponible")
)
