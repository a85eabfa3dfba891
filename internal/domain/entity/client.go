package entity

import "time"

// Client representa un huésped. Solo FullName es obligatorio; un cliente
// puede existir sin reservas.
type Client struct {
	ID        string
	FullName  string
	CPF       string
	RG        string
	BirthDate string // fecha libre, como la captura recepción
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
