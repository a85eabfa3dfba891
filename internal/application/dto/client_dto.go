package dto

import "time"

// Los tags JSON usan camelCase porque es el formato que ya consume el
// cliente web de la pousada.

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	FullName  string `json:"fullName" validate:"required,min=1,max=200"`
	CPF       string `json:"cpf"`
	RG        string `json:"rg"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// UpdateClientRequest entrada para actualizar un cliente (parcial).
type UpdateClientRequest struct {
	FullName  *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	CPF       *string `json:"cpf"`
	RG        *string `json:"rg"`
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	CPF       string    `json:"cpf"`
	RG        string    `json:"rg"`
	BirthDate string    `json:"birthDate"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
