package dto

import "time"

// CreateUserRequest entrada para crear un funcionario. Permissions debe
// venir del conjunto de capacidades conocidas.
type CreateUserRequest struct {
	FullName    string   `json:"fullName" validate:"required"`
	Role        string   `json:"role" validate:"required,oneof=manager receptionist staff"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Username    string   `json:"username" validate:"required"`
	Password    string   `json:"password" validate:"required,min=6"`
	Permissions []string `json:"permissions"`
}

// UpdateUserRequest entrada para actualizar un funcionario (parcial).
// Password, si viene, se vuelve a hashear.
type UpdateUserRequest struct {
	FullName    *string   `json:"fullName"`
	Role        *string   `json:"role" validate:"omitempty,oneof=manager receptionist staff"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Username    *string   `json:"username"`
	Password    *string   `json:"password" validate:"omitempty,min=6"`
	Permissions *[]string `json:"permissions"`
}

// UserResponse salida de un funcionario. Nunca incluye el hash de password.
type UserResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Role        string    `json:"role"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
