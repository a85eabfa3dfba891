package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada para crear un servicio.
type CreateServiceRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	EstimatedTime string          `json:"estimatedTime"`
}

// UpdateServiceRequest entrada para actualizar un servicio (parcial).
type UpdateServiceRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	EstimatedTime *string          `json:"estimatedTime"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	EstimatedTime string          `json:"estimatedTime"`
}
