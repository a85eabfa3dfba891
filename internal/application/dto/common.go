package dto

// FieldError detalle de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// MessageResponse respuesta simple de confirmación (borrados, etc.).
type MessageResponse struct {
	Message string `json:"message"`
}
