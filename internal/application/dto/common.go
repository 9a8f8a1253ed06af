package dto

// FieldError detalle de un campo rechazado.
type FieldError struct {
	Msg string `json:"msg"`
}

// ErrorResponse cuerpo de error HTTP: mensaje general y, cuando aplica,
// el detalle por campo. Errors se omite por completo si está vacío.
type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  map[string]FieldError `json:"errors,omitempty"`
}
