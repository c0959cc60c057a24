package dto

// Response envelope común para toda respuesta exitosa con cuerpo.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
// Errors solo aparece en fallos de validación (campo -> mensajes);
// Error solo en fallos internos (detalle o texto genérico según modo debug).
type ErrorResponse struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}
