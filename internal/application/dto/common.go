package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo simple para operaciones sin payload de retorno.
type MessageResponse struct {
	Message string `json:"message"`
}
