package dto

// ErrorResponse cuerpo de error HTTP. Message es el texto que el cliente
// muestra tal cual al usuario.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
