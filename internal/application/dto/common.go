package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExistsResponse respuesta de las comprobaciones de existencia.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
