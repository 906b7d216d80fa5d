package dto

import "github.com/jhoicas/gestion-api/internal/domain"

// MutationResponse es el contrato (éxito, mensaje, payload) que consume la
// capa de presentación. Nunca transporta un error de almacenamiento crudo.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK arma la respuesta de una mutación exitosa.
func OK(msg string, data any) MutationResponse {
	return MutationResponse{Success: true, Message: msg, Data: data}
}

// Failure arma la respuesta de una mutación rechazada con el mensaje del
// error de dominio.
func Failure(err error) MutationResponse {
	return MutationResponse{Success: false, Message: domain.Message(err)}
}

// ErrorResponse cuerpo de error HTTP para fallas de autenticación/parseo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
