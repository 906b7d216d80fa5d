package domain

import (
	"context"
	"errors"
)

// Clases de error del dominio (sin dependencias externas). Cada rechazo
// concreto envuelve una de estas clases con el mensaje que ve el usuario.
var (
	ErrValidation    = errors.New("entrada inválida")
	ErrReference     = errors.New("referencia inexistente")
	ErrConflict      = errors.New("recurso duplicado")
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrAuthorization = errors.New("no autorizado")
	ErrStorage       = errors.New("error de almacenamiento")
	ErrCanceled      = errors.New("operación cancelada")
)

// Error es un error de dominio con mensaje dirigido al usuario final.
// errors.Is(err, ErrConflict) y similares funcionan vía Unwrap.
type Error struct {
	Kind    error  // una de las clases de arriba
	Message string // texto que ve el usuario
	Cause   error  // error subyacente (solo storage), puede ser nil
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Validation rechazo por entrada fuera de rango o malformada.
func Validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

// Reference rechazo porque la clave foránea apunta a un registro inexistente.
func Reference(msg string) error { return &Error{Kind: ErrReference, Message: msg} }

// Conflict rechazo por clave primaria duplicada o restricción de borrado.
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// NotFound el registro objetivo de la operación no existe.
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Authorization el usuario no existe o su nivel es insuficiente.
func Authorization(msg string) error { return &Error{Kind: ErrAuthorization, Message: msg} }

// Storage falla de conectividad o de constraint no clasificada. Si el contexto
// fue cancelado o venció, se clasifica como ErrCanceled en lugar de ErrStorage.
func Storage(cause error, msg string) error {
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return &Error{Kind: ErrCanceled, Message: "Operación cancelada.", Cause: cause}
	}
	return &Error{Kind: ErrStorage, Message: msg, Cause: cause}
}

// Message devuelve el texto para el usuario de cualquier error del dominio.
// Para errores ajenos al dominio devuelve un mensaje genérico de almacenamiento.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	for _, kind := range []error{ErrValidation, ErrReference, ErrConflict, ErrNotFound, ErrAuthorization, ErrCanceled, ErrStorage} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrStorage.Error()
}
