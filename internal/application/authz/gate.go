// Package authz implementa la puerta de autorización: el único punto donde se
// decide si un usuario puede ejecutar una operación. Los casos de uso la
// consultan antes de tocar el almacén y cortocircuitan con su mensaje.
package authz

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain"
)

// Mensajes de rechazo de la puerta (los casos de uso los devuelven tal cual).
const (
	MsgNoUser            = "Usuario no proporcionado."
	MsgUserNotFound      = "Usuario no encontrado."
	MsgInsufficientLevel = "Acceso denegado: nivel insuficiente."
	MsgUnknownAction     = "Acceso denegado: acción no permitida."
)

// LevelSource consulta el nivel de un usuario. Lo implementa el repositorio
// de usuarios; la puerta no conoce nada más del credential store.
type LevelSource interface {
	GetLevel(ctx context.Context, username string) (int, bool, error)
}

// Gate decide con la tabla de permisos y el nivel del usuario.
type Gate struct {
	levels LevelSource
}

// NewGate construye la puerta con su fuente de niveles (inyección por
// constructor: los repositorios dependen de la puerta, nunca al revés).
func NewGate(levels LevelSource) *Gate {
	return &Gate{levels: levels}
}

// AuthorizeLevel permite la operación si el nivel del usuario es
// numéricamente menor o igual a minLevel (1 = administrador).
func (g *Gate) AuthorizeLevel(ctx context.Context, username string, minLevel int) error {
	if username == "" {
		return domain.Authorization(MsgNoUser)
	}
	level, found, err := g.levels.GetLevel(ctx, username)
	if err != nil {
		return err
	}
	if !found {
		return domain.Authorization(MsgUserNotFound)
	}
	if level > minLevel {
		return domain.Authorization(MsgInsufficientLevel)
	}
	return nil
}

// Authorize resuelve el nivel mínimo en la tabla de permisos y delega en
// AuthorizeLevel. Combinaciones desconocidas se niegan.
func (g *Gate) Authorize(ctx context.Context, username, module string, action Action) error {
	minLevel, ok := MinLevel(module, action)
	if !ok {
		return domain.Authorization(MsgUnknownAction)
	}
	return g.AuthorizeLevel(ctx, username, minLevel)
}
