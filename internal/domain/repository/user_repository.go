package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*entity.User, error) // ordenado por username
	// GetLevel devuelve el nivel del usuario y si existe. Lo consume la
	// puerta de autorización de forma exclusiva.
	GetLevel(ctx context.Context, username string) (int, bool, error)
}
