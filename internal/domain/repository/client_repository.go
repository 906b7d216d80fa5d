package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByCode(ctx context.Context, code string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]*entity.Client, error) // ordenado por código
	Exists(ctx context.Context, code string) (bool, error)
}
