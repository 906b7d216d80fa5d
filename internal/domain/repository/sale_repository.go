package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// Create persiste la venta y devuelve el id asignado por la secuencia.
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Sale, error) // ordenado por id
	Exists(ctx context.Context, id int64) (bool, error)
}
