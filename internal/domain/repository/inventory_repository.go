package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryRecord.
// Las lecturas completan ProductName con un join al catálogo.
type InventoryRepository interface {
	Create(ctx context.Context, record *entity.InventoryRecord) error
	GetByProduct(ctx context.Context, productCode string) (*entity.InventoryRecord, error)
	Update(ctx context.Context, record *entity.InventoryRecord) error
	Delete(ctx context.Context, productCode string) error
	List(ctx context.Context) ([]*entity.InventoryRecord, error) // ordenado por producto
	Exists(ctx context.Context, productCode string) (bool, error)
}
