package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx). La fila de inventario no guarda el nombre del
// producto: las lecturas lo traen con un join al catálogo.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el registro de inventario de un producto.
func (r *InventoryRepo) Create(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (product_code, quantity, min_stock, tax_rate, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		record.ProductCode, record.Quantity, record.MinStock, record.TaxRate, record.UnitPrice,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.Conflict("Ya existe un registro de inventario para ese producto.")
		case isForeignKeyViolation(err):
			return domain.Reference("El producto asociado no existe.")
		}
		return storageErr(err, "insert inventory")
	}
	return nil
}

// GetByProduct obtiene el inventario de un producto con su nombre de catálogo;
// (nil, nil) si no existe.
func (r *InventoryRepo) GetByProduct(ctx context.Context, productCode string) (*entity.InventoryRecord, error) {
	query := `
		SELECT i.product_code, p.name, i.quantity, i.min_stock, i.tax_rate, i.unit_price
		FROM inventory i
		JOIN products p ON p.code = i.product_code
		WHERE i.product_code = $1`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productCode).Scan(
		&rec.ProductCode, &rec.ProductName, &rec.Quantity, &rec.MinStock, &rec.TaxRate, &rec.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get inventory")
	}
	return &rec, nil
}

// Update reescribe el registro de inventario de un producto.
func (r *InventoryRepo) Update(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		UPDATE inventory SET quantity = $2, min_stock = $3, tax_rate = $4, unit_price = $5
		WHERE product_code = $1`
	_, err := r.q.Exec(ctx, query,
		record.ProductCode, record.Quantity, record.MinStock, record.TaxRate, record.UnitPrice,
	)
	if err != nil {
		return storageErr(err, "update inventory")
	}
	return nil
}

// Delete elimina el registro de inventario de un producto.
func (r *InventoryRepo) Delete(ctx context.Context, productCode string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE product_code = $1`, productCode)
	if err != nil {
		return storageErr(err, "delete inventory")
	}
	return nil
}

// List lista el inventario completo ordenado por código de producto.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT i.product_code, p.name, i.quantity, i.min_stock, i.tax_rate, i.unit_price
		FROM inventory i
		JOIN products p ON p.code = i.product_code
		ORDER BY i.product_code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list inventory")
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ProductCode, &rec.ProductName, &rec.Quantity, &rec.MinStock, &rec.TaxRate, &rec.UnitPrice); err != nil {
			return nil, storageErr(err, "scan inventory")
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list inventory")
	}
	return list, nil
}

// Exists verifica si el producto ya tiene registro de inventario.
func (r *InventoryRepo) Exists(ctx context.Context, productCode string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM inventory WHERE product_code = $1)`, productCode).Scan(&exists)
	if err != nil {
		return false, storageErr(err, "inventory exists")
	}
	return exists, nil
}
