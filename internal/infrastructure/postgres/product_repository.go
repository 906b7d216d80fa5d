package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, description, tax_rate, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		product.Code, product.Name, product.Description, product.TaxRate, product.UnitPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("El producto ya existe.")
		}
		return storageErr(err, "insert product")
	}
	return nil
}

// GetByCode obtiene un producto por código; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `
		SELECT code, name, description, tax_rate, unit_price
		FROM products WHERE code = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, code).Scan(&p.Code, &p.Name, &p.Description, &p.TaxRate, &p.UnitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get product")
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, tax_rate = $4, unit_price = $5
		WHERE code = $1`
	_, err := r.q.Exec(ctx, query,
		product.Code, product.Name, product.Description, product.TaxRate, product.UnitPrice,
	)
	if err != nil {
		return storageErr(err, "update product")
	}
	return nil
}

// Delete elimina un producto. Las FKs de proveedores, inventario y ventas son
// RESTRICT: con registros dependientes el borrado se rechaza como conflicto.
func (r *ProductRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("No se puede eliminar: el producto tiene registros asociados.")
		}
		return storageErr(err, "delete product")
	}
	return nil
}

// List lista los productos ordenados por código.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT code, name, description, tax_rate, unit_price
		FROM products ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list products")
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.Description, &p.TaxRate, &p.UnitPrice); err != nil {
			return nil, storageErr(err, "scan product")
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list products")
	}
	return list, nil
}

// Exists verifica si el código de producto ya está registrado.
func (r *ProductRepo) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, storageErr(err, "product exists")
	}
	return exists, nil
}
