package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y devuelve el id asignado por la secuencia.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (date, client_code, product_code, product_name, unit_price, quantity, tax_amount, subtotal, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		sale.Date, sale.ClientCode, sale.ProductCode, sale.ProductName,
		sale.UnitPrice, sale.Quantity, sale.TaxAmount, sale.Subtotal, sale.Total,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.Reference("El cliente o producto asociado no existe.")
		}
		return 0, storageErr(err, "insert sale")
	}
	return id, nil
}

// GetByID obtiene una venta por id; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `
		SELECT id, date, client_code, product_code, product_name, unit_price, quantity, tax_amount, subtotal, total
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Date, &s.ClientCode, &s.ProductCode, &s.ProductName,
		&s.UnitPrice, &s.Quantity, &s.TaxAmount, &s.Subtotal, &s.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get sale")
	}
	return &s, nil
}

// Update reescribe una venta existente.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET date = $2, client_code = $3, product_code = $4, product_name = $5,
			unit_price = $6, quantity = $7, tax_amount = $8, subtotal = $9, total = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Date, sale.ClientCode, sale.ProductCode, sale.ProductName,
		sale.UnitPrice, sale.Quantity, sale.TaxAmount, sale.Subtotal, sale.Total,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Reference("El cliente o producto asociado no existe.")
		}
		return storageErr(err, "update sale")
	}
	return nil
}

// Delete elimina una venta por id.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return storageErr(err, "delete sale")
	}
	return nil
}

// List lista las ventas ordenadas por id.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, date, client_code, product_code, product_name, unit_price, quantity, tax_amount, subtotal, total
		FROM sales ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list sales")
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.ClientCode, &s.ProductCode, &s.ProductName,
			&s.UnitPrice, &s.Quantity, &s.TaxAmount, &s.Subtotal, &s.Total); err != nil {
			return nil, storageErr(err, "scan sale")
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list sales")
	}
	return list, nil
}

// Exists verifica si la venta existe.
func (r *SaleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, storageErr(err, "sale exists")
	}
	return exists, nil
}
