package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	query := `
		INSERT INTO providers (id, product_code, description, cost, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		provider.ID, provider.ProductCode, provider.Description, provider.Cost,
		provider.Address, provider.Phone,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.Conflict("El proveedor ya existe.")
		case isForeignKeyViolation(err):
			return domain.Reference("El producto asociado no existe.")
		}
		return storageErr(err, "insert provider")
	}
	return nil
}

// GetByID obtiene un proveedor por id; (nil, nil) si no existe.
func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	query := `
		SELECT id, product_code, description, cost, address, phone
		FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProductCode, &p.Description, &p.Cost, &p.Address, &p.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get provider")
	}
	return &p, nil
}

// Update actualiza un proveedor existente.
func (r *ProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	query := `
		UPDATE providers SET product_code = $2, description = $3, cost = $4, address = $5, phone = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		provider.ID, provider.ProductCode, provider.Description, provider.Cost,
		provider.Address, provider.Phone,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Reference("El producto asociado no existe.")
		}
		return storageErr(err, "update provider")
	}
	return nil
}

// Delete elimina un proveedor por id.
func (r *ProviderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return storageErr(err, "delete provider")
	}
	return nil
}

// List lista los proveedores ordenados por id.
func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	query := `
		SELECT id, product_code, description, cost, address, phone
		FROM providers ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list providers")
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.Description, &p.Cost, &p.Address, &p.Phone); err != nil {
			return nil, storageErr(err, "scan provider")
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list providers")
	}
	return list, nil
}

// Exists verifica si el id de proveedor ya está registrado.
func (r *ProviderRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM providers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, storageErr(err, "provider exists")
	}
	return exists, nil
}
