package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (code, name, address, phone, city)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, client.Code, client.Name, client.Address, client.Phone, client.City)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("El cliente ya existe.")
		}
		return storageErr(err, "insert client")
	}
	return nil
}

// GetByCode obtiene un cliente por código; (nil, nil) si no existe.
func (r *ClientRepo) GetByCode(ctx context.Context, code string) (*entity.Client, error) {
	query := `
		SELECT code, name, address, phone, city
		FROM clients WHERE code = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Address, &c.Phone, &c.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get client")
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, address = $3, phone = $4, city = $5
		WHERE code = $1`
	_, err := r.q.Exec(ctx, query, client.Code, client.Name, client.Address, client.Phone, client.City)
	if err != nil {
		return storageErr(err, "update client")
	}
	return nil
}

// Delete elimina un cliente. La FK de ventas es RESTRICT: si todavía tiene
// ventas asociadas el borrado se rechaza como conflicto.
func (r *ClientRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("No se puede eliminar: el cliente tiene ventas asociadas.")
		}
		return storageErr(err, "delete client")
	}
	return nil
}

// List lista los clientes ordenados por código.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT code, name, address, phone, city
		FROM clients ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list clients")
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.Code, &c.Name, &c.Address, &c.Phone, &c.City); err != nil {
			return nil, storageErr(err, "scan client")
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list clients")
	}
	return list, nil
}

// Exists verifica si el código de cliente ya está registrado.
func (r *ClientRepo) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, storageErr(err, "client exists")
	}
	return exists, nil
}
