package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, salt, level)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, user.Username, user.PasswordHash, user.Salt, user.Level)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("El usuario ya existe.")
		}
		return storageErr(err, "insert user")
	}
	return nil
}

// GetByUsername obtiene un usuario por nombre; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT username, password_hash, salt, level
		FROM users WHERE username = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(&u.Username, &u.PasswordHash, &u.Salt, &u.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(err, "get user")
	}
	return &u, nil
}

// Update actualiza clave, salt y nivel de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET password_hash = $2, salt = $3, level = $4
		WHERE username = $1`
	_, err := r.q.Exec(ctx, query, user.Username, user.PasswordHash, user.Salt, user.Level)
	if err != nil {
		return storageErr(err, "update user")
	}
	return nil
}

// Delete elimina un usuario por nombre.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return storageErr(err, "delete user")
	}
	return nil
}

// List lista los usuarios ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT username, password_hash, salt, level
		FROM users ORDER BY username`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr(err, "list users")
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.Username, &u.PasswordHash, &u.Salt, &u.Level); err != nil {
			return nil, storageErr(err, "scan user")
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list users")
	}
	return list, nil
}

// GetLevel devuelve el nivel del usuario y si existe. Es la única consulta que
// hace la puerta de autorización, así que se mantiene mínima.
func (r *UserRepo) GetLevel(ctx context.Context, username string) (int, bool, error) {
	var level int
	err := r.q.QueryRow(ctx, `SELECT level FROM users WHERE username = $1`, username).Scan(&level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, storageErr(err, "get user level")
	}
	return level, true, nil
}
