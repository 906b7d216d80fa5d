package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestion-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// isForeignKeyViolation verifica si un error es una violación de clave
// foránea (23503): inserción contra un padre inexistente o borrado de un
// padre con hijos.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503" // foreign_key_violation
}

// storageErr clasifica un error del driver como error de almacenamiento del
// dominio, anotando la operación que falló.
func storageErr(err error, op string) error {
	return domain.Storage(fmt.Errorf("%s: %w", op, err), "Error de almacenamiento.")
}
