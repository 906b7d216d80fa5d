package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback. Los errores de dominio del callback pasan intactos.
func (r *TxRunner) Run(ctx context.Context, fn func(repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storageErr(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.Repos{
		Users:     NewUserRepository(tx),
		Clients:   NewClientRepository(tx),
		Products:  NewProductRepository(tx),
		Providers: NewProviderRepository(tx),
		Inventory: NewInventoryRepository(tx),
		Sales:     NewSaleRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storageErr(err, "commit transaction")
	}
	return nil
}
