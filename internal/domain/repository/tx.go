package repository

import "context"

// Repos agrupa los repositorios de escritura atados a una misma transacción.
type Repos struct {
	Users     UserRepository
	Clients   ClientRepository
	Products  ProductRepository
	Providers ProviderRepository
	Inventory InventoryRepository
	Sales     SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción: la secuencia completa de
// validar + mutar de cada operación corre atómica (evita carreras entre el
// chequeo de existencia y la escritura).
type TxRunner interface {
	Run(ctx context.Context, fn func(Repos) error) error
}
