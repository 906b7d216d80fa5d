package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// memStore almacén en memoria que implementa todos los puertos de
// repositorio, con las mismas restricciones de borrado que el esquema real
// (FK RESTRICT). Los tests de casos de uso corren contra él.
type memStore struct {
	users     map[string]*entity.User
	clients   map[string]*entity.Client
	products  map[string]*entity.Product
	providers map[string]*entity.Provider
	inventory map[string]*entity.InventoryRecord
	sales     map[int64]*entity.Sale
	nextSale  int64
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*entity.User{},
		clients:   map[string]*entity.Client{},
		products:  map[string]*entity.Product{},
		providers: map[string]*entity.Provider{},
		inventory: map[string]*entity.InventoryRecord{},
		sales:     map[int64]*entity.Sale{},
	}
}

// newEnv arma el almacén con los tres niveles de usuario sembrados y la
// puerta apuntando al repositorio de usuarios.
func newEnv() (*memStore, *authz.Gate, repository.TxRunner) {
	s := newMemStore()
	for name, level := range map[string]int{"admin": 1, "supervisor": 2, "operador": 3} {
		s.users[name] = &entity.User{Username: name, Salt: "00", PasswordHash: "00", Level: level}
	}
	return s, authz.NewGate(&memUsers{s}), &memTx{s}
}

func (s *memStore) repos() repository.Repos {
	return repository.Repos{
		Users:     &memUsers{s},
		Clients:   &memClients{s},
		Products:  &memProducts{s},
		Providers: &memProviders{s},
		Inventory: &memInventory{s},
		Sales:     &memSales{s},
	}
}

// memTx ejecuta el callback directo sobre el almacén; los tests no necesitan
// transaccionalidad real, solo el mismo contrato.
type memTx struct{ s *memStore }

func (t *memTx) Run(_ context.Context, fn func(repository.Repos) error) error {
	return fn(t.s.repos())
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.s.users[u.Username]; ok {
		return domain.Conflict("El usuario ya existe.")
	}
	cp := *u
	r.s.users[u.Username] = &cp
	return nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.s.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.s.users[u.Username] = &cp
	return nil
}

func (r *memUsers) Delete(_ context.Context, username string) error {
	delete(r.s.users, username)
	return nil
}

func (r *memUsers) List(_ context.Context) ([]*entity.User, error) {
	names := make([]string, 0, len(r.s.users))
	for name := range r.s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*entity.User, 0, len(names))
	for _, name := range names {
		cp := *r.s.users[name]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUsers) GetLevel(_ context.Context, username string) (int, bool, error) {
	u, ok := r.s.users[username]
	if !ok {
		return 0, false, nil
	}
	return u.Level, true, nil
}

type memClients struct{ s *memStore }

func (r *memClients) Create(_ context.Context, c *entity.Client) error {
	if _, ok := r.s.clients[c.Code]; ok {
		return domain.Conflict("El cliente ya existe.")
	}
	cp := *c
	r.s.clients[c.Code] = &cp
	return nil
}

func (r *memClients) GetByCode(_ context.Context, code string) (*entity.Client, error) {
	c, ok := r.s.clients[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClients) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.s.clients[c.Code] = &cp
	return nil
}

func (r *memClients) Delete(_ context.Context, code string) error {
	for _, sale := range r.s.sales {
		if sale.ClientCode == code {
			return domain.Conflict("No se puede eliminar: el cliente tiene ventas asociadas.")
		}
	}
	delete(r.s.clients, code)
	return nil
}

func (r *memClients) List(_ context.Context) ([]*entity.Client, error) {
	codes := make([]string, 0, len(r.s.clients))
	for code := range r.s.clients {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]*entity.Client, 0, len(codes))
	for _, code := range codes {
		cp := *r.s.clients[code]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClients) Exists(_ context.Context, code string) (bool, error) {
	_, ok := r.s.clients[code]
	return ok, nil
}

type memProducts struct{ s *memStore }

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.products[p.Code]; ok {
		return domain.Conflict("El producto ya existe.")
	}
	cp := *p
	r.s.products[p.Code] = &cp
	return nil
}

func (r *memProducts) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	p, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.Code] = &cp
	return nil
}

func (r *memProducts) Delete(_ context.Context, code string) error {
	for _, p := range r.s.providers {
		if p.ProductCode == code {
			return domain.Conflict("No se puede eliminar: el producto tiene registros asociados.")
		}
	}
	if _, ok := r.s.inventory[code]; ok {
		return domain.Conflict("No se puede eliminar: el producto tiene registros asociados.")
	}
	for _, sale := range r.s.sales {
		if sale.ProductCode == code {
			return domain.Conflict("No se puede eliminar: el producto tiene registros asociados.")
		}
	}
	delete(r.s.products, code)
	return nil
}

func (r *memProducts) List(_ context.Context) ([]*entity.Product, error) {
	codes := make([]string, 0, len(r.s.products))
	for code := range r.s.products {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]*entity.Product, 0, len(codes))
	for _, code := range codes {
		cp := *r.s.products[code]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProducts) Exists(_ context.Context, code string) (bool, error) {
	_, ok := r.s.products[code]
	return ok, nil
}

type memProviders struct{ s *memStore }

func (r *memProviders) Create(_ context.Context, p *entity.Provider) error {
	if _, ok := r.s.providers[p.ID]; ok {
		return domain.Conflict("El proveedor ya existe.")
	}
	cp := *p
	r.s.providers[p.ID] = &cp
	return nil
}

func (r *memProviders) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	p, ok := r.s.providers[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProviders) Update(_ context.Context, p *entity.Provider) error {
	cp := *p
	r.s.providers[p.ID] = &cp
	return nil
}

func (r *memProviders) Delete(_ context.Context, id string) error {
	delete(r.s.providers, id)
	return nil
}

func (r *memProviders) List(_ context.Context) ([]*entity.Provider, error) {
	ids := make([]string, 0, len(r.s.providers))
	for id := range r.s.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Provider, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.providers[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProviders) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.providers[id]
	return ok, nil
}

type memInventory struct{ s *memStore }

func (r *memInventory) Create(_ context.Context, rec *entity.InventoryRecord) error {
	if _, ok := r.s.inventory[rec.ProductCode]; ok {
		return domain.Conflict("Ya existe un registro de inventario para ese producto.")
	}
	cp := *rec
	r.s.inventory[rec.ProductCode] = &cp
	return nil
}

func (r *memInventory) GetByProduct(_ context.Context, productCode string) (*entity.InventoryRecord, error) {
	rec, ok := r.s.inventory[productCode]
	if !ok {
		return nil, nil
	}
	cp := *rec
	if p, ok := r.s.products[productCode]; ok {
		cp.ProductName = p.Name // join con el catálogo, como la vista real
	}
	return &cp, nil
}

func (r *memInventory) Update(_ context.Context, rec *entity.InventoryRecord) error {
	cp := *rec
	r.s.inventory[rec.ProductCode] = &cp
	return nil
}

func (r *memInventory) Delete(_ context.Context, productCode string) error {
	delete(r.s.inventory, productCode)
	return nil
}

func (r *memInventory) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	codes := make([]string, 0, len(r.s.inventory))
	for code := range r.s.inventory {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]*entity.InventoryRecord, 0, len(codes))
	for _, code := range codes {
		rec, _ := r.GetByProduct(ctx, code)
		out = append(out, rec)
	}
	return out, nil
}

func (r *memInventory) Exists(_ context.Context, productCode string) (bool, error) {
	_, ok := r.s.inventory[productCode]
	return ok, nil
}

type memSales struct{ s *memStore }

func (r *memSales) Create(_ context.Context, sale *entity.Sale) (int64, error) {
	r.s.nextSale++
	cp := *sale
	cp.ID = r.s.nextSale
	r.s.sales[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memSales) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *memSales) Update(_ context.Context, sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *memSales) Delete(_ context.Context, id int64) error {
	delete(r.s.sales, id)
	return nil
}

func (r *memSales) List(_ context.Context) ([]*entity.Sale, error) {
	ids := make([]int64, 0, len(r.s.sales))
	for id := range r.s.sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Sale, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.sales[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSales) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.sales[id]
	return ok, nil
}
