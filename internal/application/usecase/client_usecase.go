package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de clientes.
const (
	MsgClientCreated        = "Cliente creado."
	MsgClientUpdated        = "Cliente actualizado."
	MsgClientDeleted        = "Cliente eliminado."
	MsgClientExists         = "El cliente ya existe."
	MsgClientNotFound       = "El cliente no existe."
	MsgClientFieldsRequired = "Todos los campos del cliente son requeridos."
	MsgClientEmptyField     = "Los campos del cliente no pueden estar vacíos."
)

// ClientUseCase CRUD de clientes: puerta de autorización, validación de
// campos y unicidad del código, todo dentro de una transacción.
type ClientUseCase struct {
	gate    *authz.Gate
	tx      repository.TxRunner
	clients repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(gate *authz.Gate, tx repository.TxRunner, clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{gate: gate, tx: tx, clients: clients}
}

// Create crea un cliente nuevo. Todos los campos son requeridos.
func (uc *ClientUseCase) Create(ctx context.Context, actor string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleClients, authz.ActionCreate); err != nil {
		return nil, err
	}
	if in.Code == "" || in.Name == "" || in.Address == "" || in.Phone == "" || in.City == "" {
		return nil, domain.Validation(MsgClientFieldsRequired)
	}
	client := &entity.Client{
		Code:    in.Code,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		City:    in.City,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Clients.Exists(ctx, in.Code)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict(MsgClientExists)
		}
		return r.Clients.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get obtiene un cliente por código; (nil, nil) si no existe.
func (uc *ClientUseCase) Get(ctx context.Context, actor, code string) (*dto.ClientResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleClients, authz.ActionRead); err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update modifica los campos enviados de un cliente existente.
func (uc *ClientUseCase) Update(ctx context.Context, actor, code string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleClients, authz.ActionUpdate); err != nil {
		return nil, err
	}
	for _, f := range []*string{in.Name, in.Address, in.Phone, in.City} {
		if f != nil && *f == "" {
			return nil, domain.Validation(MsgClientEmptyField)
		}
	}
	var out *dto.ClientResponse
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		client, err := r.Clients.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NotFound(MsgClientNotFound)
		}
		if in.Name != nil {
			client.Name = *in.Name
		}
		if in.Address != nil {
			client.Address = *in.Address
		}
		if in.Phone != nil {
			client.Phone = *in.Phone
		}
		if in.City != nil {
			client.City = *in.City
		}
		if err := r.Clients.Update(ctx, client); err != nil {
			return err
		}
		out = toClientResponse(client)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un cliente. El almacén rechaza el borrado cuando el cliente
// todavía tiene ventas asociadas (restricción de clave foránea).
func (uc *ClientUseCase) Delete(ctx context.Context, actor, code string) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleClients, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Clients.Exists(ctx, code)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgClientNotFound)
		}
		return r.Clients.Delete(ctx, code)
	})
}

// List devuelve los clientes ordenados por código.
func (uc *ClientUseCase) List(ctx context.Context, actor string) ([]dto.ClientResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleClients, authz.ActionRead); err != nil {
		return nil, err
	}
	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Code:    c.Code,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		City:    c.City,
	}
}
