package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de proveedores.
const (
	MsgProviderCreated        = "Proveedor creado."
	MsgProviderUpdated        = "Proveedor actualizado."
	MsgProviderDeleted        = "Proveedor eliminado."
	MsgProviderExists         = "El proveedor ya existe."
	MsgProviderNotFound       = "El proveedor no existe."
	MsgProviderFieldsRequired = "Identificador y producto del proveedor son requeridos."
	MsgNegativeCost           = "El costo no puede ser negativo."
	MsgProductRefMissing      = "El producto asociado no existe."
)

// ProviderUseCase CRUD de proveedores: cada proveedor referencia un producto
// del catálogo, validado antes de persistir.
type ProviderUseCase struct {
	gate      *authz.Gate
	tx        repository.TxRunner
	providers repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(gate *authz.Gate, tx repository.TxRunner, providers repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{gate: gate, tx: tx, providers: providers}
}

// Create crea un proveedor nuevo validando unicidad del id y existencia del
// producto referenciado.
func (uc *ProviderUseCase) Create(ctx context.Context, actor string, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProviders, authz.ActionCreate); err != nil {
		return nil, err
	}
	if in.ID == "" || in.ProductCode == "" {
		return nil, domain.Validation(MsgProviderFieldsRequired)
	}
	if in.Cost.IsNegative() {
		return nil, domain.Validation(MsgNegativeCost)
	}
	provider := &entity.Provider{
		ID:          in.ID,
		ProductCode: in.ProductCode,
		Description: in.Description,
		Cost:        in.Cost,
		Address:     in.Address,
		Phone:       in.Phone,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Providers.Exists(ctx, in.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict(MsgProviderExists)
		}
		productExists, err := r.Products.Exists(ctx, in.ProductCode)
		if err != nil {
			return err
		}
		if !productExists {
			return domain.Reference(MsgProductRefMissing)
		}
		return r.Providers.Create(ctx, provider)
	})
	if err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Get obtiene un proveedor por id; (nil, nil) si no existe.
func (uc *ProviderUseCase) Get(ctx context.Context, actor, id string) (*dto.ProviderResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProviders, authz.ActionRead); err != nil {
		return nil, err
	}
	provider, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return toProviderResponse(provider), nil
}

// Update modifica los campos enviados; si cambia el producto referenciado se
// revalida su existencia.
func (uc *ProviderUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProviders, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.Validation(MsgNegativeCost)
	}
	var out *dto.ProviderResponse
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		provider, err := r.Providers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if provider == nil {
			return domain.NotFound(MsgProviderNotFound)
		}
		if in.ProductCode != nil {
			productExists, err := r.Products.Exists(ctx, *in.ProductCode)
			if err != nil {
				return err
			}
			if !productExists {
				return domain.Reference(MsgProductRefMissing)
			}
			provider.ProductCode = *in.ProductCode
		}
		if in.Description != nil {
			provider.Description = *in.Description
		}
		if in.Cost != nil {
			provider.Cost = *in.Cost
		}
		if in.Address != nil {
			provider.Address = *in.Address
		}
		if in.Phone != nil {
			provider.Phone = *in.Phone
		}
		if err := r.Providers.Update(ctx, provider); err != nil {
			return err
		}
		out = toProviderResponse(provider)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un proveedor existente.
func (uc *ProviderUseCase) Delete(ctx context.Context, actor, id string) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProviders, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Providers.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgProviderNotFound)
		}
		return r.Providers.Delete(ctx, id)
	})
}

// List devuelve los proveedores ordenados por id.
func (uc *ProviderUseCase) List(ctx context.Context, actor string) ([]dto.ProviderResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProviders, authz.ActionRead); err != nil {
		return nil, err
	}
	providers, err := uc.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:          p.ID,
		ProductCode: p.ProductCode,
		Description: p.Description,
		Cost:        p.Cost,
		Address:     p.Address,
		Phone:       p.Phone,
	}
}
