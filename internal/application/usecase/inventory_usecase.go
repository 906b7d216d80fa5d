package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de inventario.
const (
	MsgInventoryCreated      = "Inventario creado."
	MsgInventoryUpdated      = "Inventario actualizado."
	MsgInventoryDeleted      = "Inventario eliminado."
	MsgInventoryExists       = "Ya existe un registro de inventario para ese producto."
	MsgInventoryNotFound     = "Registro de inventario no existe."
	MsgNegativeQuantities    = "Cantidad y stock mínimo deben ser valores no negativos."
	MsgQuantityBelowMinStock = "La cantidad disponible no puede ser menor que el stock mínimo."
)

// InventoryUseCase CRUD del inventario con la invariante de stock mínimo.
// El orden de los chequeos es fijo para que los mensajes sean deterministas:
// rangos de valores → piso de stock → unicidad/existencia → clave foránea.
type InventoryUseCase struct {
	gate      *authz.Gate
	tx        repository.TxRunner
	inventory repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(gate *authz.Gate, tx repository.TxRunner, inventory repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{gate: gate, tx: tx, inventory: inventory}
}

func validateInventoryValues(in dto.UpdateInventoryRequest) error {
	if in.Quantity < 0 || in.MinStock < 0 {
		return domain.Validation(MsgNegativeQuantities)
	}
	if in.UnitPrice.IsNegative() {
		return domain.Validation(MsgNegativePrice)
	}
	if in.TaxRate.IsNegative() {
		return domain.Validation(MsgNegativeTax)
	}
	if in.Quantity < in.MinStock {
		return domain.Validation(MsgQuantityBelowMinStock)
	}
	return nil
}

// Create crea el registro de inventario de un producto.
func (uc *InventoryUseCase) Create(ctx context.Context, actor string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleInventories, authz.ActionCreate); err != nil {
		return nil, err
	}
	values := dto.UpdateInventoryRequest{Quantity: in.Quantity, MinStock: in.MinStock, TaxRate: in.TaxRate, UnitPrice: in.UnitPrice}
	if err := validateInventoryValues(values); err != nil {
		return nil, err
	}
	record := &entity.InventoryRecord{
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		TaxRate:     in.TaxRate,
		UnitPrice:   in.UnitPrice,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Inventory.Exists(ctx, in.ProductCode)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict(MsgInventoryExists)
		}
		productExists, err := r.Products.Exists(ctx, in.ProductCode)
		if err != nil {
			return err
		}
		if !productExists {
			return domain.Reference(MsgProductRefMissing)
		}
		return r.Inventory.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, in.ProductCode)
}

// Get obtiene el inventario de un producto con su nombre de catálogo;
// (nil, nil) si no existe.
func (uc *InventoryUseCase) Get(ctx context.Context, actor, productCode string) (*dto.InventoryResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleInventories, authz.ActionRead); err != nil {
		return nil, err
	}
	record, err := uc.inventory.GetByProduct(ctx, productCode)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toInventoryResponse(record), nil
}

// Update reescribe el registro de inventario con los valores enviados,
// manteniendo la invariante cantidad >= stock mínimo.
func (uc *InventoryUseCase) Update(ctx context.Context, actor, productCode string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleInventories, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateInventoryValues(in); err != nil {
		return nil, err
	}
	record := &entity.InventoryRecord{
		ProductCode: productCode,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		TaxRate:     in.TaxRate,
		UnitPrice:   in.UnitPrice,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Inventory.Exists(ctx, productCode)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgInventoryNotFound)
		}
		productExists, err := r.Products.Exists(ctx, productCode)
		if err != nil {
			return err
		}
		if !productExists {
			return domain.Reference(MsgProductRefMissing)
		}
		return r.Inventory.Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, productCode)
}

// Delete elimina el registro de inventario de un producto.
func (uc *InventoryUseCase) Delete(ctx context.Context, actor, productCode string) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleInventories, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Inventory.Exists(ctx, productCode)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgInventoryNotFound)
		}
		return r.Inventory.Delete(ctx, productCode)
	})
}

// List devuelve el inventario completo ordenado por código de producto.
func (uc *InventoryUseCase) List(ctx context.Context, actor string) ([]dto.InventoryResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleInventories, authz.ActionRead); err != nil {
		return nil, err
	}
	records, err := uc.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, *toInventoryResponse(rec))
	}
	return out, nil
}

func toInventoryResponse(rec *entity.InventoryRecord) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ProductCode: rec.ProductCode,
		ProductName: rec.ProductName,
		Quantity:    rec.Quantity,
		MinStock:    rec.MinStock,
		TaxRate:     rec.TaxRate,
		UnitPrice:   rec.UnitPrice,
	}
}
