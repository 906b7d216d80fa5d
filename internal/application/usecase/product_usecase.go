package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de productos.
const (
	MsgProductCreated        = "Producto creado."
	MsgProductUpdated        = "Producto actualizado."
	MsgProductDeleted        = "Producto eliminado."
	MsgProductExists         = "El producto ya existe."
	MsgProductNotFound       = "El producto no existe."
	MsgProductFieldsRequired = "Código y nombre del producto son requeridos."
	MsgNegativeTax           = "El IVA no puede ser negativo."
	MsgNegativePrice         = "El precio de venta no puede ser negativo."
)

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	gate     *authz.Gate
	tx       repository.TxRunner
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gate *authz.Gate, tx repository.TxRunner, products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{gate: gate, tx: tx, products: products}
}

// Create crea un producto nuevo con IVA y precio no negativos.
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProducts, authz.ActionCreate); err != nil {
		return nil, err
	}
	if in.Code == "" || in.Name == "" {
		return nil, domain.Validation(MsgProductFieldsRequired)
	}
	if in.TaxRate.IsNegative() {
		return nil, domain.Validation(MsgNegativeTax)
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Validation(MsgNegativePrice)
	}
	product := &entity.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		TaxRate:     in.TaxRate,
		UnitPrice:   in.UnitPrice,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Products.Exists(ctx, in.Code)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict(MsgProductExists)
		}
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto por código; (nil, nil) si no existe.
func (uc *ProductUseCase) Get(ctx context.Context, actor, code string) (*dto.ProductResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProducts, authz.ActionRead); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update modifica los campos enviados de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, actor, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProducts, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if in.TaxRate != nil && in.TaxRate.IsNegative() {
		return nil, domain.Validation(MsgNegativeTax)
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.Validation(MsgNegativePrice)
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		product, err := r.Products.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(MsgProductNotFound)
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.TaxRate != nil {
			product.TaxRate = *in.TaxRate
		}
		if in.UnitPrice != nil {
			product.UnitPrice = *in.UnitPrice
		}
		if err := r.Products.Update(ctx, product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto. El almacén rechaza el borrado cuando aún hay
// proveedores, inventario o ventas apuntando al código.
func (uc *ProductUseCase) Delete(ctx context.Context, actor, code string) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProducts, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Products.Exists(ctx, code)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgProductNotFound)
		}
		return r.Products.Delete(ctx, code)
	})
}

// List devuelve los productos ordenados por código.
func (uc *ProductUseCase) List(ctx context.Context, actor string) ([]dto.ProductResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleProducts, authz.ActionRead); err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		TaxRate:     p.TaxRate,
		UnitPrice:   p.UnitPrice,
	}
}
