package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de ventas.
const (
	MsgSaleCreated         = "Venta registrada correctamente."
	MsgSaleUpdated         = "Venta actualizada correctamente."
	MsgSaleDeleted         = "Venta eliminada."
	MsgSaleNotFound        = "Registro de venta no existe."
	MsgQuantityNotPositive = "La cantidad debe ser mayor que cero."
	MsgClientRefMissing    = "El cliente asociado no existe."
	MsgInvalidDate         = "Fecha inválida: use el formato AAAA-MM-DD."
	MsgNegativeAmount      = "Los importes de la venta no pueden ser negativos."
)

// SaleUseCase registro de ventas con integridad referencial contra clientes y
// productos. Subtotal y total se derivan cuando no vienen, redondeados a 2
// decimales.
type SaleUseCase struct {
	gate  *authz.Gate
	tx    repository.TxRunner
	sales repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(gate *authz.Gate, tx repository.TxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{gate: gate, tx: tx, sales: sales}
}

func parseSaleDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// buildSale valida valores y referencias y arma la entidad lista para
// persistir. Corre dentro de la transacción de Create/Update.
func buildSale(ctx context.Context, r repository.Repos, date time.Time, in dto.CreateSaleRequest) (*entity.Sale, error) {
	clientExists, err := r.Clients.Exists(ctx, in.ClientCode)
	if err != nil {
		return nil, err
	}
	if !clientExists {
		return nil, domain.Reference(MsgClientRefMissing)
	}
	product, err := r.Products.GetByCode(ctx, in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Reference(MsgProductRefMissing)
	}

	name := in.ProductName
	if name == "" {
		name = product.Name // copia del catálogo al momento de la venta
	}
	subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
	if in.Subtotal != nil {
		subtotal = *in.Subtotal
	}
	total := subtotal.Add(in.TaxAmount).Round(2)
	if in.Total != nil {
		total = *in.Total
	}
	if subtotal.IsNegative() || total.IsNegative() {
		return nil, domain.Validation(MsgNegativeAmount)
	}
	return &entity.Sale{
		Date:        date,
		ClientCode:  in.ClientCode,
		ProductCode: in.ProductCode,
		ProductName: name,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		TaxAmount:   in.TaxAmount,
		Subtotal:    subtotal,
		Total:       total,
	}, nil
}

func validateSaleValues(in dto.CreateSaleRequest) error {
	if in.UnitPrice.IsNegative() {
		return domain.Validation(MsgNegativePrice)
	}
	if in.Quantity <= 0 {
		return domain.Validation(MsgQuantityNotPositive)
	}
	if in.TaxAmount.IsNegative() {
		return domain.Validation(MsgNegativeTax)
	}
	return nil
}

// Create registra una venta nueva y devuelve la venta con el id asignado.
func (uc *SaleUseCase) Create(ctx context.Context, actor string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleSales, authz.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateSaleValues(in); err != nil {
		return nil, err
	}
	date, err := parseSaleDate(in.Date)
	if err != nil {
		return nil, domain.Validation(MsgInvalidDate)
	}
	var out *dto.SaleResponse
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		sale, err := buildSale(ctx, r, date, in)
		if err != nil {
			return err
		}
		id, err := r.Sales.Create(ctx, sale)
		if err != nil {
			return err
		}
		sale.ID = id
		out = toSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene una venta por id; (nil, nil) si no existe.
func (uc *SaleUseCase) Get(ctx context.Context, actor string, id int64) (*dto.SaleResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleSales, authz.ActionRead); err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// Update reescribe una venta existente con los campos enviados, aplicando
// las mismas validaciones y derivaciones del alta.
func (uc *SaleUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleSales, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateSaleValues(in); err != nil {
		return nil, err
	}
	date, err := parseSaleDate(in.Date)
	if err != nil {
		return nil, domain.Validation(MsgInvalidDate)
	}
	var out *dto.SaleResponse
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Sales.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgSaleNotFound)
		}
		sale, err := buildSale(ctx, r, date, in)
		if err != nil {
			return err
		}
		sale.ID = id
		if err := r.Sales.Update(ctx, sale); err != nil {
			return err
		}
		out = toSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una venta existente. Repetir el borrado sobre un id ya
// eliminado devuelve no-encontrado, nunca un pánico.
func (uc *SaleUseCase) Delete(ctx context.Context, actor string, id int64) error {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleSales, authz.ActionDelete); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		exists, err := r.Sales.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound(MsgSaleNotFound)
		}
		return r.Sales.Delete(ctx, id)
	})
}

// List devuelve todas las ventas ordenadas por id.
func (uc *SaleUseCase) List(ctx context.Context, actor string) ([]dto.SaleResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleSales, authz.ActionRead); err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date,
		ClientCode:  s.ClientCode,
		ProductCode: s.ProductCode,
		ProductName: s.ProductName,
		UnitPrice:   s.UnitPrice,
		Quantity:    s.Quantity,
		TaxAmount:   s.TaxAmount,
		Subtotal:    s.Subtotal,
		Total:       s.Total,
	}
}
