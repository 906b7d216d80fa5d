package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

func seedClient(s *memStore, code string) {
	s.clients[code] = &entity.Client{Code: code, Name: "Comercial La Esquina"}
}

func saleFixture(clientCode, productCode string) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Date:        "2026-08-01",
		ClientCode:  clientCode,
		ProductCode: productCode,
		UnitPrice:   decimal.NewFromFloat(20.0),
		Quantity:    2,
		TaxAmount:   decimal.NewFromFloat(7.6),
	}
}

func TestSaleCreate_DerivaImportes(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})

	out, err := uc.Create(context.Background(), "supervisor", saleFixture("C001", "S100"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromFloat(40.0)), "subtotal = 20.0 × 2, got %s", out.Subtotal)
	assert.True(t, out.Total.Equal(decimal.NewFromFloat(47.6)), "total = subtotal + IVA, got %s", out.Total)
	assert.Equal(t, "Café molido 500g", out.ProductName, "sin nombre explícito se copia el del catálogo")
}

func TestSaleCreate_RespetaImportesSuministrados(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})

	in := saleFixture("C001", "S100")
	in.ProductName = "Azúcar 1kg promo"
	in.Subtotal = ptr(decimal.NewFromFloat(38.0))
	in.Total = ptr(decimal.NewFromFloat(45.6))
	out, err := uc.Create(context.Background(), "supervisor", in)
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromFloat(38.0)))
	assert.True(t, out.Total.Equal(decimal.NewFromFloat(45.6)))
	assert.Equal(t, "Azúcar 1kg promo", out.ProductName)
}

func TestSaleCreate_ClienteInexistenteRechazado(t *testing.T) {
	s, gate, tx := newEnv()
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})

	_, err := uc.Create(context.Background(), "supervisor", saleFixture("NOCLIENT", "S100"))
	require.ErrorIs(t, err, domain.ErrReference)
	assert.Contains(t, domain.Message(err), "cliente")
	assert.Empty(t, s.sales, "la venta rechazada no se persiste")
}

func TestSaleCreate_ProductoInexistenteRechazado(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})

	_, err := uc.Create(context.Background(), "supervisor", saleFixture("C001", "NOPE"))
	require.ErrorIs(t, err, domain.ErrReference)
	assert.Contains(t, domain.Message(err), "producto")
}

func TestSaleCreate_Validaciones(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})
	ctx := context.Background()

	in := saleFixture("C001", "S100")
	in.Quantity = 0
	_, err := uc.Create(ctx, "supervisor", in)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgQuantityNotPositive, domain.Message(err))

	in = saleFixture("C001", "S100")
	in.UnitPrice = decimal.NewFromFloat(-1)
	_, err = uc.Create(ctx, "supervisor", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = saleFixture("C001", "S100")
	in.TaxAmount = decimal.NewFromFloat(-0.5)
	_, err = uc.Create(ctx, "supervisor", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = saleFixture("C001", "S100")
	in.Date = "01/08/2026"
	_, err = uc.Create(ctx, "supervisor", in)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgInvalidDate, domain.Message(err))
}

func TestSaleCreate_OperadorDenegado(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})

	_, err := uc.Create(context.Background(), "operador", saleFixture("C001", "S100"))
	assert.ErrorIs(t, err, domain.ErrAuthorization)
}

func TestSaleUpdate_RecalculaYValida(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})
	ctx := context.Background()

	created, err := uc.Create(ctx, "supervisor", saleFixture("C001", "S100"))
	require.NoError(t, err)

	in := saleFixture("C001", "S100")
	in.Quantity = 3
	out, err := uc.Update(ctx, "supervisor", created.ID, in)
	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromFloat(60.0)), "subtotal recalculado con la nueva cantidad")

	_, err = uc.Update(ctx, "supervisor", 999, in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgSaleNotFound, domain.Message(err))
}

func TestSaleDelete_Repetido(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})
	ctx := context.Background()

	created, err := uc.Create(ctx, "supervisor", saleFixture("C001", "S100"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "supervisor", created.ID))
	err = uc.Delete(ctx, "supervisor", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleList_OrdenadoPorID(t *testing.T) {
	s, gate, tx := newEnv()
	seedClient(s, "C001")
	seedProduct(s, "S100")
	uc := usecase.NewSaleUseCase(gate, tx, &memSales{s})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, "supervisor", saleFixture("C001", "S100"))
		require.NoError(t, err)
	}
	out, err := uc.List(ctx, "operador")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[2].ID)
}
