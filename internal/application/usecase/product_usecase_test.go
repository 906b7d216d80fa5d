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

func productFixture(code string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:      code,
		Name:      "Café molido 500g",
		TaxRate:   decimal.NewFromFloat(0.19),
		UnitPrice: decimal.NewFromFloat(120.0),
	}
}

func TestProductCreate_RoundTrip(t *testing.T) {
	_, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{tx.(*memTx).s})
	ctx := context.Background()

	_, err := uc.Create(ctx, "supervisor", productFixture("P001"))
	require.NoError(t, err)

	got, err := uc.Get(ctx, "operador", "P001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.TaxRate.Equal(decimal.NewFromFloat(0.19)))
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromFloat(120.0)))
}

func TestProductCreate_ValoresNegativosRechazados(t *testing.T) {
	_, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{tx.(*memTx).s})
	ctx := context.Background()

	in := productFixture("P001")
	in.TaxRate = decimal.NewFromFloat(-0.1)
	_, err := uc.Create(ctx, "admin", in)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgNegativeTax, domain.Message(err))

	in = productFixture("P001")
	in.UnitPrice = decimal.NewFromFloat(-1)
	_, err = uc.Create(ctx, "admin", in)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgNegativePrice, domain.Message(err))
}

func TestProductCreate_DuplicadoRechazado(t *testing.T) {
	_, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{tx.(*memTx).s})
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin", productFixture("P001"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, "admin", productFixture("P001"))
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgProductExists, domain.Message(err))
}

func TestProductUpdate_ValidaNegativos(t *testing.T) {
	_, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{tx.(*memTx).s})
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin", productFixture("P001"))
	require.NoError(t, err)

	_, err = uc.Update(ctx, "supervisor", "P001", dto.UpdateProductRequest{
		UnitPrice: ptr(decimal.NewFromFloat(-5)),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err := uc.Update(ctx, "supervisor", "P001", dto.UpdateProductRequest{
		Name: ptr("Café molido premium 500g"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Café molido premium 500g", out.Name)
}

func TestProductDelete_SoloAdmin(t *testing.T) {
	_, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{tx.(*memTx).s})
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin", productFixture("P001"))
	require.NoError(t, err)

	err = uc.Delete(ctx, "supervisor", "P001")
	require.ErrorIs(t, err, domain.ErrAuthorization, "borrar productos exige nivel 1")

	require.NoError(t, uc.Delete(ctx, "admin", "P001"))
}

func TestProductDelete_ConDependientesRechazado(t *testing.T) {
	s, gate, tx := newEnv()
	uc := usecase.NewProductUseCase(gate, tx, &memProducts{s})
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin", productFixture("P001"))
	require.NoError(t, err)
	s.inventory["P001"] = &entity.InventoryRecord{ProductCode: "P001", Quantity: 5, MinStock: 1}

	err = uc.Delete(ctx, "admin", "P001")
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, domain.Message(err), "producto")
}
