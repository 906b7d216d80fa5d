// Seed de desarrollo: crea el esquema, el administrador inicial y un juego de
// datos de ejemplo pasando por los casos de uso (misma validación que la API).
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
	"github.com/jhoicas/gestion-api/pkg/passhash"
)

const adminUser = "admin"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	gate := authz.NewGate(userRepo)
	hasher := passhash.New(cfg.Auth.HashIterations)

	authUC := auth.NewUseCase(userRepo, txRunner, gate, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(gate, txRunner, postgres.NewClientRepository(pool))
	productUC := usecase.NewProductUseCase(gate, txRunner, postgres.NewProductRepository(pool))
	providerUC := usecase.NewProviderUseCase(gate, txRunner, postgres.NewProviderRepository(pool))
	inventoryUC := usecase.NewInventoryUseCase(gate, txRunner, postgres.NewInventoryRepository(pool))
	saleUC := usecase.NewSaleUseCase(gate, txRunner, postgres.NewSaleRepository(pool))

	created, err := authUC.EnsureAdmin(ctx, adminUser, "admin")
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap del administrador")
	}
	if created {
		log.Info().Msg("administrador inicial creado (admin/admin)")
	}

	// Los duplicados no son error: el seed puede correr sobre una base ya
	// poblada.
	seed := func(what string, err error) {
		switch {
		case err == nil:
			log.Info().Str("registro", what).Msg("creado")
		case errors.Is(err, domain.ErrConflict):
			log.Debug().Str("registro", what).Msg("ya existía")
		default:
			log.Fatal().Err(err).Str("registro", what).Msg("seed")
		}
	}

	_, err = productUC.Create(ctx, adminUser, dto.CreateProductRequest{
		Code:        "P001",
		Name:        "Café molido 500g",
		Description: "Café de origen, tueste medio",
		TaxRate:     decimal.NewFromFloat(0.19),
		UnitPrice:   decimal.NewFromFloat(120.0),
	})
	seed("producto P001", err)

	_, err = productUC.Create(ctx, adminUser, dto.CreateProductRequest{
		Code:      "S100",
		Name:      "Azúcar 1kg",
		TaxRate:   decimal.NewFromFloat(0.19),
		UnitPrice: decimal.NewFromFloat(20.0),
	})
	seed("producto S100", err)

	_, err = inventoryUC.Create(ctx, adminUser, dto.CreateInventoryRequest{
		ProductCode: "P001",
		Quantity:    40,
		MinStock:    10,
		TaxRate:     decimal.NewFromFloat(0.19),
		UnitPrice:   decimal.NewFromFloat(120.0),
	})
	seed("inventario P001", err)

	_, err = clientUC.Create(ctx, adminUser, dto.CreateClientRequest{
		Code:    "C001",
		Name:    "Comercial La Esquina",
		Address: "Calle 10 #4-21",
		Phone:   "3000000001",
		City:    "Bogotá",
	})
	seed("cliente C001", err)

	_, err = providerUC.Create(ctx, adminUser, dto.CreateProviderRequest{
		ID:          "PR01",
		ProductCode: "P001",
		Description: "Tostadora El Valle",
		Cost:        decimal.NewFromFloat(80.0),
		Address:     "Km 3 vía La Mesa",
		Phone:       "3000000002",
	})
	seed("proveedor PR01", err)

	_, err = saleUC.Create(ctx, adminUser, dto.CreateSaleRequest{
		Date:        "2026-08-01",
		ClientCode:  "C001",
		ProductCode: "S100",
		UnitPrice:   decimal.NewFromFloat(20.0),
		Quantity:    2,
		TaxAmount:   decimal.NewFromFloat(7.6),
	})
	seed("venta S100 x2", err)

	log.Info().Msg("seed completado")
}
