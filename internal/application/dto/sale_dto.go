package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta. Date en formato AAAA-MM-DD (o
// RFC3339). ProductName vacío copia el nombre actual del catálogo. Subtotal y
// Total nil se derivan: subtotal = precio × cantidad, total = subtotal + IVA.
type CreateSaleRequest struct {
	Date        string           `json:"date"`
	ClientCode  string           `json:"client_code"`
	ProductCode string           `json:"product_code"`
	ProductName string           `json:"product_name,omitempty"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Quantity    int              `json:"quantity"`
	TaxAmount   decimal.Decimal  `json:"tax_amount"`
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
}

// UpdateSaleRequest actualización completa de la venta (misma forma que el
// alta; la pantalla reenvía todos los campos).
type UpdateSaleRequest = CreateSaleRequest

// SaleResponse vista de una venta.
type SaleResponse struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	ClientCode  string          `json:"client_code"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
}
