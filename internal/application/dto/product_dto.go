package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest campos a modificar; nil no se toca.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// ProductResponse vista de un producto.
type ProductResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
