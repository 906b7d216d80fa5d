package dto

import "github.com/shopspring/decimal"

// CreateProviderRequest alta de proveedor.
type CreateProviderRequest struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
}

// UpdateProviderRequest campos a modificar; nil no se toca.
type UpdateProviderRequest struct {
	ProductCode *string          `json:"product_code,omitempty"`
	Description *string          `json:"description,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
}

// ProviderResponse vista de un proveedor.
type ProviderResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
}
