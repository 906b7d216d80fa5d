package dto

import "github.com/shopspring/decimal"

// CreateInventoryRequest alta del registro de inventario de un producto.
type CreateInventoryRequest struct {
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateInventoryRequest actualización completa del registro (la fila se
// reescribe con estos valores, como hace la pantalla de inventarios).
type UpdateInventoryRequest struct {
	Quantity  int             `json:"quantity"`
	MinStock  int             `json:"min_stock"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// InventoryResponse vista de un registro de inventario con el nombre del
// producto resuelto desde el catálogo.
type InventoryResponse struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
