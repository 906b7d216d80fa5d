package entity

import "github.com/shopspring/decimal"

// InventoryRecord representa el inventario de un producto (una fila por producto).
// Invariante: Quantity >= MinStock en todo momento.
// ProductName no se persiste en la fila: las lecturas lo traen del catálogo.
type InventoryRecord struct {
	ProductCode string // clave primaria y FK a Product
	ProductName string
	Quantity    int // >= 0
	MinStock    int // >= 0
	TaxRate     decimal.Decimal
	UnitPrice   decimal.Decimal // >= 0
}
