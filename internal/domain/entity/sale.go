package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. ProductName es una copia del nombre
// del producto al momento de la venta, no un join en vivo.
type Sale struct {
	ID          int64 // secuencia asignada por el almacén
	Date        time.Time
	ClientCode  string // FK a Client
	ProductCode string // FK a Product
	ProductName string
	UnitPrice   decimal.Decimal // >= 0
	Quantity    int             // > 0
	TaxAmount   decimal.Decimal // >= 0
	Subtotal    decimal.Decimal // UnitPrice * Quantity si no se suministra
	Total       decimal.Decimal // Subtotal + TaxAmount si no se suministra
}

// SaleDetail es la proyección de solo lectura que une ventas, clientes y
// productos para reportes: nombre de catálogo vs nombre vendido.
type SaleDetail struct {
	SaleID      int64
	Date        time.Time
	ClientCode  string
	ClientName  string
	ProductCode string
	CatalogName string // nombre actual en el catálogo
	SoldName    string // nombre copiado al registrar la venta
	Quantity    int
	UnitPrice   decimal.Decimal
	TaxAmount   decimal.Decimal
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
}
