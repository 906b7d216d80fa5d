package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
type Product struct {
	Code        string // código único, clave primaria
	Name        string
	Description string
	TaxRate     decimal.Decimal // fracción de IVA, ej. 0.19
	UnitPrice   decimal.Decimal // precio de venta, >= 0
}
