package entity

import "github.com/shopspring/decimal"

// Provider representa un proveedor asociado a un producto del catálogo.
type Provider struct {
	ID          string // identificador único, clave primaria
	ProductCode string // FK a Product, requerido
	Description string
	Cost        decimal.Decimal // costo de compra, >= 0
	Address     string
	Phone       string
}
