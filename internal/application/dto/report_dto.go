package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetailResponse fila del reporte de ventas por rango de fechas
// (proyección ventas + clientes + productos).
type SaleDetailResponse struct {
	SaleID      int64           `json:"sale_id"`
	Date        time.Time       `json:"date"`
	ClientCode  string          `json:"client_code"`
	ClientName  string          `json:"client_name"`
	ProductCode string          `json:"product_code"`
	CatalogName string          `json:"catalog_name"`
	SoldName    string          `json:"sold_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
}

// SalesSummaryResponse indicadores de un periodo calendario.
type SalesSummaryResponse struct {
	Bucket           string          `json:"bucket"` // etiqueta del periodo
	Transactions     int             `json:"transactions"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	DistinctClients  int             `json:"distinct_clients"`
	AveragePerClient decimal.Decimal `json:"average_per_client"` // 0 si no hay clientes
}
