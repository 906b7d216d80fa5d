package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// SalesSummaryRow resultado crudo de la agregación por periodo calendario.
// Lo produce la DB; el caso de uso lo convierte en DTO (etiqueta y promedio).
type SalesSummaryRow struct {
	Bucket          time.Time // inicio del periodo (date_trunc)
	Transactions    int
	TotalSales      decimal.Decimal
	TotalTax        decimal.Decimal
	DistinctClients int
}

// ReportRepository define las consultas de solo lectura para reportes de
// ventas. Las implementaciones no modifican datos.
type ReportRepository interface {
	// ListByDateRange devuelve el detalle de ventas del rango, bordes
	// inclusivos, ordenado por fecha y luego id.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.SaleDetail, error)

	// SummarizeByPeriod agrupa las ventas por periodo calendario
	// (day, week, month o year). start y end son opcionales.
	SummarizeByPeriod(ctx context.Context, period string, start, end *time.Time) ([]SalesSummaryRow, error)
}
