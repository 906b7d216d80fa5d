package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Mensajes de las operaciones de reportes.
const (
	MsgInvalidPeriod    = "Periodo inválido: use day, week, month o year."
	MsgInvalidDateRange = "Rango de fechas inválido."
)

// Periodos de agrupación aceptados por Summarize. Coinciden con los valores
// que entiende date_trunc en el almacén.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// UseCase reportes de solo lectura sobre las ventas: detalle por rango de
// fechas y resumen agregado por periodo calendario.
type UseCase struct {
	gate    *authz.Gate
	reports repository.ReportRepository
}

// New construye el caso de uso de reportes.
func New(gate *authz.Gate, reports repository.ReportRepository) *UseCase {
	return &UseCase{gate: gate, reports: reports}
}

// ListByDateRange devuelve el detalle de ventas entre start y end, bordes
// inclusivos, ordenado por fecha y luego id.
func (uc *UseCase) ListByDateRange(ctx context.Context, actor string, start, end time.Time) ([]dto.SaleDetailResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleReports, authz.ActionRead); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.Validation(MsgInvalidDateRange)
	}
	rows, err := uc.reports.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleDetailResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SaleDetailResponse{
			SaleID:      row.SaleID,
			Date:        row.Date,
			ClientCode:  row.ClientCode,
			ClientName:  row.ClientName,
			ProductCode: row.ProductCode,
			CatalogName: row.CatalogName,
			SoldName:    row.SoldName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			TaxAmount:   row.TaxAmount,
			Subtotal:    row.Subtotal,
			Total:       row.Total,
		})
	}
	return out, nil
}

// Summarize agrega las ventas por periodo calendario. start y end acotan el
// rango cuando vienen; nil deja el borde abierto.
func (uc *UseCase) Summarize(ctx context.Context, actor, period string, start, end *time.Time) ([]dto.SalesSummaryResponse, error) {
	if err := uc.gate.Authorize(ctx, actor, authz.ModuleReports, authz.ActionReport); err != nil {
		return nil, err
	}
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
	default:
		return nil, domain.Validation(MsgInvalidPeriod)
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, domain.Validation(MsgInvalidDateRange)
	}
	rows, err := uc.reports.SummarizeByPeriod(ctx, period, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SalesSummaryResponse{
			Bucket:           bucketLabel(period, row.Bucket),
			Transactions:     row.Transactions,
			TotalSales:       row.TotalSales,
			TotalTax:         row.TotalTax,
			DistinctClients:  row.DistinctClients,
			AveragePerClient: averagePerClient(row.TotalSales, row.DistinctClients),
		})
	}
	return out, nil
}

// bucketLabel etiqueta legible del inicio del periodo según la granularidad.
func bucketLabel(period string, t time.Time) string {
	switch period {
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonth:
		return t.Format("2006-01")
	case PeriodYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

func averagePerClient(total decimal.Decimal, clients int) decimal.Decimal {
	if clients == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(clients))).Round(2)
}
