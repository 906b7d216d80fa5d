package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre la vista sales_detail.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListByDateRange devuelve el detalle de ventas del rango, bordes inclusivos,
// ordenado por fecha y luego id.
func (r *ReportRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.SaleDetail, error) {
	query := `
		SELECT sale_id, date, client_code, client_name, product_code, catalog_name, sold_name,
			quantity, unit_price, tax_amount, subtotal, total
		FROM sales_detail
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, sale_id`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, storageErr(err, "list sales detail")
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.SaleID, &d.Date, &d.ClientCode, &d.ClientName, &d.ProductCode,
			&d.CatalogName, &d.SoldName, &d.Quantity, &d.UnitPrice, &d.TaxAmount, &d.Subtotal, &d.Total); err != nil {
			return nil, storageErr(err, "scan sales detail")
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list sales detail")
	}
	return list, nil
}

// SummarizeByPeriod agrupa las ventas por periodo calendario usando
// date_trunc. period ya viene validado por el caso de uso (day, week, month
// o year); start y end en nil dejan el borde abierto.
func (r *ReportRepo) SummarizeByPeriod(ctx context.Context, period string, start, end *time.Time) ([]repository.SalesSummaryRow, error) {
	query := `
		SELECT date_trunc($1, date) AS bucket,
			COUNT(*) AS transactions,
			COALESCE(SUM(total), 0) AS total_sales,
			COALESCE(SUM(tax_amount), 0) AS total_tax,
			COUNT(DISTINCT client_code) AS distinct_clients
		FROM sales
		WHERE ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		GROUP BY bucket
		ORDER BY bucket`
	rows, err := r.q.Query(ctx, query, period, start, end)
	if err != nil {
		return nil, storageErr(err, "summarize sales")
	}
	defer rows.Close()
	var list []repository.SalesSummaryRow
	for rows.Next() {
		var row repository.SalesSummaryRow
		if err := rows.Scan(&row.Bucket, &row.Transactions, &row.TotalSales, &row.TotalTax, &row.DistinctClients); err != nil {
			return nil, storageErr(err, "scan sales summary")
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "summarize sales")
	}
	return list, nil
}
