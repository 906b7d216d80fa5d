package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/reporting"
)

// ReportHandler maneja las consultas de reportes de ventas (protegido).
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

const dateLayout = "2006-01-02"

// SalesDetail devuelve el detalle de ventas entre ?start y ?end (YYYY-MM-DD,
// ambos requeridos, bordes inclusivos).
func (h *ReportHandler) SalesDetail(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start requerido en formato AAAA-MM-DD"})
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "end requerido en formato AAAA-MM-DD"})
	}
	out, err := h.uc.ListByDateRange(c.UserContext(), GetUsername(c), start, end)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// SalesSummary agrega las ventas por ?period (day, week, month o year),
// opcionalmente acotado con ?start y ?end.
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	period := c.Query("period", reporting.PeriodDay)
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start en formato AAAA-MM-DD"})
		}
		start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "end en formato AAAA-MM-DD"})
		}
		end = &t
	}
	out, err := h.uc.Summarize(c.UserContext(), GetUsername(c), period, start, end)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}
