package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para ventas (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func saleID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de venta inválido"})
	}
	return int64(id), nil
}

// Create registra una venta.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(usecase.MsgSaleCreated, out))
}

// Get obtiene una venta por id.
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), GetUsername(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: usecase.MsgSaleNotFound})
	}
	return c.JSON(out)
}

// List lista las ventas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUsername(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// Update reescribe una venta.
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUsername(c), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgSaleUpdated, out))
}

// Delete elimina una venta.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetUsername(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgSaleDeleted, nil))
}
