package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para inventario (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create crea el registro de inventario de un producto.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(usecase.MsgInventoryCreated, out))
}

// Get obtiene el inventario de un producto.
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUsername(c), c.Params("product_code"))
	if err != nil {
		return respondErr(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: usecase.MsgInventoryNotFound})
	}
	return c.JSON(out)
}

// List lista el inventario completo.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUsername(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// Update reescribe el registro de inventario de un producto.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUsername(c), c.Params("product_code"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgInventoryUpdated, out))
}

// Delete elimina el registro de inventario de un producto.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUsername(c), c.Params("product_code")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.OK(usecase.MsgInventoryDeleted, nil))
}
