package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
)

// MovementHandler registro y consulta de entradas y salidas (protegido).
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de repuestos
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "Entrada"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterExit godoc
// @Summary      Registrar salida de repuestos
// @Description  No verifica stock disponible; el stock puede quedar negativo.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "Salida"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterExit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        section      query  string  false  "entry | exit"
// @Param        filter_type  query  string  false  "partNumber | invoiceNumber | supplier"
// @Param        term         query  string  false  "Subcadena a buscar"
// @Param        date         query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.MovementSearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/search [get]
func (h *MovementHandler) Search(c *fiber.Ctx) error {
	var in dto.MovementSearchRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Last godoc
// @Summary      Último movimiento registrado
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        section  query  string  false  "entry | exit"
// @Success      200  {object}  dto.LastRecordResponse
// @Router       /api/movements/last [get]
func (h *MovementHandler) Last(c *fiber.Ctx) error {
	out, err := h.uc.LastRecord(c.UserContext(), c.Query("section"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
