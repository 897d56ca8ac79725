package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
)

// PartsRequestHandler solicitudes de repuestos desde las sedes (protegido).
type PartsRequestHandler struct {
	uc *usecase.PartsRequestUseCase
}

// NewPartsRequestHandler construye el handler.
func NewPartsRequestHandler(uc *usecase.PartsRequestUseCase) *PartsRequestHandler {
	return &PartsRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar repuestos
// @Tags         parts-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartsRequestRequest  true  "Solicitud"
// @Success      201   {object}  dto.PartsRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts-requests [post]
func (h *PartsRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartsRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         parts-requests
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | completed"
// @Success      200     {object}  dto.PartsRequestListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/parts-requests [get]
func (h *PartsRequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar solicitud como atendida
// @Tags         parts-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PartsRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/parts-requests/{id}/complete [post]
func (h *PartsRequestHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PickList godoc
// @Summary      PDF de despacho con las solicitudes pendientes
// @Tags         parts-requests
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/parts-requests/pick-list.pdf [get]
func (h *PartsRequestHandler) PickList(c *fiber.Ctx) error {
	pdf, err := h.uc.PickList(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment("solicitudes-pendientes.pdf")
	c.Type("pdf")
	return c.Send(pdf)
}
