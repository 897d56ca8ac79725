package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
)

// TrackingHandler seguimiento de envíos (protegido).
type TrackingHandler struct {
	uc *usecase.TrackingUseCase
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(uc *usecase.TrackingUseCase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar seguimiento de envío
// @Tags         tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrackingRequest  true  "Datos del envío"
// @Success      201   {object}  dto.TrackingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tracking [post]
func (h *TrackingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrackingRequest
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
// @Summary      Listar seguimientos (más recientes primero)
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TrackingListResponse
// @Router       /api/tracking [get]
func (h *TrackingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
