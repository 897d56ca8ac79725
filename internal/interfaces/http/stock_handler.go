package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

// StockHandler consulta de stock derivado de los movimientos.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Get godoc
// @Summary      Stock de un número de parte
// @Description  Σ entradas − Σ salidas de las partes que coinciden. match=contains (por defecto) o exact.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        part_number  query  string  false  "Número de parte (vacío = 0 sin consultar)"
// @Param        match        query  string  false  "contains | exact"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	mode, err := domaininv.ParseMatchMode(c.Query("match"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ComputeStock(c.UserContext(), c.Query("part_number"), mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByPart godoc
// @Summary      Stock de todas las partes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/all [get]
func (h *StockHandler) ListByPart(c *fiber.Ctx) error {
	out, err := h.uc.ListStockByPart(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Total godoc
// @Summary      Stock global
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/total [get]
func (h *StockHandler) Total(c *fiber.Ctx) error {
	out, err := h.uc.ComputeTotalStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
