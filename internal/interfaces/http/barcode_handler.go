package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
)

// BarcodeHandler endpoints de generación, validación y render de códigos.
type BarcodeHandler struct {
	uc *barcodes.UseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(uc *barcodes.UseCase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar códigos EAN-13
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateEANRequest  false  "Prefijo y cantidad"
// @Success      201   {object}  dto.GenerateEANResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barcodes/ean13 [post]
func (h *BarcodeHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateEANRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Generate(in.Prefix, in.Count)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate godoc
// @Summary      Validar un EAN-13
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de 13 dígitos"
// @Success      200   {object}  dto.ValidateEANResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barcodes/ean13/{code}/validate [get]
func (h *BarcodeHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CheckDigit godoc
// @Summary      Dígito verificador de una carga de 12 dígitos
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Param        payload  query  string  true  "12 dígitos"
// @Success      200      {object}  dto.CheckDigitResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/barcodes/ean13/check-digit [get]
func (h *BarcodeHandler) CheckDigit(c *fiber.Ctx) error {
	out, err := h.uc.CheckDigit(c.Query("payload"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// EAN13PNG godoc
// @Summary      Imagen PNG de un EAN-13
// @Tags         barcodes
// @Security     Bearer
// @Produce      png
// @Param        code      path   string  true   "Código de 13 dígitos"
// @Param        download  query  bool    false  "Descargar como ean13-<code>.png"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/barcodes/ean13/{code}.png [get]
func (h *BarcodeHandler) EAN13PNG(c *fiber.Ctx) error {
	code := strings.TrimSuffix(c.Params("code"), ".png")
	png, err := h.uc.RenderEAN13(code)
	if err != nil {
		return writeError(c, err)
	}
	if c.QueryBool("download") {
		c.Attachment("ean13-" + code + ".png")
	}
	c.Type("png")
	return c.Send(png)
}

// QRPNG godoc
// @Summary      Imagen PNG de un código QR
// @Tags         barcodes
// @Security     Bearer
// @Produce      png
// @Param        text      query  string  true   "Contenido (máx. 2048 bytes)"
// @Param        download  query  bool    false  "Descargar como qrcode.png"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/barcodes/qr.png [get]
func (h *BarcodeHandler) QRPNG(c *fiber.Ctx) error {
	png, err := h.uc.RenderQR(c.Query("text"))
	if err != nil {
		return writeError(c, err)
	}
	if c.QueryBool("download") {
		c.Attachment("qrcode.png")
	}
	c.Type("png")
	return c.Send(png)
}

// LabelSheet godoc
// @Summary      Hoja PDF de etiquetas EAN-13
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelSheetRequest  true  "Códigos a imprimir"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/barcodes/labels [post]
func (h *BarcodeHandler) LabelSheet(c *fiber.Ctx) error {
	var in dto.LabelSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pdf, err := h.uc.LabelSheet(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment("etiquetas-ean13.pdf")
	c.Type("pdf")
	return c.Send(pdf)
}
