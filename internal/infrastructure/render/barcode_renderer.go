// Package render dibuja códigos EAN-13 y QR como PNG con boombuler/barcode.
package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
)

var _ barcodes.Renderer = (*BarcodeRenderer)(nil)

// BarcodeRenderer implementa barcodes.Renderer.
type BarcodeRenderer struct{}

// NewBarcodeRenderer construye el renderer.
func NewBarcodeRenderer() *BarcodeRenderer { return &BarcodeRenderer{} }

// EAN13PNG codifica y escala el código. ean.Encode vuelve a verificar el dígito de control.
func (r *BarcodeRenderer) EAN13PNG(code string, width, height int) ([]byte, error) {
	bc, err := ean.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("render: ean13: %w", err)
	}
	return encodePNG(bc, width, height)
}

// QRPNG codifica text con corrección de errores media.
func (r *BarcodeRenderer) QRPNG(text string, size int) ([]byte, error) {
	bc, err := qr.Encode(text, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("render: qr: %w", err)
	}
	return encodePNG(bc, size, size)
}

func encodePNG(bc barcode.Barcode, width, height int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("render: escalar %dx%d: %w", width, height, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("render: png: %w", err)
	}
	return buf.Bytes(), nil
}
