package barcodes

import "context"

// Renderer dibuja códigos como imágenes PNG.
type Renderer interface {
	EAN13PNG(code string, width, height int) ([]byte, error)
	QRPNG(text string, size int) ([]byte, error)
}

// Label una etiqueta de la hoja: código y texto opcional bajo las barras.
type Label struct {
	Code    string
	Caption string
}

// LabelSheetGenerator arma documentos imprimibles con códigos.
type LabelSheetGenerator interface {
	LabelSheet(ctx context.Context, title string, labels []Label) ([]byte, error)
}
