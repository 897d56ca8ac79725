// Package barcodes expone la generación, validación y render de códigos EAN-13 y QR.
package barcodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
	"github.com/jhoicas/Inventario-repuestos/pkg/logger"
)

// Límites de las operaciones por lote.
const (
	MaxGenerateCount = 100
	MaxLabels        = 200
	MaxQRBytes       = 2048
)

// Settings parámetros de render y prefijo por defecto.
type Settings struct {
	Prefix string
	Width  int
	Height int
	QRSize int
}

// UseCase casos de uso de códigos de barras.
type UseCase struct {
	gen      *barcode.Generator
	renderer Renderer
	sheets   LabelSheetGenerator
	cfg      Settings
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. gen nil = dígitos aleatorios.
func NewUseCase(gen *barcode.Generator, renderer Renderer, sheets LabelSheetGenerator, cfg Settings, log *logger.Logger) *UseCase {
	if gen == nil {
		gen = barcode.NewGenerator(nil)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = barcode.DefaultPrefix
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{gen: gen, renderer: renderer, sheets: sheets, cfg: cfg, log: log.Component("barcodes")}
}

// Generate crea count códigos nuevos con el prefijo dado (vacío = configurado).
func (uc *UseCase) Generate(prefix string, count int) (*dto.GenerateEANResponse, error) {
	if count == 0 {
		count = 1
	}
	if count < 0 || count > MaxGenerateCount {
		return nil, fmt.Errorf("%w: count debe estar entre 1 y %d", domain.ErrInvalidInput, MaxGenerateCount)
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = uc.cfg.Prefix
	}
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		code, err := uc.gen.Generate(prefix)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	uc.log.Debug().Str("prefix", prefix).Int("count", count).Msg("códigos EAN-13 generados")
	return &dto.GenerateEANResponse{Code: codes[0], Codes: codes}, nil
}

// CheckDigit calcula el dígito verificador de una carga de 12 dígitos.
func (uc *UseCase) CheckDigit(payload string) (*dto.CheckDigitResponse, error) {
	d, err := barcode.CheckDigit(payload)
	if err != nil {
		return nil, err
	}
	return &dto.CheckDigitResponse{Payload: payload, CheckDigit: d, Code: fmt.Sprintf("%s%d", payload, d)}, nil
}

// Validate verifica un código completo. Longitud o caracteres inválidos son error, no false.
func (uc *UseCase) Validate(code string) (*dto.ValidateEANResponse, error) {
	ok, err := barcode.Validate(code)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateEANResponse{Code: code, Valid: ok}, nil
}

// RenderEAN13 devuelve el PNG de un código válido.
func (uc *UseCase) RenderEAN13(code string) ([]byte, error) {
	if err := requireValid(code); err != nil {
		return nil, err
	}
	png, err := uc.renderer.EAN13PNG(code, uc.cfg.Width, uc.cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("render ean13 %s: %w", code, err)
	}
	return png, nil
}

// RenderQR devuelve el PNG QR del texto (no vacío, hasta MaxQRBytes bytes).
func (uc *UseCase) RenderQR(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text requerido", domain.ErrInvalidInput)
	}
	if len(text) > MaxQRBytes {
		return nil, fmt.Errorf("%w: text supera %d bytes", domain.ErrInvalidInput, MaxQRBytes)
	}
	png, err := uc.renderer.QRPNG(text, uc.cfg.QRSize)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	return png, nil
}

// LabelSheet genera el PDF de etiquetas para los códigos dados; todos deben ser válidos.
func (uc *UseCase) LabelSheet(ctx context.Context, in dto.LabelSheetRequest) ([]byte, error) {
	if len(in.Codes) == 0 {
		return nil, fmt.Errorf("%w: codes requerido", domain.ErrInvalidInput)
	}
	if len(in.Codes) > MaxLabels {
		return nil, fmt.Errorf("%w: máximo %d etiquetas", domain.ErrInvalidInput, MaxLabels)
	}
	labels := make([]Label, 0, len(in.Codes))
	for _, c := range in.Codes {
		c = strings.TrimSpace(c)
		if err := requireValid(c); err != nil {
			return nil, err
		}
		labels = append(labels, Label{Code: c, Caption: c})
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Etiquetas EAN-13"
	}
	return uc.sheets.LabelSheet(ctx, title, labels)
}

// DefaultPrefix prefijo configurado.
func (uc *UseCase) DefaultPrefix() string { return uc.cfg.Prefix }

// requireValid exige un EAN-13 bien formado y con dígito verificador correcto.
func requireValid(code string) error {
	ok, err := barcode.Validate(code)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: dígito verificador incorrecto en %s", domain.ErrInvalidInput, code)
	}
	return nil
}
