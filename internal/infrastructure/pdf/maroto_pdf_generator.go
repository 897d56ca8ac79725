// Package pdf genera los documentos imprimibles del almacén con Maroto v2.
//
// Hoja de etiquetas (A4, 3 columnas):
//
//	┌───────────────┬───────────────┬───────────────┐
//	│ ║│║║│║│║║│║│║ │ ║│║║│║│║║│║│║ │ ║│║║│║│║║│║│║ │
//	│ 7891234560018 │ 7890000000000 │ ...           │
//	└───────────────┴───────────────┴───────────────┘
//
// Lista de separación: tabla Parte | Descripción | Cant. | Ubicación | Solicitante | Fecha.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	bartype "github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const labelsPerRow = 3

var (
	_ barcodes.LabelSheetGenerator = (*MarotoPDFGenerator)(nil)
	_ usecase.PickListGenerator    = (*MarotoPDFGenerator)(nil)
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa la hoja de etiquetas y la lista de separación.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// LabelSheet una etiqueta EAN-13 por celda, tres por fila.
func (g *MarotoPDFGenerator) LabelSheet(ctx context.Context, title string, labels []barcodes.Label) ([]byte, error) {
	m := maroto.New(newConfig(title))
	m.AddRows(titleRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))

	for start := 0; start < len(labels); start += labelsPerRow {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+labelsPerRow, len(labels))
		m.AddRows(labelRows(labels[start:end])...)
	}

	return generate(m)
}

// PickList tabla de solicitudes pendientes para separar en el almacén.
func (g *MarotoPDFGenerator) PickList(ctx context.Context, title string, lines []usecase.PickListLine) ([]byte, error) {
	m := maroto.New(newConfig(title))
	m.AddRows(titleRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, l := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(pickRow(l))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de solicitudes: %d", len(lines)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
		}),
	)))

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
}

func titleRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 5,
		})),
	)
}

// labelRows barras y texto legible de hasta tres etiquetas.
func labelRows(labels []barcodes.Label) []core.Row {
	size := 12 / labelsPerRow
	bars := make([]core.Col, 0, labelsPerRow)
	captions := make([]core.Col, 0, labelsPerRow)
	for _, l := range labels {
		bars = append(bars, col.New(size).Add(code.NewBar(l.Code, props.Barcode{
			Percent: 80, Center: true, Type: bartype.EAN,
		})))
		captions = append(captions, col.New(size).Add(text.New(l.Caption, props.Text{
			Size: 8, Align: align.Center,
		})))
	}
	for len(bars) < labelsPerRow {
		bars = append(bars, col.New(size))
		captions = append(captions, col.New(size))
	}
	return []core.Row{
		row.New(20).Add(bars...),
		row.New(6).Add(captions...),
		row.New(4),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Parte", 2, align.Left),
		h("Descripción", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Ubicación", 2, align.Left),
		h("Solicitante", 2, align.Left),
		h("Fecha", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func pickRow(l usecase.PickListLine) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(l.PartNumber, 2, align.Left),
		cell(nonEmpty(l.PartName, "—"), 3, align.Left),
		cell(l.Quantity, 1, align.Center),
		cell(l.Location, 2, align.Left),
		cell(nonEmpty(l.Requester, "—"), 2, align.Left),
		cell(l.RequestedAt.Format("02/01/2006"), 2, align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
