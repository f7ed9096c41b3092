// Package pdf implementa la representación PDF del reporte de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Fecha de generación                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Cantidad | % del total                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Items / Unidades                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-stock/internal/application/inventory"
)

var _ appinventory.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador. title se usa como encabezado y metadato del PDF.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Reporte de inventario"
	}
	return &MarotoReportGenerator{title: title}
}

// GenerateStockReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReportPDF(ctx context.Context, report dto.StockReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if report.Empty() {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(report)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func (g *MarotoReportGenerator) headerRow(report dto.StockReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("El stock está vacío.", props.Text{
			Style: fontstyle.Italic, Size: 10, Align: align.Center, Top: 2, Color: colorGray,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 7, align.Left),
		h("Cantidad", 3, align.Right),
		h("% del total", 2, align.Right),
	)
}

// tableDetailRows: una fila por item, en el orden del reporte.
func tableDetailRows(report dto.StockReportDTO) []core.Row {
	total := decimal.NewFromInt(int64(report.TotalUnits))
	hundred := decimal.NewFromInt(100)

	result := make([]core.Row, 0, len(report.Lines))
	for _, l := range report.Lines {
		share := decimal.Zero
		if total.GreaterThan(decimal.Zero) {
			share = decimal.NewFromInt(int64(l.Quantity)).Div(total).Mul(hundred)
		}
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(l.Item, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(formatUnits(l.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(share.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: cantidad de items y unidades totales, alineado a la derecha.
func totalsRow(report dto.StockReportDTO) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(14).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label("Items:", 1),
			label("Unidades:", 7),
		),
		col.New(3).Add(
			value(formatUnits(report.ItemCount), 1),
			value(formatUnits(report.TotalUnits), 7),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatUnits inserta puntos de miles. Ej: 25000 → "25.000".
func formatUnits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg, s = true, s[1:]
	}
	l := len(s)
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
