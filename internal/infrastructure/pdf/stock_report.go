// Package pdf genera el reporte de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  RESUMEN: ítems en stock bajo / a reordenar / valor total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA stock bajo: SKU | Nombre | Categoría | Cant | Mín ... │
//	│  TABLA reorden:    SKU | Nombre | Categoría | Cant | Pto ... │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

var _ usecase.StockReportGenerator = (*StockReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa usecase.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	title   string
	printer *message.Printer
}

// NewStockReportGenerator construye el generador. lang define el formato de números.
func NewStockReportGenerator(title string, lang language.Tag) *StockReportGenerator {
	if title == "" {
		title = "Reporte de stock"
	}
	return &StockReportGenerator{title: title, printer: message.NewPrinter(lang)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(report *dto.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(g.summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("ÍTEMS EN STOCK BAJO (cantidad ≤ mínimo)"))
	m.AddRows(tableHeaderRow("Mín."))
	m.AddRows(g.itemRows(report.LowStock, func(it dto.ItemResponse) int { return it.MinimumStockLevel })...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("ÍTEMS A REORDENAR (cantidad ≤ punto de reorden)"))
	m.AddRows(tableHeaderRow("Pto. reorden"))
	m.AddRows(g.itemRows(report.NeedsReorder, func(it dto.ItemResponse) int { return it.ReorderPoint })...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StockReportGenerator) headerRow(report *dto.StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func (g *StockReportGenerator) summaryRow(report *dto.StockReport) core.Row {
	return row.New(12).Add(
		col.New(4).Add(text.New(g.printer.Sprintf("Stock bajo: %d", len(report.LowStock)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 3,
		})),
		col.New(4).Add(text.New(g.printer.Sprintf("A reordenar: %d", len(report.NeedsReorder)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 3,
		})),
		col.New(4).Add(text.New("Valor total: "+g.money(report.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 3, Align: align.Right, Color: colorPrimary,
		})),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(thresholdLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("SKU", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h(thresholdLabel, 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// itemRows una fila por ítem; threshold elige la columna de umbral (mínimo o reorden).
func (g *StockReportGenerator) itemRows(items []dto.ItemResponse, threshold func(dto.ItemResponse) int) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin ítems.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		qty := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if it.QuantityInStock == 0 {
			qty.Color = colorAlert
			qty.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.CategoryName, "-"), props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", it.QuantityInStock), qty)),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", threshold(it)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(it.TotalValue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separadores del idioma del generador y 2 decimales.
func (g *StockReportGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
