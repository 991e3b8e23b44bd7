// Package pdf genera el relatório de movimentações en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EstoqueSpy + título  │  Fecha de emisión + filtro   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas | Saídas | Saldo | Tags desconhecidas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Data | Hora | Produto | Tipo | Qtd | Responsável     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/estoquespy/internal/application/view"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntrada = &props.Color{Red: 22, Green: 130, Blue: 60}
	colorSaida   = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorWarn    = &props.Color{Red: 180, Green: 110, Blue: 0}
)

// MovementReport datos del relatório: filas ya filtradas (más reciente primero) y sus totales.
type MovementReport struct {
	Query       string
	GeneratedAt time.Time
	Rows        []view.MovementRow
	Totals      inventory.MovementTotals
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el relatório con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, report MovementReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Movimentações", true).
		WithAuthor("EstoqueSpy", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhuma movimentação encontrada", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(report.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report MovementReport) core.Row {
	filter := "Todos os registros"
	if report.Query != "" {
		filter = "Filtro: " + report.Query
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("EstoqueSpy", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de Movimentações", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido em "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(filter, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func totalsRow(t inventory.MovementTotals) core.Row {
	box := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6}),
		)
	}
	balanceColor := colorEntrada
	if t.Balance < 0 {
		balanceColor = colorSaida
	}
	return row.New(16).Add(
		box("Total de Entradas", strconv.Itoa(t.TotalEntradas), colorEntrada),
		box("Total de Saídas", strconv.Itoa(t.TotalSaidas), colorSaida),
		box("Saldo", strconv.Itoa(t.Balance), balanceColor),
		box("Tags desconhecidas", strconv.Itoa(t.Unregistered), colorWarn),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Hora", 1, align.Left),
		h("Produto", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Qtd.", 1, align.Right),
		h("Responsável", 3, align.Left),
	)
}

// tableDetailRows una fila por movimiento; las etiquetas desconocidas en color de alerta.
func tableDetailRows(rows []view.MovementRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		nameColor := (*props.Color)(nil)
		if r.Unregistered {
			nameColor = colorWarn
		}
		typeLabel, typeColor := "-", colorGray
		switch {
		case r.IsEntrada():
			typeLabel, typeColor = "Entrada", colorEntrada
		case r.IsSaida():
			typeLabel, typeColor = "Saída", colorSaida
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Time, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1, Left: 1, Color: nameColor})),
			col.New(1).Add(text.New(typeLabel, props.Text{Size: 8, Align: align.Center, Top: 1, Color: typeColor})),
			col.New(1).Add(text.New(strconv.Itoa(r.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(r.Responsible, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}
