// Package pdf genera el comprobante de venta en PDF.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre del comercio │ N° comprobante │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Nombre + documento + fecha          │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Total      │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                │
//	└───────────────────────────────────────────────┘
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

	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el comprobante de una venta confirmada usando Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(receipt *sales.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(&receipt.Purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(&receipt.Purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(&receipt.Purchase))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del comercio (izq) y número de comprobante (der).
func (g *ReceiptGenerator) headerRow(receipt *sales.Receipt) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de venta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("N° "+receipt.Number, props.Text{Size: 8, Align: align.Right, Top: 2}),
			text.New(receipt.Purchase.PurchaseAt, props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		),
	)
}

func customerRow(p *entity.Purchase) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Cliente: "+p.CustomerName, props.Text{Size: 9, Top: 1}),
			text.New("Documento: "+p.CustomerID, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(6).Add(
		text.NewCol(2, "Cant.", header),
		text.NewCol(5, "Artículo", header),
		text.NewCol(2, "P. Unit.", mergeAlign(header, align.Right)),
		text.NewCol(3, "Total", mergeAlign(header, align.Right)),
	)
}

func itemRow(p *entity.Purchase) core.Row {
	desc := fmt.Sprintf("%s %s %s (serie %s)", p.Kind, p.Brand, p.Model, p.Serial)
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		text.NewCol(2, fmt.Sprintf("%d", p.Quantity), cell),
		text.NewCol(5, desc, cell),
		text.NewCol(2, p.UnitPrice.StringFixed(2), mergeAlign(cell, align.Right)),
		text.NewCol(3, p.TotalPrice.StringFixed(2), mergeAlign(cell, align.Right)),
	)
}

func totalRow(p *entity.Purchase) core.Row {
	return row.New(10).Add(
		text.NewCol(9, "TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		}),
		text.NewCol(3, "$ "+p.TotalPrice.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		}),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
