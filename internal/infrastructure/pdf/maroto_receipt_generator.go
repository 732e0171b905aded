// Package pdf implementa la generación del comprobante de una transacción
// del ledger: "SALES INVOICE" para salidas y "PURCHASE ORDER" para entradas.
//
// Layout de la página carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título según tipo de transacción                    │
//	│  Negocio / Fecha / Transaction ID                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Billed To (Customer) | Ordered From (Supplier) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ITEM: producto, cantidad, precio unitario                   │
//	│  TOTAL: cantidad x precio, redondeado a 2 decimales          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/Almacen-api/internal/application/billing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// businessName nombre del negocio impreso en el encabezado del comprobante.
const businessName = "Inventory ERP-Lite"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

var _ billing.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante de una página y devuelve sus bytes.
// Función pura del snapshot: no consulta la base de datos.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, snap billing.ReceiptSnapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle(snap.Title(), true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(snap))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(businessRows(snap)...)
	m.AddRows(partyRows(snap)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(itemRows(snap)...)
	m.AddRows(totalRow(snap))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: "SALES INVOICE" o "PURCHASE ORDER", centrado.
func titleRow(snap billing.ReceiptSnapshot) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(snap.Title(), props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// businessRows: nombre del negocio, fecha y ID de la transacción.
func businessRows(snap billing.ReceiptSnapshot) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(businessName, props.Text{Size: 11, Top: 2}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Date: "+snap.Date.Format("2006-01-02 15:04:05"), props.Text{
				Size: 10, Color: colorGray,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Transaction ID: #"+snap.TransactionID, props.Text{
				Size: 10, Color: colorGray,
			}),
		)),
	}
}

// partyRows: etiqueta y nombre de la contraparte según el tipo.
func partyRows(snap billing.ReceiptSnapshot) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(snap.PartyLabel(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4,
			}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New(snap.PartyName, props.Text{Size: 11}),
		)),
	}
}

// itemRows: detalle del producto del movimiento.
func itemRows(snap billing.ReceiptSnapshot) []core.Row {
	detail := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10})),
			col.New(9).Add(text.New(value, props.Text{Size: 10})),
		)
	}
	return []core.Row{
		detail("Item:", snap.ProductName),
		detail("Quantity:", fmt.Sprintf("%d", snap.Quantity)),
		detail("Unit Price:", "$"+snap.UnitPrice.StringFixed(2)),
	}
}

// totalRow: cantidad x precio unitario, redondeado a 2 decimales.
func totalRow(snap billing.ReceiptSnapshot) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TOTAL: $"+snap.Total().StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 5, Color: colorPrimary,
			}),
		),
	)
}
