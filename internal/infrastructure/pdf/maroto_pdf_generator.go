// Package pdf implementa la representación imprimible de los vales de
// entrada y salida del almacén, para firma en patio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: VALE DE ENTRADA/SALIDA  │  N° Vale + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESPONSABLE: usuario de oficina que registró el vale       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | Unidad | Trabajador                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE UNIDADES                                           │
//	│  FOOTER: líneas de firma (entrega / recibe)                  │
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

	"github.com/jhoicas/almacen-api/internal/application/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ledger.VoucherPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ ledger.VoucherPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateVoucherPDF genera el PDF del vale y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateVoucherPDF(_ context.Context, doc *ledger.VoucherDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(voucherTitle(doc.Kind), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(responsableRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(doc.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc.Lines))

	m.AddRows(line.NewRow(3))
	m.AddRows(signatureRow(doc.Kind))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func voucherTitle(kind string) string {
	if kind == "exit" {
		return "VALE DE SALIDA"
	}
	return "VALE DE ENTRADA"
}

// headerRow: título del vale (izq) y número + fecha (der).
func headerRow(doc *ledger.VoucherDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ALMACÉN DE OBRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(voucherTitle(doc.Kind), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+doc.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+doc.Date, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// responsableRow: usuario de oficina que registró el movimiento.
func responsableRow(doc *ledger.VoucherDocument) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("REGISTRADO POR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Username, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Artículo", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Trabajador", 3, align.Left),
	)
}

// tableLineRows: una fila por línea del vale.
func tableLineRows(lines []ledger.VoucherDocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				strconv.FormatInt(l.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.WorkerName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalRow: total de unidades del vale, alineado a la derecha.
func totalRow(lines []ledger.VoucherDocumentLine) core.Row {
	var total int64
	for _, l := range lines {
		total += l.Quantity
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL UNIDADES:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(strconv.FormatInt(total, 10), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// signatureRow: líneas de firma para quien entrega y quien recibe.
func signatureRow(kind string) core.Row {
	entrega, recibe := "Firma almacén (entrega)", "Firma trabajador (recibe)"
	if kind == "entry" {
		entrega, recibe = "Firma proveedor/trabajador (entrega)", "Firma almacén (recibe)"
	}
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 12, Color: colorGray,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 18, Color: colorGray,
			}),
		)
	}
	return row.New(24).Add(sig(entrega), sig(recibe))
}
