// Package pdf implementa la generación del comprobante de estadía que se
// entrega al huésped en el checkout.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la pousada  │  N° Reserva + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HUÉSPED: Nombre + CPF + contacto                           │
//	│  ESTADÍA: Cuarto / Check-in / Check-out / Noches            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | Valor                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Hospedaje / Consumos / Servicios / TOTAL          │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formatea números con separadores brasileños (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var _ reservation.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa reservation.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	data *reservation.ReceiptData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Hospedagem", true).
		WithAuthor(data.PousadaName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(guestRow(data.Client))
	m.AddRows(stayRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(accommodationRow(data))
	for _, r := range lineRows(data.ProductLines) {
		m.AddRows(r)
	}
	for _, r := range lineRows(data.ServiceLines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la pousada (izq) y reserva + fecha (der).
func headerRow(data *reservation.ReceiptData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.PousadaName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprovante de Hospedagem", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(data.Reservation.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// guestRow: datos del huésped.
func guestRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("HÓSPEDE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.FullName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(client.CPF, "—"),
				nonEmpty(client.Phone, "—"),
				nonEmpty(client.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// stayRow: cuarto y fechas de la estadía.
func stayRow(data *reservation.ReceiptData) core.Row {
	checkOut := "—"
	if data.Reservation.ActualCheckOutDate != nil {
		checkOut = data.Reservation.ActualCheckOutDate.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ESTADIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Quarto %s (%s)   |   Check-in: %s   |   Check-out: %s   |   %d noite(s)",
				data.Room.Number, data.Room.Type,
				data.Reservation.CheckInDate.Format("02/01/2006"),
				checkOut,
				data.Charges.Nights,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cargos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 8, align.Left),
		h("Qtd.", 1, align.Center),
		h("Valor", 3, align.Right),
	)
}

// accommodationRow: línea de hospedaje (noches × tarifa).
func accommodationRow(data *reservation.ReceiptData) core.Row {
	desc := fmt.Sprintf("Hospedagem (%d x R$ %s)", data.Charges.Nights, formatMoney(data.Charges.DailyRate))
	return row.New(7).Add(
		col.New(8).Add(text.New(desc, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", data.Charges.Nights),
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New("R$ "+formatMoney(data.Charges.AccommodationTotal),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// lineRows: una fila por consumo o servicio.
func lineRows(lines []reservation.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("R$ "+formatMoney(l.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. El TOTAL es el monto
// efectivamente cobrado (Charges.TotalAmount); cuando hubo descuento en el
// checkout se muestra como línea propia.
func totalsRow(data *reservation.ReceiptData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{
		label("Hospedagem:"),
		label("Consumos:"),
		label("Serviços:"),
	}
	values := []core.Component{
		value("R$ " + formatMoney(data.Charges.AccommodationTotal)),
		value("R$ " + formatMoney(data.Charges.ProductsTotal)),
		value("R$ " + formatMoney(data.Charges.ServicesTotal)),
	}
	if data.Charges.DiscountAmount.IsPositive() {
		labels = append(labels, label("Desconto:"))
		values = append(values, value("- R$ "+formatMoney(data.Charges.DiscountAmount)))
	}
	labels = append(labels, grandLabel("TOTAL:"))
	values = append(values, grandValue("R$ "+formatMoney(data.Charges.TotalAmount)))

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
		col.New(1),
	)
}

// footerRow: leyenda de cierre.
func footerRow(data *reservation.ReceiptData) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("%s agradece a sua visita. Este comprovante não substitui documento fiscal.", data.PousadaName),
			props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea el monto con separadores pt-BR. Ej: 1234.5 → "1.234,50".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return ptBR.Sprintf("%.2f", f)
}

// shortID acorta el UUID de la reserva para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
