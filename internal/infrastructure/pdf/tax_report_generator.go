// Package pdf genera el resumen PDF de un cálculo fiscal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del cálculo     │  Ejercicio + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERFIL: Tipo de persona / Régimen / Actividad / Periodo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto  (datos capturados)                 │
//	│  TABLA: Impuesto | Monto  (ISR, IVA, IEPS, PTU)              │
//	│  TOTALES: Total impuestos / Ingreso neto / Tasa efectiva     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECOMENDACIONES + QR con el resumen                         │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

var _ ports.TaxReportGenerator = (*MarotoTaxReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 80, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var (
	entityLabels = map[string]string{
		sat.EntityMoral:  "Persona moral",
		sat.EntityFisica: "Persona física",
	}
	periodLabels = map[string]string{
		sat.PeriodMonthly: "Mensual",
		sat.PeriodAnnual:  "Anual",
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoTaxReportGenerator implementa ports.TaxReportGenerator usando Maroto v2.
type MarotoTaxReportGenerator struct {
	now func() time.Time
}

// NewMarotoTaxReportGenerator construye el generador.
func NewMarotoTaxReportGenerator() *MarotoTaxReportGenerator {
	return &MarotoTaxReportGenerator{now: time.Now}
}

// GenerateTaxReport genera el PDF del borrador y devuelve sus bytes.
func (g *MarotoTaxReportGenerator) GenerateTaxReport(_ context.Context, draft *entity.TaxDraft) ([]byte, error) {
	if draft == nil || draft.Result == nil {
		return nil, fmt.Errorf("pdf: el borrador no tiene cálculo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cálculo fiscal "+draft.FiscalYear, true).
		WithAuthor("SmarTax AI", true).
		Build()

	m := maroto.New(cfg)
	res := draft.Result

	m.AddRows(headerRow(draft, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(profileRow(draft))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Datos capturados", "Monto"))
	m.AddRows(amountRows(sourceLines(draft))...)

	m.AddRows(row.New(3))
	m.AddRows(tableHeaderRow("Impuesto", "Monto"))
	m.AddRows(amountRows([]amountLine{
		{"ISR", res.ISR},
		{"IVA", res.IVA},
		{"IEPS", res.IEPS},
		{"PTU", res.PTU},
		{"ISR provisional mensual", res.ProvisionalISR},
		{"Saldo a favor", res.RefundDue},
	})...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(res))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(draft)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del cálculo (izq) y ejercicio + fecha de emisión (der).
func headerRow(draft *entity.TaxDraft, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(draft.Name, "Cálculo fiscal"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estimación de impuestos federales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EJERCICIO FISCAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(draft.FiscalYear, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// profileRow: tipo de persona, régimen, actividad y periodo.
func profileRow(draft *entity.TaxDraft) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PERFIL DEL CONTRIBUYENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Régimen: %s   |   Actividad: %s   |   Periodo: %s",
				nonEmpty(entityLabels[draft.EntityType], draft.EntityType),
				draft.Regime,
				draft.BusinessActivity,
				nonEmpty(periodLabels[draft.BasicData.Period], draft.BasicData.Period),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de tabla de dos columnas.
func tableHeaderRow(concept, amount string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(concept, 8, align.Left),
		h(amount, 4, align.Right),
	)
}

type amountLine struct {
	label  string
	amount decimal.Decimal
}

// sourceLines montos capturados distintos de cero, en el orden del formulario.
func sourceLines(draft *entity.TaxDraft) []amountLine {
	b, a := draft.BasicData, draft.AdvancedData
	raw := []struct{ label, value string }{
		{"Ingresos", b.Income},
		{"Gastos", b.Expenses},
		{"Deducciones", b.Deductions},
		{"Activos", a.Assets},
		{"Depreciación", a.Depreciation},
		{"Inventario inicial", a.InventoryStart},
		{"Inventario final", a.InventoryEnd},
		{"Pagos provisionales", a.ProvisionalPayments},
		{"Retenciones", a.Retentions},
		{"PTU pagada", a.PTUPaid},
		{"Ingresos del extranjero", a.ForeignIncome},
		{"Ingresos exentos", a.ExemptIncome},
	}
	out := make([]amountLine, 0, len(raw))
	for _, r := range raw {
		v, err := tax.ParseAmount(r.value)
		if err != nil || v.IsZero() {
			continue
		}
		out = append(out, amountLine{r.label, v})
	}
	return out
}

// amountRows: una fila por concepto.
func amountRows(lines []amountLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(l.label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(sat.FormatAmount(l.amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(res *entity.TaxResult) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Ingreso neto:"),
			label("Tasa efectiva:"),
			label("TOTAL IMPUESTOS:"),
		),
		col.New(4).Add(
			value(sat.FormatAmount(res.NetIncome)),
			value(res.EffectiveRate.StringFixed(2)+"%"),
			grand(sat.FormatAmount(res.TotalTax)),
		),
	)
}

// footerRows: recomendaciones y QR con el resumen del cálculo.
func footerRows(draft *entity.TaxDraft) []core.Row {
	res := draft.Result
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RECOMENDACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, r := range res.Recommendations {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+r, props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	rows = append(rows, row.New(3))

	summary := fmt.Sprintf("SMARTAX|%s|%s|%s|ISR=%s|IVA=%s|IEPS=%s|PTU=%s|TOTAL=%s",
		draft.FiscalYear, draft.EntityType, draft.Regime,
		res.ISR.StringFixed(2), res.IVA.StringFixed(2), res.IEPS.StringFixed(2),
		res.PTU.StringFixed(2), res.TotalTax.StringFixed(2))
	rows = append(rows, row.New(40).Add(
		col.New(3).Add(code.NewQr(summary, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Estimación informativa. No sustituye la declaración presentada ante el SAT "+
				"ni la asesoría de un contador certificado.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
