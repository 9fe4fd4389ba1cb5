// Package tax implementa el evaluador de fórmulas fiscales (ISR, IVA, IEPS, PTU).
// Es un servicio de dominio puro: no hace I/O y siempre devuelve un resultado.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// Tasas y límites fijos (no configurables).
var (
	rateMoralGeneral = decimal.RequireFromString("0.30")
	rateResico       = decimal.RequireFromString("0.01")
	capResico        = decimal.NewFromInt(20000)
	ratePTU          = decimal.RequireFromString("0.10")
	rateIVA          = decimal.RequireFromString("0.16")
	rateIEPS         = decimal.RequireFromString("0.08")

	fisicaBracket1Limit = decimal.NewFromInt(125900)
	fisicaBracket2Limit = decimal.NewFromInt(1000000)
	fisicaRate1         = decimal.RequireFromString("0.0192")
	fisicaBase2         = decimal.RequireFromString("2417.76")
	fisicaRate2         = decimal.RequireFromString("0.064")
	fisicaRate3         = decimal.RequireFromString("0.35")

	minDepreciationShare = decimal.RequireFromString("0.10")

	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Recomendaciones fijas.
const (
	RecIVA          = "Verificar IVA acreditable para reducir carga fiscal"
	RecIEPS         = "IEPS aplicable por tipo de actividad empresarial"
	RecDepreciation = "Considerar mayor depreciación de activos para reducir ISR"
	RecForeign      = "Revisar tratados de doble tributación para ingresos del extranjero"
	RecExempt       = "Validar correcta aplicación de ingresos exentos"
)

// Params entrada del evaluador.
type Params struct {
	Input      entity.FinancialInput
	EntityType string
	Regime     string
	Activity   string
	Period     string
}

// Calculate estima los impuestos del contribuyente.
// Orden: base gravable, ISR, PTU, IVA, IEPS, saldo a favor, ajuste mensual, recomendaciones.
// PTU y saldo a favor se calculan con el ISR anual antes del ajuste por periodo.
func Calculate(p Params) entity.TaxResult {
	in := p.Input
	res := entity.TaxResult{Recommendations: []string{}}

	res.CostOfGoodsSold = in.InventoryStart.Add(in.Expenses).Sub(in.InventoryEnd)
	res.TaxableIncome = TaxableIncome(in)

	res.ISR = ISR(p.EntityType, p.Regime, res.TaxableIncome)

	if p.EntityType == sat.EntityMoral && in.Employees > 0 && res.TaxableIncome.IsPositive() {
		res.PTU = res.TaxableIncome.Mul(ratePTU)
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("PTU estimado: %s para %d empleados", sat.FormatAmount(res.PTU), in.Employees))
	}

	if p.Regime != sat.RegimeResico {
		res.IVA = in.Income.Mul(rateIVA)
		res.Recommendations = append(res.Recommendations, RecIVA)
	}

	if sat.IEPSActivities[p.Activity] {
		res.IEPS = in.Income.Mul(rateIEPS)
		res.Recommendations = append(res.Recommendations, RecIEPS)
	}

	res.ProvisionalISR = res.ISR.Div(twelve)
	res.AnnualISR = res.ISR
	if in.ProvisionalPayments.GreaterThan(res.AnnualISR) {
		res.RefundDue = in.ProvisionalPayments.Sub(res.AnnualISR)
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Saldo a favor disponible: %s", sat.FormatAmount(res.RefundDue)))
	}

	if p.Period == sat.PeriodMonthly {
		res.ISR = res.ISR.Div(twelve)
		res.IVA = res.IVA.Div(twelve)
		res.IEPS = res.IEPS.Div(twelve)
		res.PTU = res.PTU.Div(twelve)
	}

	if in.Assets.IsPositive() && in.Depreciation.LessThan(in.Assets.Mul(minDepreciationShare)) {
		res.Recommendations = append(res.Recommendations, RecDepreciation)
	}
	if in.ForeignIncome.IsPositive() {
		res.Recommendations = append(res.Recommendations, RecForeign)
	}
	if in.ExemptIncome.IsPositive() {
		res.Recommendations = append(res.Recommendations, RecExempt)
	}

	res.TotalTax = res.ISR.Add(res.IVA).Add(res.IEPS).Add(res.PTU)
	res.NetIncome = in.Income.Sub(res.TotalTax)
	if in.Income.IsPositive() {
		res.EffectiveRate = res.TotalTax.Div(in.Income).Mul(hundred)
	} else {
		res.EffectiveRate = decimal.Zero
	}
	return res
}

// TaxableIncome base gravable: ingresos menos el mayor entre costo de ventas y gastos,
// deducciones y depreciación; nunca negativa.
func TaxableIncome(in entity.FinancialInput) decimal.Decimal {
	cogs := in.InventoryStart.Add(in.Expenses).Sub(in.InventoryEnd)
	base := in.Income.
		Sub(decimal.Max(cogs, in.Expenses)).
		Sub(in.Deductions).
		Sub(in.Depreciation)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}

// ISR anual según tipo de persona y régimen.
func ISR(entityType, regime string, taxable decimal.Decimal) decimal.Decimal {
	if entityType == sat.EntityFisica {
		return fisicaISR(taxable)
	}
	if regime == sat.RegimeResico {
		return decimal.Min(taxable.Mul(rateResico), capResico)
	}
	return taxable.Mul(rateMoralGeneral)
}

// fisicaISR tarifa progresiva de tres tramos para personas físicas.
func fisicaISR(taxable decimal.Decimal) decimal.Decimal {
	switch {
	case taxable.LessThanOrEqual(fisicaBracket1Limit):
		return taxable.Mul(fisicaRate1)
	case taxable.LessThanOrEqual(fisicaBracket2Limit):
		return fisicaBase2.Add(taxable.Sub(fisicaBracket1Limit).Mul(fisicaRate2))
	default:
		return taxable.Mul(fisicaRate3)
	}
}
