package optimization

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// Niveles de riesgo del análisis avanzado.
const (
	RiskHigh   = "alto"
	RiskMedium = "medio"
	RiskLow    = "bajo"
)

var (
	baseRate        = decimal.RequireFromString("0.30")
	paybackRate     = decimal.RequireFromString("0.02")
	riskHighTaxable = decimal.NewFromInt(5000000)
	riskMidTaxable  = decimal.NewFromInt(1000000)
	hundred         = decimal.NewFromInt(100)
)

var riskFactors = []string{
	"Revisión detallada de deducciones recomendada",
	"Documentación de gastos requiere atención",
	"Estructura fiscal permite optimizaciones",
}

var analysisNextSteps = []string{
	"Implementar depreciación acelerada este trimestre",
	"Documentar programas de capacitación para deducciones",
	"Evaluar inversiones en tecnología verde",
	"Revisar estructura de gastos deducibles",
}

// Projections proyección del análisis avanzado.
type Projections struct {
	CurrentTax    decimal.Decimal `json:"currentTax"`
	OptimizedTax  decimal.Decimal `json:"optimizedTax"`
	TotalSavings  decimal.Decimal `json:"totalSavings"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	PaybackPeriod int64           `json:"paybackPeriod"` // meses
}

// Analysis resultado del análisis avanzado de un perfil.
type Analysis struct {
	RiskLevel     string      `json:"riskLevel"`
	RiskFactors   []string    `json:"riskFactors"`
	Optimizations []Estimate  `json:"optimizations"`
	Projections   Projections `json:"projections"`
	NextSteps     []string    `json:"nextSteps"`
	// Scenario resultado base del escenario, con deducciones.
	Scenario entity.ComparisonResults `json:"scenario"`
}

// Analyze evalúa el perfil en el instante at contra el catálogo. El impuesto base es (ingresos - gastos) * 30%
// y el ahorro total suma todas las estrategias aplicables, no solo las mostradas.
func Analyze(p Profile, topN int, at time.Time) Analysis {
	taxable := p.Income.Sub(p.Expenses)
	currentTax := taxable.Mul(baseRate)

	all := Applicable(p, 0)
	total := decimal.Zero
	for _, e := range all {
		total = total.Add(e.EstimatedSaving)
	}
	if topN > 0 && len(all) > topN {
		all = all[:topN]
	}

	optimized := currentTax.Sub(total)
	proj := Projections{
		CurrentTax:    currentTax,
		OptimizedTax:  optimized,
		TotalSavings:  total,
		EffectiveRate: decimal.Zero,
	}
	if p.Income.IsPositive() {
		proj.EffectiveRate = optimized.Div(p.Income).Mul(hundred)
		proj.PaybackPeriod = total.Div(p.Income.Mul(paybackRate)).Ceil().IntPart()
	}

	return Analysis{
		RiskLevel:     RiskLevel(taxable),
		RiskFactors:   append([]string(nil), riskFactors...),
		Optimizations: all,
		Projections:   proj,
		NextSteps:     append([]string(nil), analysisNextSteps...),
		Scenario:      EvaluateScenario(p, at),
	}
}

// EvaluateScenario base = ingresos - gastos - deducciones, impuesto base al 30%,
// ingreso neto = ingresos - impuesto base. La tasa efectiva es 0 sin ingresos.
func EvaluateScenario(p Profile, at time.Time) entity.ComparisonResults {
	taxable := p.Income.Sub(p.Expenses).Sub(p.Deductions)
	baseTax := taxable.Mul(baseRate)
	r := entity.ComparisonResults{
		TaxableIncome: taxable,
		BaseTax:       baseTax,
		NetIncome:     p.Income.Sub(baseTax),
		EffectiveRate: decimal.Zero,
		Timestamp:     at,
	}
	if !p.Income.IsZero() {
		r.EffectiveRate = baseTax.Div(p.Income).Mul(hundred)
	}
	return r
}

// RiskLevel nivel de riesgo por base gravable.
func RiskLevel(taxable decimal.Decimal) string {
	switch {
	case taxable.GreaterThan(riskHighTaxable):
		return RiskHigh
	case taxable.GreaterThan(riskMidTaxable):
		return RiskMedium
	default:
		return RiskLow
	}
}
