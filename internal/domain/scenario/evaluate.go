package scenario

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/optimization"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// Niveles de riesgo del simulador.
const (
	RiskHigh   = "Alto"
	RiskMedium = "Medio"
	RiskLow    = "Bajo"
)

// Mensajes sectoriales.
const (
	InsightOpportunities = "Tu industria tiene oportunidades adicionales de optimización fiscal"
	InsightDiversify     = "Considera diversificar hacia sectores con mayores beneficios fiscales"
)

var nextSteps = []string{
	"Implementar estrategias de mayor impacto primero",
	"Documentar todos los cambios para auditorías",
	"Monitorear resultados trimestralmente",
	"Revisar nuevas oportunidades semestralmente",
}

var (
	netBenefitRate   = decimal.RequireFromString("0.85")
	paybackRate      = decimal.RequireFromString("0.02")
	restructureRate  = decimal.RequireFromString("0.04")
	paymentPlanRate  = decimal.RequireFromString("0.15")
	lostDeductRate   = decimal.RequireFromString("0.03")
	insightThreshold = decimal.RequireFromString("1.1")
	riskHighIncome   = decimal.NewFromInt(10000000)
	riskMidIncome    = decimal.NewFromInt(5000000)
	hundred          = decimal.NewFromInt(100)
)

// amount lectura tolerante: el texto ya fue validado en SetSituation.
func amount(raw string) decimal.Decimal {
	v, err := tax.ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// Evaluate calcula los resultados del escenario para la situación y optimizaciones dadas.
func Evaluate(sit entity.Situation, selected map[string]bool) (entity.ScenarioResults, entity.AIRecommendations) {
	income := amount(sit.Income)
	currentTax := amount(sit.CurrentTax)

	total := decimal.Zero
	applied := []entity.AppliedOptimization{}
	for _, q := range optimization.SimulatorCatalog() {
		if !selected[q.Key] {
			continue
		}
		saving := q.Saving(income)
		total = total.Add(saving)
		applied = append(applied, entity.AppliedOptimization{
			ID:              q.Key,
			Name:            q.Name,
			Description:     q.Description,
			Impact:          q.Impact,
			Requirements:    q.Requirements,
			EstimatedSaving: saving,
		})
	}

	results := entity.ScenarioResults{
		CurrentTax:           currentTax,
		OptimizedTax:         decimal.Max(currentTax.Sub(total), decimal.Zero),
		TotalSavings:         total,
		SavingsPercentage:    decimal.Zero,
		NetBenefit:           total.Mul(netBenefitRate),
		AppliedOptimizations: applied,
	}
	if currentTax.IsPositive() {
		results.SavingsPercentage = total.Div(currentTax).Mul(hundred).Round(1)
	}
	if income.IsPositive() {
		results.PaybackPeriod = total.Div(income.Mul(paybackRate)).Ceil().IntPart()
	}

	return results, recommendations(sit.Industry, income, currentTax)
}

func recommendations(industry string, income, currentTax decimal.Decimal) entity.AIRecommendations {
	risk := RiskLevel(income)
	multiplier := sat.IndustryMultiplier(industry)
	insight := InsightDiversify
	if multiplier.GreaterThan(insightThreshold) {
		insight = InsightOpportunities
	}

	return entity.AIRecommendations{
		RiskAssessment: entity.RiskAssessment{
			Level:       risk,
			Description: fmt.Sprintf("Perfil de riesgo %s basado en volumen de ingresos y complejidad fiscal", strings.ToLower(risk)),
		},
		Suggestions: []entity.AISuggestion{
			{
				Title:           "Reestructuración de Gastos",
				Description:     "Reclasificar gastos operativos para maximizar deducciones",
				PotentialSaving: income.Mul(restructureRate),
				Complexity:      "Medio",
				TimeFrame:       "2-3 meses",
			},
			{
				Title:           "Planificación de Pagos",
				Description:     "Optimizar timing de pagos para diferir impuestos",
				PotentialSaving: currentTax.Mul(paymentPlanRate),
				Complexity:      "Bajo",
				TimeFrame:       "1 mes",
			},
			{
				Title:           "Análisis de Deducciones Perdidas",
				Description:     "Identificar deducciones no aprovechadas en ejercicios anteriores",
				PotentialSaving: income.Mul(lostDeductRate),
				Complexity:      "Alto",
				TimeFrame:       "4-6 meses",
			},
		},
		IndustryInsights: entity.IndustryInsight{
			Multiplier:     multiplier,
			Recommendation: insight,
		},
		NextSteps: append([]string(nil), nextSteps...),
	}
}

// RiskLevel nivel de riesgo por volumen de ingresos.
func RiskLevel(income decimal.Decimal) string {
	switch {
	case income.GreaterThan(riskHighIncome):
		return RiskHigh
	case income.GreaterThan(riskMidIncome):
		return RiskMedium
	default:
		return RiskLow
	}
}
