package scenario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/scenario"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func atStep2(t *testing.T, sit entity.Situation) *entity.Scenario {
	t.Helper()
	s := entity.NewScenario()
	require.NoError(t, scenario.SetSituation(s, sit))
	require.NoError(t, scenario.Advance(s))
	require.Equal(t, entity.StepOptimizationSelection, s.Step)
	return s
}

// ── Guardas de transición ─────────────────────────────────────────────────────

func TestAdvance_Paso1RequiereIngresosEImpuesto(t *testing.T) {
	cases := []entity.Situation{
		{Income: "", CurrentTax: "100"},
		{Income: "100", CurrentTax: ""},
		{Income: "  ", CurrentTax: "  "},
	}
	for _, sit := range cases {
		s := entity.NewScenario()
		require.NoError(t, scenario.SetSituation(s, sit))
		before := s.Clone()

		err := scenario.Advance(s)
		assert.ErrorIs(t, err, domain.ErrGuardRejected)
		assert.Equal(t, before, s, "un rechazo no modifica el estado")
	}
}

func TestAdvance_FlujoCompleto(t *testing.T) {
	s := atStep2(t, entity.Situation{Income: "1000000", CurrentTax: "300000", Industry: "technology"})
	require.NoError(t, scenario.ToggleOptimization(s, entity.OptAcceleratedDepreciation))

	require.NoError(t, scenario.Advance(s))
	assert.Equal(t, entity.StepAnalyzing, s.Step)
	assert.True(t, s.Analyzing)

	assert.ErrorIs(t, scenario.Advance(s), domain.ErrGuardRejected, "3→4 solo con Complete")

	require.NoError(t, scenario.Complete(s))
	assert.Equal(t, entity.StepResults, s.Step)
	assert.False(t, s.Analyzing)
	require.NotNil(t, s.Results)
	require.NotNil(t, s.AIRecommendations)
	assert.ErrorIs(t, scenario.Advance(s), domain.ErrGuardRejected)
}

func TestBack_SoloDelPaso2AlPaso1(t *testing.T) {
	s := atStep2(t, entity.Situation{Income: "1", CurrentTax: "1"})
	require.NoError(t, scenario.Back(s))
	assert.Equal(t, entity.StepInput, s.Step)
	assert.ErrorIs(t, scenario.Back(s), domain.ErrGuardRejected)

	s = atStep2(t, entity.Situation{Income: "1", CurrentTax: "1"})
	require.NoError(t, scenario.Advance(s))
	assert.ErrorIs(t, scenario.Back(s), domain.ErrGuardRejected, "sin retroceso desde análisis")
	require.NoError(t, scenario.Complete(s))
	assert.ErrorIs(t, scenario.Back(s), domain.ErrGuardRejected, "sin retroceso desde resultados")
}

func TestComplete_FueraDelPaso3Rechazado(t *testing.T) {
	s := entity.NewScenario()
	assert.ErrorIs(t, scenario.Complete(s), domain.ErrGuardRejected)
}

func TestSetSituation_SoloEnPaso1(t *testing.T) {
	s := atStep2(t, entity.Situation{Income: "1", CurrentTax: "1"})
	err := scenario.SetSituation(s, entity.Situation{Income: "5"})
	assert.ErrorIs(t, err, domain.ErrGuardRejected)
	assert.Equal(t, "1", s.Situation.Income)
}

func TestSetSituation_MontosInvalidos(t *testing.T) {
	s := entity.NewScenario()
	err := scenario.SetSituation(s, entity.Situation{Income: "abc", CurrentTax: "-3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "income")
	assert.Contains(t, err.Error(), "currentTax")
	assert.Equal(t, "", s.Situation.Income)
}

func TestSetOptimization_SoloEnPaso2YClaveConocida(t *testing.T) {
	s := entity.NewScenario()
	assert.ErrorIs(t, scenario.ToggleOptimization(s, entity.OptResearchCredits), domain.ErrGuardRejected)

	s = atStep2(t, entity.Situation{Income: "1", CurrentTax: "1"})
	assert.ErrorIs(t, scenario.ToggleOptimization(s, "magia"), domain.ErrInvalidInput)

	require.NoError(t, scenario.ToggleOptimization(s, entity.OptResearchCredits))
	assert.True(t, s.Optimizations[entity.OptResearchCredits])
	require.NoError(t, scenario.ToggleOptimization(s, entity.OptResearchCredits))
	assert.False(t, s.Optimizations[entity.OptResearchCredits])
}

func TestReset_DesdeCualquierPaso(t *testing.T) {
	s := atStep2(t, entity.Situation{Income: "1000", CurrentTax: "10", Industry: "retail"})
	scenario.SetName(s, "Escenario Q1")
	require.NoError(t, scenario.ToggleOptimization(s, entity.OptCharityDeductions))
	require.NoError(t, scenario.Advance(s))
	require.NoError(t, scenario.Complete(s))

	scenario.Reset(s)
	assert.Equal(t, entity.NewScenario(), s)
}

// ── Cálculo del análisis ──────────────────────────────────────────────────────

func TestEvaluate_Resultados(t *testing.T) {
	res, recs := scenario.Evaluate(
		entity.Situation{Income: "1000000", CurrentTax: "300000", Industry: "technology"},
		map[string]bool{
			entity.OptAcceleratedDepreciation: true,
			entity.OptCharityDeductions:       true,
			entity.OptResearchCredits:         false,
		},
	)

	assert.True(t, res.TotalSavings.Equal(d("150000")))
	assert.True(t, res.OptimizedTax.Equal(d("150000")))
	assert.True(t, res.SavingsPercentage.Equal(d("50")))
	assert.True(t, res.NetBenefit.Equal(d("127500")))
	assert.Equal(t, int64(8), res.PaybackPeriod)
	require.Len(t, res.AppliedOptimizations, 2)
	assert.Equal(t, entity.OptAcceleratedDepreciation, res.AppliedOptimizations[0].ID)
	assert.Equal(t, entity.OptCharityDeductions, res.AppliedOptimizations[1].ID)

	require.Len(t, recs.Suggestions, 3)
	assert.True(t, recs.Suggestions[0].PotentialSaving.Equal(d("40000")))
	assert.True(t, recs.Suggestions[1].PotentialSaving.Equal(d("45000")))
	assert.True(t, recs.Suggestions[2].PotentialSaving.Equal(d("30000")))
	assert.Equal(t, scenario.RiskLow, recs.RiskAssessment.Level)
	assert.Equal(t, "Perfil de riesgo bajo basado en volumen de ingresos y complejidad fiscal", recs.RiskAssessment.Description)
	assert.True(t, recs.IndustryInsights.Multiplier.Equal(d("1.15")))
	assert.Equal(t, scenario.InsightOpportunities, recs.IndustryInsights.Recommendation)
	assert.Len(t, recs.NextSteps, 4)
}

func TestEvaluate_PorcentajeRedondeadoAUnDecimal(t *testing.T) {
	res, _ := scenario.Evaluate(
		entity.Situation{Income: "1000000", CurrentTax: "240000"},
		map[string]bool{entity.OptAcceleratedDepreciation: true},
	)
	assert.Equal(t, "33.3", res.SavingsPercentage.String())
}

func TestEvaluate_SinImpuestoNiIngresos(t *testing.T) {
	res, recs := scenario.Evaluate(
		entity.Situation{Income: "0", CurrentTax: ""},
		map[string]bool{entity.OptResearchCredits: true},
	)
	assert.True(t, res.SavingsPercentage.IsZero())
	assert.Equal(t, int64(0), res.PaybackPeriod)
	assert.True(t, res.OptimizedTax.IsZero())
	assert.Equal(t, scenario.InsightDiversify, recs.IndustryInsights.Recommendation)
}

func TestEvaluate_ImpuestoOptimizadoNuncaNegativo(t *testing.T) {
	res, _ := scenario.Evaluate(
		entity.Situation{Income: "10000000", CurrentTax: "1000"},
		map[string]bool{entity.OptResearchCredits: true},
	)
	assert.True(t, res.OptimizedTax.IsZero())
	assert.True(t, res.TotalSavings.Equal(d("1200000")))
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, scenario.RiskHigh, scenario.RiskLevel(d("10000001")))
	assert.Equal(t, scenario.RiskMedium, scenario.RiskLevel(d("10000000")))
	assert.Equal(t, scenario.RiskLow, scenario.RiskLevel(d("5000000")))
}

func TestEvaluate_MultiplicadorEnElUmbral(t *testing.T) {
	_, recs := scenario.Evaluate(entity.Situation{Industry: "services"}, nil)
	assert.Equal(t, scenario.InsightDiversify, recs.IndustryInsights.Recommendation, "1.1 no supera el umbral")
}
