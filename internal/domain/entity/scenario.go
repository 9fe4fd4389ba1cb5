package entity

import "github.com/shopspring/decimal"

// Pasos del simulador fiscal.
const (
	StepInput                 = 1
	StepOptimizationSelection = 2
	StepAnalyzing             = 3
	StepResults               = 4
)

// Claves de las optimizaciones seleccionables en el simulador.
const (
	OptAcceleratedDepreciation = "acceleratedDepreciation"
	OptTrainingDeductions      = "trainingDeductions"
	OptResearchCredits         = "researchCredits"
	OptEnergyEfficiency        = "energyEfficiency"
	OptCharityDeductions       = "charityDeductions"
)

// SimulatorOptimizationKeys orden fijo en el que se aplican las optimizaciones.
var SimulatorOptimizationKeys = []string{
	OptAcceleratedDepreciation,
	OptTrainingDeductions,
	OptResearchCredits,
	OptEnergyEfficiency,
	OptCharityDeductions,
}

// Situation situación fiscal actual capturada en el paso 1 (texto tal como se captura).
type Situation struct {
	Income     string `json:"income"`
	Expenses   string `json:"expenses"`
	CurrentTax string `json:"currentTax"`
	Industry   string `json:"industry"`
}

// AppliedOptimization estrategia aplicada con su ahorro estimado.
type AppliedOptimization struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Impact          string          `json:"impact"`
	Requirements    []string        `json:"requirements"`
	EstimatedSaving decimal.Decimal `json:"estimatedSaving"`
}

// ScenarioResults proyección del escenario optimizado.
type ScenarioResults struct {
	CurrentTax           decimal.Decimal       `json:"currentTax"`
	OptimizedTax         decimal.Decimal       `json:"optimizedTax"`
	TotalSavings         decimal.Decimal       `json:"totalSavings"`
	SavingsPercentage    decimal.Decimal       `json:"savingsPercentage"`
	NetBenefit           decimal.Decimal       `json:"netBenefit"`
	PaybackPeriod        int64                 `json:"paybackPeriod"` // meses
	AppliedOptimizations []AppliedOptimization `json:"appliedOptimizations"`
}

// AISuggestion sugerencia auxiliar con ahorro potencial calculado de forma independiente.
type AISuggestion struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PotentialSaving decimal.Decimal `json:"potentialSaving"`
	Complexity      string          `json:"complexity"`
	TimeFrame       string          `json:"timeFrame"`
}

// RiskAssessment nivel de riesgo del perfil.
type RiskAssessment struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// IndustryInsight lectura sectorial (multiplicador estático).
type IndustryInsight struct {
	Multiplier     decimal.Decimal `json:"multiplier"`
	Recommendation string          `json:"recommendation"`
}

// AIRecommendations bloque de recomendaciones del análisis.
type AIRecommendations struct {
	RiskAssessment   RiskAssessment  `json:"riskAssessment"`
	Suggestions      []AISuggestion  `json:"suggestions"`
	IndustryInsights IndustryInsight `json:"industryInsights"`
	NextSteps        []string        `json:"nextSteps"`
}

// Scenario estado del asistente de 4 pasos de una sesión.
type Scenario struct {
	Name              string
	Step              int
	Situation         Situation
	Optimizations     map[string]bool
	Results           *ScenarioResults
	AIRecommendations *AIRecommendations
	Analyzing         bool
}

// NewScenario escenario vacío en el paso 1.
func NewScenario() *Scenario {
	opts := make(map[string]bool, len(SimulatorOptimizationKeys))
	for _, k := range SimulatorOptimizationKeys {
		opts[k] = false
	}
	return &Scenario{
		Step:          StepInput,
		Situation:     Situation{Industry: "general"},
		Optimizations: opts,
	}
}

// Clone copia profunda del escenario.
func (s *Scenario) Clone() *Scenario {
	if s == nil {
		return nil
	}
	out := *s
	out.Optimizations = make(map[string]bool, len(s.Optimizations))
	for k, v := range s.Optimizations {
		out.Optimizations[k] = v
	}
	if s.Results != nil {
		r := *s.Results
		r.AppliedOptimizations = append([]AppliedOptimization(nil), s.Results.AppliedOptimizations...)
		out.Results = &r
	}
	if s.AIRecommendations != nil {
		a := *s.AIRecommendations
		a.Suggestions = append([]AISuggestion(nil), s.AIRecommendations.Suggestions...)
		a.NextSteps = append([]string(nil), s.AIRecommendations.NextSteps...)
		out.AIRecommendations = &a
	}
	return &out
}
