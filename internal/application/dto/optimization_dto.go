package dto

import (
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// OptimizationAnalysisRequest body para POST /api/optimization/analyze.
type OptimizationAnalysisRequest struct {
	Income     string `json:"income"`
	Expenses   string `json:"expenses"`
	Deductions string `json:"deductions"`
	Assets     string `json:"assets"`
	Employees  string `json:"employees"`
	Industry   string `json:"industry"`
	TopN       int    `json:"topN,omitempty"`
}

// AddComparisonRequest body para POST /api/optimization/comparison.
// Persona y régimen vacíos toman moral y general.
type AddComparisonRequest struct {
	OptimizationAnalysisRequest
	Name       string `json:"name"`
	EntityType string `json:"entityType"`
	Regime     string `json:"regime"`
}

// ComparisonScenarioResponse escenario guardado para comparar.
type ComparisonScenarioResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	EntityType string                   `json:"entityType"`
	Regime     string                   `json:"regime"`
	Industry   string                   `json:"industry"`
	Income     string                   `json:"income"`
	Expenses   string                   `json:"expenses"`
	Deductions string                   `json:"deductions"`
	Assets     string                   `json:"assets"`
	Employees  string                   `json:"employees"`
	Results    entity.ComparisonResults `json:"results"`
	AddedAt    time.Time                `json:"addedAt"`
}

// ComparisonListResponse escenarios en orden de inserción.
type ComparisonListResponse struct {
	Items []ComparisonScenarioResponse `json:"items"`
	Total int                          `json:"total"`
}

// NewComparisonListResponse mapea la lista; nunca devuelve items nulo.
func NewComparisonListResponse(list []*entity.ComparisonScenario) ComparisonListResponse {
	out := ComparisonListResponse{Items: make([]ComparisonScenarioResponse, 0, len(list)), Total: len(list)}
	for _, c := range list {
		out.Items = append(out.Items, ComparisonScenarioResponse{
			ID:         c.ID,
			Name:       c.Name,
			EntityType: c.EntityType,
			Regime:     c.Regime,
			Industry:   c.Industry,
			Income:     c.Income,
			Expenses:   c.Expenses,
			Deductions: c.Deductions,
			Assets:     c.Assets,
			Employees:  c.Employees,
			Results:    c.Results,
			AddedAt:    c.AddedAt,
		})
	}
	return out
}
