package dto

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// ScenarioResponse estado del simulador en respuestas.
type ScenarioResponse struct {
	Name              string                    `json:"name"`
	Step              int                       `json:"step"`
	CanAdvance        bool                      `json:"canAdvance"`
	Analyzing         bool                      `json:"analyzing"`
	Situation         entity.Situation          `json:"currentSituation"`
	Optimizations     map[string]bool           `json:"optimizations"`
	Results           *entity.ScenarioResults   `json:"results"`
	AIRecommendations *entity.AIRecommendations `json:"aiRecommendations"`
}

// UpdateSituationRequest body para PUT /api/simulator/situation.
type UpdateSituationRequest struct {
	Name      *string          `json:"name,omitempty"`
	Situation entity.Situation `json:"currentSituation"`
}

// SetOptimizationRequest body para PUT /api/simulator/optimizations/:key.
type SetOptimizationRequest struct {
	Enabled bool `json:"enabled"`
}

// SimulatorStrategyDTO estrategia disponible en el simulador.
type SimulatorStrategyDTO struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Impact       string   `json:"impact"`
	Requirements []string `json:"requirements"`
}

// RenameScenarioRequest body para PUT /api/simulator/name.
type RenameScenarioRequest struct {
	Name string `json:"name"`
}
