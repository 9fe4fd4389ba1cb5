// Package simulator expone el asistente de simulación fiscal por sesión.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/optimization"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
	"github.com/smartax-ai/smartax-api/internal/domain/scenario"
)

// UseCase casos de uso del simulador.
type UseCase struct {
	repo          repository.ScenarioRepository
	metrics       ports.Metrics
	log           zerolog.Logger
	analysisDelay time.Duration
}

// NewUseCase construye el caso de uso; analysisDelay es la espera simulada del paso 3.
func NewUseCase(repo repository.ScenarioRepository, metrics ports.Metrics, log zerolog.Logger, analysisDelay time.Duration) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{repo: repo, metrics: metrics, log: log, analysisDelay: analysisDelay}
}

// Strategies catálogo del simulador en el orden de las optimizaciones.
func (uc *UseCase) Strategies() []dto.SimulatorStrategyDTO {
	cat := optimization.SimulatorCatalog()
	out := make([]dto.SimulatorStrategyDTO, 0, len(cat))
	for _, q := range cat {
		out = append(out, dto.SimulatorStrategyDTO{
			Key:          q.Key,
			Name:         q.Name,
			Description:  q.Description,
			Impact:       q.Impact,
			Requirements: append([]string(nil), q.Requirements...),
		})
	}
	return out
}

// Get devuelve el escenario de la sesión.
func (uc *UseCase) Get(_ context.Context, sessionID string) (*dto.ScenarioResponse, error) {
	s, err := uc.repo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("obtener escenario: %w", err)
	}
	return toResponse(s), nil
}

func (uc *UseCase) apply(sessionID, action string, fn func(s *entity.Scenario) error) (*dto.ScenarioResponse, error) {
	s, err := uc.repo.Update(sessionID, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return toResponse(s), nil
}

// UpdateSituation captura la situación actual (paso 1) y opcionalmente el nombre.
func (uc *UseCase) UpdateSituation(_ context.Context, sessionID string, req dto.UpdateSituationRequest) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "actualizar situación", func(s *entity.Scenario) error {
		if err := scenario.SetSituation(s, req.Situation); err != nil {
			return err
		}
		if req.Name != nil {
			scenario.SetName(s, *req.Name)
		}
		return nil
	})
}

// Rename cambia el nombre del escenario en cualquier paso.
func (uc *UseCase) Rename(_ context.Context, sessionID, name string) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "renombrar escenario", func(s *entity.Scenario) error {
		scenario.SetName(s, name)
		return nil
	})
}

// SetOptimization activa o desactiva una optimización (paso 2).
func (uc *UseCase) SetOptimization(_ context.Context, sessionID, key string, enabled bool) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "seleccionar optimización", func(s *entity.Scenario) error {
		return scenario.SetOptimization(s, key, enabled)
	})
}

// ToggleOptimization invierte una optimización (paso 2).
func (uc *UseCase) ToggleOptimization(_ context.Context, sessionID, key string) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "alternar optimización", func(s *entity.Scenario) error {
		return scenario.ToggleOptimization(s, key)
	})
}

// Advance avanza un paso. Al entrar al paso 3 el análisis queda pendiente de Analyze.
func (uc *UseCase) Advance(_ context.Context, sessionID string) (*dto.ScenarioResponse, error) {
	resp, err := uc.apply(sessionID, "avanzar", scenario.Advance)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("session_id", sessionID).Int("step", resp.Step).Msg("escenario avanzó")
	return resp, nil
}

// Back regresa del paso 2 al 1.
func (uc *UseCase) Back(_ context.Context, sessionID string) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "regresar", scenario.Back)
}

// Reset vuelve al paso 1 con valores iniciales.
func (uc *UseCase) Reset(_ context.Context, sessionID string) (*dto.ScenarioResponse, error) {
	return uc.apply(sessionID, "reiniciar", func(s *entity.Scenario) error {
		scenario.Reset(s)
		return nil
	})
}

// Analyze espera el retardo simulado y completa el análisis (paso 3 → 4).
// Si el contexto se cancela durante la espera el escenario sigue en análisis.
func (uc *UseCase) Analyze(ctx context.Context, sessionID string) (*dto.ScenarioResponse, error) {
	s, err := uc.repo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("analizar escenario: %w", err)
	}
	// Validación temprana para no esperar el retardo en un paso incorrecto.
	if s.Step != entity.StepAnalyzing {
		if err := scenario.Complete(s); err != nil {
			return nil, fmt.Errorf("analizar escenario: %w", err)
		}
	}

	if uc.analysisDelay > 0 {
		t := time.NewTimer(uc.analysisDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analizar escenario: %w", ctx.Err())
		case <-t.C:
		}
	}

	resp, err := uc.apply(sessionID, "analizar escenario", scenario.Complete)
	if err != nil {
		return nil, err
	}
	uc.metrics.ScenarioAnalyzed()
	ev := uc.log.Info().Str("session_id", sessionID)
	if resp.Results != nil {
		ev = ev.Str("total_savings", resp.Results.TotalSavings.StringFixed(2))
	}
	if resp.AIRecommendations != nil {
		ev = ev.Str("risk", resp.AIRecommendations.RiskAssessment.Level)
	}
	ev.Msg("escenario analizado")
	return resp, nil
}

func toResponse(s *entity.Scenario) *dto.ScenarioResponse {
	opts := make(map[string]bool, len(s.Optimizations))
	for k, v := range s.Optimizations {
		opts[k] = v
	}
	return &dto.ScenarioResponse{
		Name:              s.Name,
		Step:              s.Step,
		CanAdvance:        scenario.CanAdvance(s),
		Analyzing:         s.Analyzing,
		Situation:         s.Situation,
		Optimizations:     opts,
		Results:           s.Results,
		AIRecommendations: s.AIRecommendations,
	}
}
