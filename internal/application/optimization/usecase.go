// Package optimization expone el catálogo de estrategias, el análisis avanzado de un perfil
// y la lista de escenarios que cada sesión guarda para comparar.
package optimization

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/optimization"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// UseCase casos de uso del catálogo de optimizaciones.
type UseCase struct {
	comparisons repository.ComparisonRepository
	log         zerolog.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(comparisons repository.ComparisonRepository, log zerolog.Logger) *UseCase {
	return &UseCase{comparisons: comparisons, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (pruebas).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Catalog devuelve todas las estrategias en orden de catálogo.
func (uc *UseCase) Catalog() []optimization.Strategy {
	return optimization.All()
}

// Industries catálogo de industrias con su multiplicador.
func (uc *UseCase) Industries() []sat.Industry {
	return sat.Industries()
}

// Analyze valida el perfil capturado y devuelve el análisis con las topN estrategias aplicables
// y el resultado base del escenario.
func (uc *UseCase) Analyze(_ context.Context, req dto.OptimizationAnalysisRequest) (*optimization.Analysis, error) {
	profile, err := toProfile(req)
	if err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = optimization.DefaultTopN
	}
	a := optimization.Analyze(profile, topN, uc.now())
	uc.log.Debug().
		Str("industry", profile.Industry).
		Int("strategies", len(a.Optimizations)).
		Str("risk", a.RiskLevel).
		Msg("análisis de optimización")
	return &a, nil
}

// AddToComparison evalúa el escenario y lo agrega a la lista de la sesión.
// Un escenario sin ingresos no tiene resultados y se rechaza.
func (uc *UseCase) AddToComparison(ctx context.Context, sessionID string, req dto.AddComparisonRequest) (*dto.ComparisonListResponse, error) {
	profile, err := toProfile(req.OptimizationAnalysisRequest)
	if err != nil {
		return nil, err
	}
	if !profile.Income.IsPositive() {
		return nil, fmt.Errorf("%w: el escenario no tiene resultados, capture ingresos", domain.ErrInvalidInput)
	}
	entityType, regime := strings.TrimSpace(req.EntityType), strings.TrimSpace(req.Regime)
	if entityType == "" {
		entityType = sat.EntityMoral
	}
	if regime == "" {
		regime = sat.RegimeGeneral
	}
	if !sat.IsValidRegime(entityType, regime) {
		return nil, fmt.Errorf("%w: régimen %q no aplica a persona %q", domain.ErrInvalidInput, regime, entityType)
	}

	now := uc.now()
	item := &entity.ComparisonScenario{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		EntityType: entityType,
		Regime:     regime,
		Industry:   profile.Industry,
		Income:     req.Income,
		Expenses:   req.Expenses,
		Deductions: req.Deductions,
		Assets:     req.Assets,
		Employees:  req.Employees,
		Results:    optimization.EvaluateScenario(profile, now),
		AddedAt:    now,
	}
	if item.Name == "" {
		item.Name = "Escenario " + now.Format("02/01/2006 15:04")
	}
	if err := uc.comparisons.Add(sessionID, item); err != nil {
		return nil, fmt.Errorf("agregar a comparación: %w", err)
	}
	uc.log.Info().
		Str("session_id", sessionID).
		Str("scenario_id", item.ID).
		Str("base_tax", item.Results.BaseTax.StringFixed(2)).
		Msg("escenario agregado a comparación")
	return uc.ListComparison(ctx, sessionID)
}

// ListComparison escenarios guardados de la sesión en orden de inserción.
func (uc *UseCase) ListComparison(_ context.Context, sessionID string) (*dto.ComparisonListResponse, error) {
	list, err := uc.comparisons.List(sessionID)
	if err != nil {
		return nil, fmt.Errorf("listar comparación: %w", err)
	}
	out := dto.NewComparisonListResponse(list)
	return &out, nil
}

// ClearComparison vacía la lista de la sesión.
func (uc *UseCase) ClearComparison(_ context.Context, sessionID string) {
	uc.comparisons.Clear(sessionID)
	uc.log.Info().Str("session_id", sessionID).Msg("comparación vaciada")
}

func toProfile(req dto.OptimizationAnalysisRequest) (optimization.Profile, error) {
	in, err := tax.ParseInput(
		entity.BasicData{Income: req.Income, Expenses: req.Expenses, Deductions: req.Deductions},
		entity.AdvancedData{Assets: req.Assets, Employees: req.Employees},
	)
	if err != nil {
		return optimization.Profile{}, err
	}
	industry := strings.TrimSpace(req.Industry)
	if industry == "" {
		industry = "general"
	}
	if _, ok := sat.LookupIndustry(industry); !ok {
		return optimization.Profile{}, fmt.Errorf("%w: industria %q desconocida", domain.ErrInvalidInput, industry)
	}
	return optimization.Profile{
		Income:     in.Income,
		Expenses:   in.Expenses,
		Deductions: in.Deductions,
		Assets:     in.Assets,
		Employees:  in.Employees,
		Industry:   industry,
	}, nil
}
