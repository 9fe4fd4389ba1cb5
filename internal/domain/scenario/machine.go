// Package scenario implementa el asistente de simulación fiscal de 4 pasos:
// captura (1) → selección de optimizaciones (2) → análisis (3) → resultados (4).
// Las transiciones son puras; la espera simulada del análisis la aplica la capa de aplicación.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/optimization"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
)

func reject(s *entity.Scenario, action string) error {
	return fmt.Errorf("%w: %s no permitido en el paso %d", domain.ErrGuardRejected, action, s.Step)
}

// CanAdvance indica si el control de avance está habilitado en el paso actual.
func CanAdvance(s *entity.Scenario) bool {
	switch s.Step {
	case entity.StepInput:
		return strings.TrimSpace(s.Situation.Income) != "" && strings.TrimSpace(s.Situation.CurrentTax) != ""
	case entity.StepOptimizationSelection:
		return true
	default:
		return false
	}
}

// Advance avanza al siguiente paso: 1→2 exige ingresos e impuesto actual capturados;
// 2→3 deja el escenario en análisis. El paso 3→4 solo ocurre con Complete.
func Advance(s *entity.Scenario) error {
	if !CanAdvance(s) {
		if s.Step == entity.StepInput {
			return fmt.Errorf("%w: se requieren ingresos e impuesto actual", domain.ErrGuardRejected)
		}
		return reject(s, "avanzar")
	}
	s.Step++
	if s.Step == entity.StepAnalyzing {
		s.Analyzing = true
	}
	return nil
}

// Back regresa del paso 2 al 1; análisis y resultados no tienen retroceso.
func Back(s *entity.Scenario) error {
	if s.Step != entity.StepOptimizationSelection {
		return reject(s, "regresar")
	}
	s.Step = entity.StepInput
	return nil
}

// Reset vuelve al paso 1 con todos los campos en sus valores iniciales.
func Reset(s *entity.Scenario) {
	*s = *entity.NewScenario()
}

// SetName cambia el nombre del escenario en cualquier paso.
func SetName(s *entity.Scenario, name string) {
	s.Name = strings.TrimSpace(name)
}

// SetSituation reemplaza la situación actual; solo en el paso 1.
// Los montos capturados deben ser numéricos y no negativos.
func SetSituation(s *entity.Scenario, sit entity.Situation) error {
	if s.Step != entity.StepInput {
		return reject(s, "editar la situación")
	}
	var errs []error
	for _, f := range []struct{ name, raw string }{
		{"income", sit.Income},
		{"expenses", sit.Expenses},
		{"currentTax", sit.CurrentTax},
	} {
		if _, err := tax.ParseAmount(f.raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if strings.TrimSpace(sit.Industry) == "" {
		sit.Industry = entity.NewScenario().Situation.Industry
	}
	s.Situation = sit
	return nil
}

// SetOptimization activa o desactiva una optimización; solo en el paso 2.
func SetOptimization(s *entity.Scenario, key string, enabled bool) error {
	if s.Step != entity.StepOptimizationSelection {
		return reject(s, "seleccionar optimizaciones")
	}
	q, ok := optimization.LookupQuick(key)
	if !ok {
		return fmt.Errorf("%w: optimización %q desconocida", domain.ErrInvalidInput, key)
	}
	// La clave del catálogo no comparte memoria con el llamador.
	s.Optimizations[q.Key] = enabled
	return nil
}

// ToggleOptimization invierte la selección de una optimización; solo en el paso 2.
func ToggleOptimization(s *entity.Scenario, key string) error {
	return SetOptimization(s, key, !s.Optimizations[key])
}

// Complete termina el análisis: calcula resultados y recomendaciones y pasa al paso 4.
func Complete(s *entity.Scenario) error {
	if s.Step != entity.StepAnalyzing {
		return reject(s, "completar el análisis")
	}
	results, recs := Evaluate(s.Situation, s.Optimizations)
	s.Results = &results
	s.AIRecommendations = &recs
	s.Analyzing = false
	s.Step = entity.StepResults
	return nil
}
