package repository

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// ScenarioRepository guarda el escenario del simulador de cada sesión.
type ScenarioRepository interface {
	SessionPurger
	// Get devuelve un escenario nuevo en el paso 1 si la sesión no tiene uno.
	Get(sessionID string) (*entity.Scenario, error)
	// Update aplica fn sobre el escenario de forma atómica y guarda el resultado solo si fn no falla.
	Update(sessionID string, fn func(s *entity.Scenario) error) (*entity.Scenario, error)
}
