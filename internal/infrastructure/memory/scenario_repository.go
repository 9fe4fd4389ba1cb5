package memory

import (
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
)

var _ repository.ScenarioRepository = (*ScenarioRepo)(nil)

// ScenarioRepo escenario del simulador por sesión.
type ScenarioRepo struct {
	store *Store[*entity.Scenario]
}

// NewScenarioRepository construye el repositorio; ttl es la vida de la sesión.
func NewScenarioRepository(ttl time.Duration) *ScenarioRepo {
	return &ScenarioRepo{store: NewStore(ttl, (*entity.Scenario).Clone)}
}

// Close libera la limpieza periódica del almacén.
func (r *ScenarioRepo) Close() { r.store.Close() }

// Get devuelve el escenario de la sesión o uno nuevo.
func (r *ScenarioRepo) Get(sessionID string) (*entity.Scenario, error) {
	if s, ok := r.store.Get(sessionID); ok {
		return s, nil
	}
	return entity.NewScenario(), nil
}

// Update modifica el escenario bajo el candado del almacén.
func (r *ScenarioRepo) Update(sessionID string, fn func(s *entity.Scenario) error) (*entity.Scenario, error) {
	return r.store.Update(sessionID, func(cur *entity.Scenario, ok bool) (*entity.Scenario, error) {
		if !ok {
			cur = entity.NewScenario()
		}
		if err := fn(cur); err != nil {
			return nil, err
		}
		return cur, nil
	})
}

// Purge descarta el escenario al cerrar la sesión.
func (r *ScenarioRepo) Purge(sessionID string) { r.store.Delete(sessionID) }
