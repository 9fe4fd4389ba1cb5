package memory

import (
	"fmt"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
)

var _ repository.ComparisonRepository = (*ComparisonRepo)(nil)

type comparisonList []*entity.ComparisonScenario

func (l comparisonList) clone() comparisonList {
	if l == nil {
		return nil
	}
	out := make(comparisonList, len(l))
	for i, c := range l {
		out[i] = c.Clone()
	}
	return out
}

// ComparisonRepo escenarios guardados para comparar, por sesión.
type ComparisonRepo struct {
	store *Store[comparisonList]
}

// NewComparisonRepository construye el repositorio; ttl es la vida de la sesión.
func NewComparisonRepository(ttl time.Duration) *ComparisonRepo {
	return &ComparisonRepo{store: NewStore(ttl, comparisonList.clone)}
}

// Close libera la limpieza periódica del almacén.
func (r *ComparisonRepo) Close() { r.store.Close() }

// Add agrega el escenario al final de la lista.
func (r *ComparisonRepo) Add(sessionID string, item *entity.ComparisonScenario) error {
	if item == nil || item.ID == "" {
		return fmt.Errorf("add comparison: %w: id requerido", domain.ErrInvalidInput)
	}
	_, err := r.store.Update(sessionID, func(cur comparisonList, _ bool) (comparisonList, error) {
		for _, c := range cur {
			if c.ID == item.ID {
				return nil, fmt.Errorf("add comparison %s: %w", item.ID, domain.ErrDuplicate)
			}
		}
		return append(cur, item.Clone()), nil
	})
	return err
}

// List escenarios en orden de inserción.
func (r *ComparisonRepo) List(sessionID string) ([]*entity.ComparisonScenario, error) {
	l, ok := r.store.Get(sessionID)
	if !ok || l == nil {
		return []*entity.ComparisonScenario{}, nil
	}
	return l, nil
}

// Clear vacía la lista de la sesión.
func (r *ComparisonRepo) Clear(sessionID string) { r.store.Delete(sessionID) }

// Purge descarta la lista al cerrar la sesión.
func (r *ComparisonRepo) Purge(sessionID string) { r.store.Delete(sessionID) }
