package repository

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// ComparisonRepository lista de escenarios de optimización guardados para comparar, por sesión.
type ComparisonRepository interface {
	SessionPurger
	// Add agrega el escenario al final; ErrDuplicate si el id ya existe.
	Add(sessionID string, item *entity.ComparisonScenario) error
	// List devuelve los escenarios en orden de inserción; vacía si no hay.
	List(sessionID string) ([]*entity.ComparisonScenario, error)
	Clear(sessionID string)
}
