package memory

import (
	"fmt"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo registro de sesiones vigentes.
type SessionRepo struct {
	store *Store[entity.Session]
}

// NewSessionRepository construye el registro; ttl es la vida de la sesión.
func NewSessionRepository(ttl time.Duration) *SessionRepo {
	return &SessionRepo{store: NewStore[entity.Session](ttl, nil)}
}

// Close libera la limpieza periódica del almacén.
func (r *SessionRepo) Close() { r.store.Close() }

// Create registra la sesión; ErrDuplicate si el id ya existe.
func (r *SessionRepo) Create(session *entity.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("create session: %w: id requerido", domain.ErrInvalidInput)
	}
	_, err := r.store.Update(session.ID, func(_ entity.Session, ok bool) (entity.Session, error) {
		if ok {
			return entity.Session{}, fmt.Errorf("create session %s: %w", session.ID, domain.ErrDuplicate)
		}
		return *session, nil
	})
	return err
}

// Exists indica si la sesión sigue vigente.
func (r *SessionRepo) Exists(id string) bool {
	_, ok := r.store.Get(id)
	return ok
}

// Delete elimina la sesión.
func (r *SessionRepo) Delete(id string) { r.store.Delete(id) }

// Count número de sesiones vigentes.
func (r *SessionRepo) Count() int { return r.store.Len() }
