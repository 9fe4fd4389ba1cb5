package repository

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// SessionRepository registro de sesiones anónimas vigentes.
type SessionRepository interface {
	Create(session *entity.Session) error
	// Exists indica si la sesión existe y no ha expirado.
	Exists(id string) bool
	Delete(id string)
	Count() int
}

// SessionPurger almacén con estado por sesión que se descarta al cerrarla.
type SessionPurger interface {
	// Purge elimina todo lo guardado para la sesión; es idempotente.
	Purge(sessionID string)
}
