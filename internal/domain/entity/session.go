package entity

import "time"

// Session sesión anónima de trabajo; todo el estado en memoria cuelga de su ID.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}
