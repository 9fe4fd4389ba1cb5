package dto

import "time"

// SessionResponse respuesta de POST /api/sessions.
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
