// Package session emite y valida las sesiones anónimas que aíslan el estado en memoria.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
	"github.com/smartax-ai/smartax-api/pkg/jwt"
)

// UseCase creación, validación y cierre de sesiones.
type UseCase struct {
	repo    repository.SessionRepository
	purgers []repository.SessionPurger
	metrics ports.Metrics
	log     zerolog.Logger
	secret  string
	issuer  string
	ttl     time.Duration
	now     func() time.Time
}

// NewUseCase construye el caso de uso; ttl debe coincidir con la vida de los almacenes de la sesión.
// purgers son los almacenes por sesión que End vacía.
func NewUseCase(
	repo repository.SessionRepository,
	metrics ports.Metrics,
	log zerolog.Logger,
	secret, issuer string,
	ttl time.Duration,
	purgers ...repository.SessionPurger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		repo:    repo,
		purgers: purgers,
		metrics: metrics,
		log:     log,
		secret:  secret,
		issuer:  issuer,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create abre una sesión nueva y devuelve su token.
func (uc *UseCase) Create(_ context.Context) (*dto.SessionResponse, error) {
	now := uc.now()
	s := &entity.Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	token, err := jwt.Generate(uc.secret, s.ID, uc.issuer, now, uc.ttl)
	if err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	uc.metrics.SessionsActive(uc.repo.Count())
	uc.log.Info().Str("session_id", s.ID).Time("expires_at", s.ExpiresAt).Msg("sesión creada")
	return &dto.SessionResponse{SessionID: s.ID, Token: token, ExpiresAt: s.ExpiresAt}, nil
}

// Resolve valida el token y confirma que la sesión sigue vigente.
func (uc *UseCase) Resolve(token string) (string, error) {
	sessionID, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return "", fmt.Errorf("%w: token inválido: %v", domain.ErrSessionNotFound, err)
	}
	if !uc.repo.Exists(sessionID) {
		return "", fmt.Errorf("sesión %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	return sessionID, nil
}

// End cierra la sesión y descarta su estado en todos los almacenes.
func (uc *UseCase) End(_ context.Context, sessionID string) {
	uc.repo.Delete(sessionID)
	for _, p := range uc.purgers {
		p.Purge(sessionID)
	}
	uc.metrics.SessionsActive(uc.repo.Count())
	uc.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
}
