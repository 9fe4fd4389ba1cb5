package cfdi

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// Textos del verificador simulado.
const (
	SimulatedIssuer    = "Empresa Ejemplo S.A. de C.V."
	ErrExpiredCert     = "Certificado vencido"
	ErrExpiredOrAbsent = "Certificado vencido o UUID no encontrado"
)

// validThreshold un sorteo mayor a este valor resulta válido (70%).
const validThreshold = 0.3

// RandomSource fuente de aleatoriedad inyectable; Float64 devuelve un valor en [0, 1).
type RandomSource interface {
	Float64() float64
}

// lockedRand fuente sembrada segura para uso concurrente.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// NewRandomSource devuelve una fuente determinista para seed != 0; con 0 usa la global.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return globalRand{}
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

// SequenceSource repite una secuencia fija de valores; útil en pruebas.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource crea la fuente; sin valores siempre devuelve 1 (válido).
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 devuelve el siguiente valor de la secuencia, ciclando al final.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// SimulatedVerifier resuelve registros con un retardo fijo y un sorteo; no consulta al SAT.
type SimulatedVerifier struct {
	rnd         RandomSource
	batchDelay  time.Duration
	singleDelay time.Duration
	now         func() time.Time
}

// NewSimulatedVerifier construye el verificador.
func NewSimulatedVerifier(rnd RandomSource, batchDelay, singleDelay time.Duration) *SimulatedVerifier {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &SimulatedVerifier{rnd: rnd, batchDelay: batchDelay, singleDelay: singleDelay, now: time.Now}
}

// WithClock reemplaza el reloj usado para la fecha de validación.
func (v *SimulatedVerifier) WithClock(now func() time.Time) *SimulatedVerifier {
	v.now = now
	return v
}

// Verify espera el retardo del modo y devuelve el registro resuelto.
// Si ctx se cancela durante la espera devuelve ctx.Err() y el registro sin cambios.
// En lote, emisor y fecha se asignan en ambos resultados; en individual solo si es válido.
func (v *SimulatedVerifier) Verify(ctx context.Context, rec entity.CFDIRecord, mode string) (entity.CFDIRecord, error) {
	delay := v.batchDelay
	if mode == entity.CFDIModeSingle {
		delay = v.singleDelay
	}
	if err := sleep(ctx, delay); err != nil {
		return rec, err
	}

	valid := v.rnd.Float64() > validThreshold
	date := v.now().Format("2006-01-02")

	if mode == entity.CFDIModeSingle {
		if valid {
			rec.Status = entity.CFDIStatusValid
			rec.Error = ""
			rec.Issuer = SimulatedIssuer
			rec.Date = date
		} else {
			rec.Status = entity.CFDIStatusInvalid
			rec.Error = ErrExpiredOrAbsent
		}
		return rec, nil
	}

	rec.Issuer = SimulatedIssuer
	rec.Date = date
	if valid {
		rec.Status = entity.CFDIStatusValid
		rec.Error = ""
	} else {
		rec.Status = entity.CFDIStatusInvalid
		rec.Error = ErrExpiredCert
	}
	return rec, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
