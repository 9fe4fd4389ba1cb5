// Package memory implementa los puertos de almacenamiento sobre mapas en memoria,
// aislados por sesión y con expiración por TTL. Nada sobrevive a un reinicio del proceso.
package memory

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Store mapa concurrente con TTL. Cada escritura renueva la expiración de la clave.
// clone se aplica al leer y al escribir para no compartir punteros con el llamador.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	ttl   time.Duration
	clone func(T) T
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewStore crea el almacén e inicia la limpieza periódica de entradas vencidas.
// ttl <= 0 desactiva la expiración.
func NewStore[T any](ttl time.Duration, clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	s := &Store[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
		clone: clone,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if ttl > 0 {
		go s.cleanup()
	}
	return s
}

func (s *Store[T]) expired(e entry[T]) bool {
	return s.ttl > 0 && s.now().After(e.expiresAt)
}

// Get devuelve una copia del valor; false si no existe o expiró.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[key]
	if !ok || s.expired(e) {
		var zero T
		return zero, false
	}
	return s.clone(e.value), true
}

// Set guarda una copia del valor.
func (s *Store[T]) Set(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry[T]{value: s.clone(value), expiresAt: s.now().Add(s.ttl)}
}

// Update lee, transforma y guarda bajo el mismo candado. Si fn falla no se guarda nada.
// ok es false cuando la clave no existía o había expirado.
func (s *Store[T]) Update(key string, fn func(cur T, ok bool) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cur T
	e, ok := s.items[key]
	if ok && !s.expired(e) {
		cur = s.clone(e.value)
	} else {
		ok = false
	}
	next, err := fn(cur, ok)
	if err != nil {
		var zero T
		return zero, err
	}
	s.items[key] = entry[T]{value: s.clone(next), expiresAt: s.now().Add(s.ttl)}
	return s.clone(next), nil
}

// Delete elimina la clave.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}

// Len número de entradas vigentes.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.items {
		if !s.expired(e) {
			n++
		}
	}
	return n
}

// Close detiene la limpieza periódica.
func (s *Store[T]) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store[T]) cleanup() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			for k, e := range s.items {
				if s.expired(e) {
					delete(s.items, k)
				}
			}
			s.mu.Unlock()
		}
	}
}
