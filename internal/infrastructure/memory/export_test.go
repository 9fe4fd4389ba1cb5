package memory

import "time"

// SetClock reemplaza el reloj del almacén en pruebas.
func (s *Store[T]) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
