package memory

import (
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
)

var _ repository.CFDIBatchRepository = (*CFDIBatchRepo)(nil)

// CFDIBatchRepo lote de CFDI por sesión.
type CFDIBatchRepo struct {
	store *Store[*entity.CFDIBatch]
}

// NewCFDIBatchRepository construye el repositorio; ttl es la vida de la sesión.
func NewCFDIBatchRepository(ttl time.Duration) *CFDIBatchRepo {
	return &CFDIBatchRepo{store: NewStore(ttl, (*entity.CFDIBatch).Clone)}
}

// Close libera la limpieza periódica del almacén.
func (r *CFDIBatchRepo) Close() { r.store.Close() }

func emptyBatch() *entity.CFDIBatch {
	return &entity.CFDIBatch{Mode: entity.CFDIModeBatch, Records: []entity.CFDIRecord{}}
}

// Get devuelve el lote de la sesión o uno vacío.
func (r *CFDIBatchRepo) Get(sessionID string) (*entity.CFDIBatch, error) {
	if b, ok := r.store.Get(sessionID); ok {
		return b, nil
	}
	return emptyBatch(), nil
}

// Update modifica el lote bajo el candado del almacén.
func (r *CFDIBatchRepo) Update(sessionID string, fn func(b *entity.CFDIBatch) error) (*entity.CFDIBatch, error) {
	return r.store.Update(sessionID, func(cur *entity.CFDIBatch, ok bool) (*entity.CFDIBatch, error) {
		if !ok {
			cur = emptyBatch()
		}
		if err := fn(cur); err != nil {
			return nil, err
		}
		return cur, nil
	})
}

// Purge descarta el lote al cerrar la sesión. Una validación en curso termina con ErrConflict
// en su siguiente transición porque el lote ya no contiene el registro.
func (r *CFDIBatchRepo) Purge(sessionID string) { r.store.Delete(sessionID) }
