package repository

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// CFDIBatchRepository guarda el lote de CFDI en validación de cada sesión.
type CFDIBatchRepository interface {
	SessionPurger
	// Get devuelve un lote vacío en modo batch si la sesión no tiene uno.
	Get(sessionID string) (*entity.CFDIBatch, error)
	// Update aplica fn sobre el lote de forma atómica y guarda el resultado solo si fn no falla.
	Update(sessionID string, fn func(b *entity.CFDIBatch) error) (*entity.CFDIBatch, error)
}
