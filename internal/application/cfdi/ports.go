package cfdi

import (
	"context"
	"io"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// Verifier resuelve un registro pendiente. Debe respetar la cancelación de ctx
// y devolver el registro sin cambios cuando ésta ocurre.
type Verifier interface {
	Verify(ctx context.Context, rec entity.CFDIRecord, mode string) (entity.CFDIRecord, error)
}

// FileCodec lectura y escritura de los archivos del validador.
type FileCodec interface {
	ParseCSV(r io.Reader) ([]entity.CFDIRecord, error)
	ParseXML(r io.Reader) (entity.CFDIRecord, error)
	WriteResults(w io.Writer, records []entity.CFDIRecord, today string) error
	ResultsFilename(now time.Time) string
	Template() (filename string, content []byte)
}

// Observer recibe cada transición de estado de un registro (índice dentro del lote).
type Observer func(sessionID string, index int, rec entity.CFDIRecord)
